// Package config defines the berth-server configuration structure.
package config

import (
	"errors"
	"fmt"
)

// maxSocketPathLen is the portable limit for sockaddr_un paths
// (104 bytes on the BSDs, 108 on Linux, minus the trailing NUL).
const maxSocketPathLen = 103

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifySocket(&cfg.Server.Socket); err != nil {
		return err
	}
	if err := verifyHTTP(&cfg.Server.HTTP); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifySocket(cfg *SocketConfig) error {
	if cfg.Path == "" {
		return errors.New("server.socket.path is required")
	}
	if len(cfg.Path) > maxSocketPathLen {
		return fmt.Errorf("server.socket.path exceeds %d bytes: %q", maxSocketPathLen, cfg.Path)
	}

	mode, err := cfg.FileMode()
	if err != nil {
		return fmt.Errorf("server.socket.mode %q is not an octal mode: %w", cfg.Mode, err)
	}
	if mode > 0o777 {
		return fmt.Errorf("server.socket.mode %q sets bits beyond permissions", cfg.Mode)
	}

	return nil
}

func verifyHTTP(cfg *HTTPConfig) error {
	if cfg.ReadHeaderTimeout < 0 || cfg.IdleTimeout < 0 || cfg.ShutdownTimeout < 0 {
		return errors.New("server.http timeouts must not be negative")
	}
	if cfg.RateLimit < 0 {
		return errors.New("server.http.rate_limit must not be negative")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch cfg.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Level)
	}

	switch cfg.Format {
	case "json", "text", "console":
	default:
		return fmt.Errorf("log.format %q is not one of json, text", cfg.Format)
	}

	return nil
}
