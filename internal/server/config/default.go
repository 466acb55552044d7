// Package config defines the berth-server configuration structure.
package config

import (
	"os"
	"time"
)

// Default configuration values.
const (
	DefaultSocketPath = "/tmp/hello-harbor.sock"
	DefaultSocketMode = "0600"

	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultIdleTimeout       = 60 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// HostSocketEnv is the environment variable a Harbor-style host sets to
// tell the backend where to bind. It seeds the default socket path, so
// a host that configures nothing else still gets its socket honored;
// berth-native sources (BERTH_* env, config file, flags) override it.
const HostSocketEnv = "HARBOR_SOCKET"

// Default returns the default server configuration.
func Default() *ServerConfig {
	socketPath := DefaultSocketPath
	if p := os.Getenv(HostSocketEnv); p != "" {
		socketPath = p
	}

	return &ServerConfig{
		Server: ServerSection{
			Socket: SocketConfig{
				Path:  socketPath,
				Mode:  DefaultSocketMode,
				Watch: true,
			},
			HTTP: HTTPConfig{
				ReadHeaderTimeout: DefaultReadHeaderTimeout,
				IdleTimeout:       DefaultIdleTimeout,
				ShutdownTimeout:   DefaultShutdownTimeout,
			},
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
