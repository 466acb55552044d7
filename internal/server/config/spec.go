// Package config defines the berth-server configuration structure.
package config

import (
	"os"
	"strconv"
	"time"
)

// ServerConfig is the root configuration for berth-server.
type ServerConfig struct {
	Server ServerSection `koanf:"server"`
	Log    LogSection    `koanf:"log"`
}

// ServerSection configures the serving endpoint.
type ServerSection struct {
	Socket SocketConfig `koanf:"socket"`
	HTTP   HTTPConfig   `koanf:"http"`
}

// SocketConfig configures the Unix domain socket.
type SocketConfig struct {
	// Path is the filesystem path the listener binds to.
	Path string `koanf:"path"`

	// Mode is the octal file mode applied to the socket after bind
	// (e.g. "0600"). The host shell is the only intended client, so
	// the default keeps the socket owner-only.
	Mode string `koanf:"mode"`

	// Watch enables the fsnotify watcher that warns when the socket
	// file disappears while serving.
	Watch bool `koanf:"watch"`
}

// HTTPConfig configures HTTP server behavior on the socket.
type HTTPConfig struct {
	// ReadHeaderTimeout bounds how long a client may take to send
	// request headers before the connection is dropped.
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`

	// IdleTimeout bounds how long a keep-alive connection may sit idle.
	IdleTimeout time.Duration `koanf:"idle_timeout"`

	// ShutdownTimeout bounds connection draining at shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RateLimit is the global request rate limit in requests/second.
	// Zero disables rate limiting.
	RateLimit int `koanf:"rate_limit"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// FileMode parses the configured socket mode as an octal file mode.
func (c SocketConfig) FileMode() (os.FileMode, error) {
	mode, err := strconv.ParseUint(c.Mode, 8, 32)
	if err != nil {
		return 0, err
	}
	return os.FileMode(mode), nil
}
