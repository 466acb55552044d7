package config

import (
	"strings"
	"testing"

	"github.com/harborui/berth/internal/infra/confloader"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Socket.Path != DefaultSocketPath {
		t.Errorf("socket path = %q, want %q", cfg.Server.Socket.Path, DefaultSocketPath)
	}
	if cfg.Server.Socket.Mode != DefaultSocketMode {
		t.Errorf("socket mode = %q, want %q", cfg.Server.Socket.Mode, DefaultSocketMode)
	}
	if err := Verify(cfg); err != nil {
		t.Errorf("default config should verify: %v", err)
	}
}

func TestDefault_HostSocketEnv(t *testing.T) {
	t.Setenv(HostSocketEnv, "/tmp/host-set.sock")

	cfg := Default()
	if cfg.Server.Socket.Path != "/tmp/host-set.sock" {
		t.Errorf("socket path = %q, want host env value", cfg.Server.Socket.Path)
	}
}

func TestBerthEnvOverridesHostEnv(t *testing.T) {
	t.Setenv(HostSocketEnv, "/tmp/host-set.sock")
	t.Setenv("BERTH_SERVER_SOCKET_PATH", "/tmp/berth-set.sock")

	cfg := Default()
	if err := confloader.NewLoader().Load(cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Socket.Path != "/tmp/berth-set.sock" {
		t.Errorf("socket path = %q, berth env should win over host env", cfg.Server.Socket.Path)
	}
}

func TestVerify_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantSub string
	}{
		{
			name:    "empty path",
			mutate:  func(c *ServerConfig) { c.Server.Socket.Path = "" },
			wantSub: "socket.path is required",
		},
		{
			name:    "overlong path",
			mutate:  func(c *ServerConfig) { c.Server.Socket.Path = "/tmp/" + strings.Repeat("x", 120) },
			wantSub: "exceeds",
		},
		{
			name:    "bad mode",
			mutate:  func(c *ServerConfig) { c.Server.Socket.Mode = "0999" },
			wantSub: "octal",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *ServerConfig) { c.Server.HTTP.IdleTimeout = -1 },
			wantSub: "timeouts",
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *ServerConfig) { c.Server.HTTP.RateLimit = -5 },
			wantSub: "rate_limit",
		},
		{
			name:    "bad log level",
			mutate:  func(c *ServerConfig) { c.Log.Level = "loud" },
			wantSub: "log.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *ServerConfig) { c.Log.Format = "xml" },
			wantSub: "log.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Verify(cfg)
			if err == nil {
				t.Fatal("Verify should fail")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestSocketConfig_FileMode(t *testing.T) {
	c := SocketConfig{Mode: "0660"}
	mode, err := c.FileMode()
	if err != nil {
		t.Fatalf("FileMode: %v", err)
	}
	if mode != 0o660 {
		t.Errorf("FileMode = %o, want 660", mode)
	}
}
