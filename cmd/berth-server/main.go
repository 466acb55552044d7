// Package main provides the entry point for berth-server.
//
// berth-server is a small local backend that serves an HTML page and a
// JSON API exclusively over a Unix domain socket.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/harborui/berth/internal/core/counter"
	"github.com/harborui/berth/internal/infra/buildinfo"
	"github.com/harborui/berth/internal/infra/confloader"
	"github.com/harborui/berth/internal/infra/shutdown"
	"github.com/harborui/berth/internal/server/config"
	"github.com/harborui/berth/internal/server/httpserver"
	"github.com/harborui/berth/internal/server/socket"
	"github.com/harborui/berth/internal/telemetry/logger"
	"github.com/harborui/berth/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse command line flags
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		socketPath  = flag.String("socket", "", "Unix socket path (overrides config)")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("berth-server %s\n", buildinfo.String())
		return nil
	}

	// Load configuration
	cfg, err := loadConfig(*configFile, *socketPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize logger
	log, slogLogger, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	build := buildinfo.Get()
	log.Info("starting berth-server",
		"version", build.Version,
		"commit", build.Commit,
		"socket", cfg.Server.Socket.Path)

	// Shared request counter, owned here and injected into the router.
	ctr := counter.New()

	// Prometheus registry exposing the counter value alongside request
	// metrics.
	registry := metric.NewRegistry(ctr.Value)

	// Build the HTTP handler stack.
	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Counter:    ctr,
		Metrics:    registry,
		Logger:     slogLogger,
		SocketPath: cfg.Server.Socket.Path,
		RateLimit:  cfg.Server.HTTP.RateLimit,
	})

	httpServer := httpserver.New(router, cfg.Server.HTTP)

	// Bind the unix socket. A live socket at the path refuses the bind;
	// a stale file from an unclean shutdown is removed first.
	mode, err := cfg.Server.Socket.FileMode()
	if err != nil {
		return fmt.Errorf("parse socket mode %q: %w", cfg.Server.Socket.Mode, err)
	}

	ln, err := socket.Listen(cfg.Server.Socket.Path, socket.Options{
		Mode:   mode,
		Logger: slogLogger,
	})
	if err != nil {
		return fmt.Errorf("bind socket: %w", err)
	}

	// Optionally watch for the socket file disappearing underneath us.
	var watcher *socket.Watcher
	if cfg.Server.Socket.Watch {
		watcher, err = socket.NewWatcher(ln.Path(), slogLogger)
		if err != nil {
			log.Warn("socket watcher unavailable", "error", err)
		} else {
			watcher.StartAsync()
		}
	}

	// Setup graceful shutdown
	shutdownHandler := shutdown.NewHandler(cfg.Server.HTTP.ShutdownTimeout)

	// Register shutdown hooks (reverse order of startup)
	shutdownHandler.OnShutdown("http-server", func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	if watcher != nil {
		shutdownHandler.OnShutdown("socket-watcher", func(ctx context.Context) error {
			return watcher.Stop()
		})
	}

	shutdownHandler.OnShutdown("socket", func(ctx context.Context) error {
		return ln.Close()
	})

	// Start HTTP server in goroutine
	go func() {
		log.Info("serving on unix socket", "path", ln.Path())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	// Wait for shutdown signal
	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from defaults, file, environment, and
// the --socket flag, in that order of precedence.
func loadConfig(configFile, socketOverride string) (*config.ServerConfig, error) {
	// Start with defaults
	cfg := config.Default()

	// Create loader with optional config file
	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)

	// Load and unmarshal
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	// Command line beats everything.
	if socketOverride != "" {
		cfg.Server.Socket.Path = socketOverride
	}

	// Validate configuration
	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger.
// Returns both the logger interface and slog.Logger for components that need it.
func initLogger(cfg *config.ServerConfig) (logger.Logger, *slog.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, nil, err
	}

	// Set as default logger
	logger.SetDefault(log)

	// Components taking *slog.Logger share the same handler.
	slogLogger := slog.Default()
	if s, ok := log.(interface{ Slog() *slog.Logger }); ok {
		slogLogger = s.Slog()
	}

	return log, slogLogger, nil
}
