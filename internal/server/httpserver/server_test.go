package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/harborui/berth/internal/core/counter"
	"github.com/harborui/berth/internal/server/config"
	"github.com/harborui/berth/internal/server/socket"
	"github.com/harborui/berth/internal/telemetry/metric"
)

// startServer binds a unix socket in a temp dir and serves the full
// router on it, returning the listener, an HTTP client that dials the
// socket, and the server for shutdown tests.
func startServer(t *testing.T, c *counter.Counter) (*socket.Listener, *http.Client, *Server) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "b.sock")

	ln, err := socket.Listen(path, socket.Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("socket.Listen: %v", err)
	}

	router := NewRouter(&RouterConfig{
		Counter:    c,
		Metrics:    metric.NewRegistry(c.Value),
		Logger:     quietLogger(),
		SocketPath: path,
	})

	srv := New(router, config.Default().Server.HTTP)

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ln)
	}()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
		ln.Close()

		select {
		case err := <-done:
			if err != nil && err != http.ErrServerClosed {
				t.Errorf("Serve returned: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("Serve did not return after Shutdown")
		}
	})

	client := &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", path)
			},
		},
		Timeout: 5 * time.Second,
	}

	return ln, client, srv
}

func TestServe_OverUnixSocket(t *testing.T) {
	c := counter.New()
	_, client, _ := startServer(t, c)

	for want := int64(1); want <= 3; want++ {
		resp, err := client.Post("http://berth/api/increment", "", nil)
		if err != nil {
			t.Fatalf("increment: %v", err)
		}

		var body struct {
			Count int64 `json:"count"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		resp.Body.Close()

		if body.Count != want {
			t.Errorf("count = %d, want %d", body.Count, want)
		}
	}
}

func TestServe_ConcurrentIncrements(t *testing.T) {
	const n = 50

	c := counter.New()
	_, client, _ := startServer(t, c)

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := client.Post("http://berth/api/increment", "", nil)
			if err != nil {
				errs <- err
				return
			}
			resp.Body.Close()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("request failed: %v", err)
	}
	if c.Value() != n {
		t.Errorf("counter = %d, want %d", c.Value(), n)
	}
}

func TestServe_StatusReflectsIncrements(t *testing.T) {
	c := counter.New()
	_, client, _ := startServer(t, c)

	for i := 0; i < 4; i++ {
		resp, err := client.Get("http://berth/api/increment")
		if err != nil {
			t.Fatalf("increment: %v", err)
		}
		resp.Body.Close()
	}

	resp, err := client.Get("http://berth/api/status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Status  string `json:"status"`
		Counter int64  `json:"counter"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Counter != 4 {
		t.Errorf("status = %+v, want ok/4", body)
	}
}

func TestServe_PanicDoesNotKillListener(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.sock")

	ln, err := socket.Listen(path, socket.Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("socket.Listen: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /boom", func(w http.ResponseWriter, r *http.Request) {
		panic("handler failure")
	})
	mux.HandleFunc("GET /ok", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})

	srv := New(Chain(mux, Recover(quietLogger())), config.Default().Server.HTTP)
	go srv.Serve(ln)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctx)
		ln.Close()
	}()

	client := &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", path)
			},
		},
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get("http://berth/boom")
	if err != nil {
		t.Fatalf("panicking route: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("panicking route status = %d, want 500", resp.StatusCode)
	}

	resp, err = client.Get("http://berth/ok")
	if err != nil {
		t.Fatalf("listener dead after panic: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthy route after panic = %d, want 200", resp.StatusCode)
	}
}

func TestShutdown_ReleasesSocketFile(t *testing.T) {
	c := counter.New()
	ln, client, srv := startServer(t, c)

	resp, err := client.Get("http://berth/api/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := ln.Close(); err != nil {
		t.Fatalf("listener Close: %v", err)
	}

	if _, err := os.Lstat(ln.Path()); !os.IsNotExist(err) {
		t.Errorf("socket file still present after shutdown: %v", err)
	}
}
