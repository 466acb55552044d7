// Package handler provides HTTP request handlers for berth.
package handler

import (
	"net/http"

	"github.com/harborui/berth/internal/core/info"
)

// indexData is the template context for the index page.
type indexData struct {
	Info    info.Info
	Counter int64
}

// handleIndex handles GET /.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Info:    info.Snapshot(h.socketPath),
		Counter: h.counter.Value(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.indexTmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render index page", "error", err)
	}
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Hello, Berth!</title>
    <style>
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            min-height: 100vh;
            display: flex;
            flex-direction: column;
            background: linear-gradient(135deg, #1a1a2e 0%, #16213e 50%, #0f3460 100%);
            color: #eee;
        }
        header { padding: 2rem; text-align: center; background: rgba(0, 0, 0, 0.2); }
        .logo { font-size: 4rem; margin-bottom: 0.5rem; }
        h1 { font-size: 2.5rem; font-weight: 300; margin-bottom: 0.5rem; }
        .tagline { opacity: 0.7; font-size: 1.1rem; }
        main { flex: 1; padding: 2rem; max-width: 800px; margin: 0 auto; width: 100%; }
        .card {
            background: rgba(255, 255, 255, 0.1);
            border-radius: 12px;
            padding: 1.5rem;
            margin-bottom: 1.5rem;
            border: 1px solid rgba(255, 255, 255, 0.1);
        }
        .card h2 { font-size: 1.2rem; margin-bottom: 1rem; color: #64b5f6; }
        .info-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 1rem; }
        .info-item { padding: 1rem; background: rgba(0, 0, 0, 0.2); border-radius: 8px; }
        .info-label { font-size: 0.8rem; text-transform: uppercase; opacity: 0.6; margin-bottom: 0.25rem; }
        .info-value { font-size: 1.1rem; font-family: 'Monaco', 'Menlo', monospace; }
        .button {
            display: inline-block;
            padding: 0.75rem 1.5rem;
            background: #64b5f6;
            color: #1a1a2e;
            border: none;
            border-radius: 8px;
            font-size: 1rem;
            cursor: pointer;
        }
        footer { text-align: center; padding: 1.5rem; opacity: 0.6; font-size: 0.9rem; }
        #counter { font-size: 2rem; font-weight: bold; color: #64b5f6; }
    </style>
</head>
<body>
    <header>
        <div class="logo">&#9875;</div>
        <h1>Hello, Berth!</h1>
        <p class="tagline">Your Go backend is running over a Unix domain socket</p>
    </header>

    <main>
        <div class="card">
            <h2>System Information</h2>
            <div class="info-grid">
                <div class="info-item">
                    <div class="info-label">Socket Path</div>
                    <div class="info-value">{{.Info.SocketPath}}</div>
                </div>
                <div class="info-item">
                    <div class="info-label">Hostname</div>
                    <div class="info-value">{{.Info.Hostname}}</div>
                </div>
                <div class="info-item">
                    <div class="info-label">Server Time</div>
                    <div class="info-value">{{.Info.Time.Format "2006-01-02 15:04:05"}}</div>
                </div>
                <div class="info-item">
                    <div class="info-label">Go Version</div>
                    <div class="info-value">{{.Info.GoVersion}}</div>
                </div>
            </div>
        </div>

        <div class="card">
            <h2>Interactive Demo</h2>
            <p style="margin-bottom: 1rem;">Click the button to fetch data from the API:</p>
            <button class="button" onclick="fetchCounter()">Increment Counter</button>
            <p style="margin-top: 1rem;">Counter: <span id="counter">{{.Counter}}</span></p>
        </div>
    </main>

    <footer>
        <p>Served locally over {{.Info.SocketPath}} &mdash; not reachable from the network</p>
    </footer>

    <script>
        async function fetchCounter() {
            try {
                const response = await fetch('/api/increment', {method: 'POST'});
                const data = await response.json();
                document.getElementById('counter').textContent = data.count;
            } catch (e) {
                console.error('Error:', e);
            }
        }
    </script>
</body>
</html>
`
