package cli

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/canvasballoon/pkg/cache"
	"github.com/matzehuels/canvasballoon/pkg/observability"
	"github.com/matzehuels/canvasballoon/pkg/pipeline"
	"github.com/matzehuels/canvasballoon/pkg/scene"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(io.Discard)
	srv := httptest.NewServer(newRouter(pipeline.NewRunner(fc, nil, logger), scene.Demo(), logger))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestServeEndpoints(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path        string
		status      int
		contentType string
		contains    string
	}{
		{"/healthz", http.StatusOK, "text/plain; charset=utf-8", "ok"},
		{"/", http.StatusOK, "text/html; charset=utf-8", "<svg"},
		{"/scene.svg", http.StatusOK, "image/svg+xml", "<radialGradient"},
		{"/scene.json", http.StatusOK, "application/json", `"balloons"`},
		{"/scene.png", http.StatusOK, "image/png", "PNG"},
		{"/scene.gif", http.StatusNotFound, "", ""},
		{"/scene.png?scale=abc", http.StatusBadRequest, "", "invalid scale"},
		{"/scene.png?scale=100", http.StatusBadRequest, "", "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, srv.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d (%s)", resp.StatusCode, tt.status, body)
			}
			if tt.contentType != "" && resp.Header.Get("Content-Type") != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", resp.Header.Get("Content-Type"), tt.contentType)
			}
			if !strings.Contains(body, tt.contains) {
				t.Errorf("body does not contain %q", tt.contains)
			}
		})
	}
}

func TestServeArtifactHeaders(t *testing.T) {
	srv := newTestServer(t)

	first, _ := get(t, srv.URL+"/scene.svg")
	if got := first.Header.Get("X-Cache"); got != "MISS" {
		t.Errorf("first X-Cache = %q, want MISS", got)
	}
	if id, _ := scene.Demo().ID(); first.Header.Get("X-Scene-ID") != id.String() {
		t.Errorf("X-Scene-ID = %q, want %s", first.Header.Get("X-Scene-ID"), id)
	}

	second, _ := get(t, srv.URL+"/scene.svg")
	if got := second.Header.Get("X-Cache"); got != "HIT" {
		t.Errorf("second X-Cache = %q, want HIT", got)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	statuses map[string]int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, path string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses[path] = status
}

func TestServeReportsHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{statuses: make(map[string]int)}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	srv := newTestServer(t)
	get(t, srv.URL+"/healthz")
	get(t, srv.URL+"/scene.gif")

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if hooks.statuses["/healthz"] != http.StatusOK {
		t.Errorf("/healthz status = %d", hooks.statuses["/healthz"])
	}
	if hooks.statuses["/scene.gif"] != http.StatusNotFound {
		t.Errorf("/scene.gif status = %d", hooks.statuses["/scene.gif"])
	}
}

func TestRunServeShutsDown(t *testing.T) {
	c, _ := newTestCLI(t)
	ctx, cancel := context.WithCancel(withLogger(context.Background(), c.Logger))

	done := make(chan error, 1)
	go func() { done <- c.runServe(ctx, "", serveOpts{addr: "127.0.0.1:0", noCache: true}) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("runServe = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runServe did not stop after cancel")
	}
}
