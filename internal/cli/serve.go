package cli

import (
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/canvasballoon/pkg/errors"
	"github.com/matzehuels/canvasballoon/pkg/observability"
	"github.com/matzehuels/canvasballoon/pkg/pipeline"
	"github.com/matzehuels/canvasballoon/pkg/scene"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	noCache bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: "127.0.0.1:8080"}

	cmd := &cobra.Command{
		Use:   "serve [scene.toml]",
		Short: "Serve a balloon scene over HTTP",
		Long: `Serve a balloon scene over HTTP.

Endpoints:
  GET /                 HTML page with the scene inlined as SVG
  GET /scene.svg        SVG document
  GET /scene.png        PNG image (?scale=2 for a larger raster)
  GET /scene.pdf        PDF document (requires rsvg-convert)
  GET /scene.json       draw command log
  GET /healthz          liveness check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return c.runServe(cmd.Context(), input, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runServe serves the scene until ctx is canceled.
func (c *CLI) runServe(ctx context.Context, input string, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	s, err := loadScene(input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	ln, err := net.Listen("tcp", opts.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", opts.addr, err)
	}

	srv := &http.Server{
		Handler:           newRouter(runner, s, logger),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()

	printSuccess("Serving %s", sceneName(input))
	if id, err := s.ID(); err == nil {
		printKeyValue("Scene ID", id.String())
	}
	printKeyValue("Balloons", strconv.Itoa(len(s.Balloons)))
	fmt.Println("  " + StyleLink.Render("http://"+ln.Addr().String()+"/"))

	select {
	case err := <-serveErr:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return ctx.Err()
}

// sceneServer answers requests for one scene.
type sceneServer struct {
	runner *pipeline.Runner
	scene  *scene.Scene
}

// newRouter builds the chi router serving s.
func newRouter(runner *pipeline.Runner, s *scene.Scene, logger *log.Logger) http.Handler {
	srv := &sceneServer{runner: runner, scene: s}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", srv.handleIndex)
	r.Get("/healthz", srv.handleHealth)
	r.Get("/scene.{format}", srv.handleArtifact)

	return r
}

// requestLogger attaches logger to the request context and logs each
// response. It also reports to the HTTP observability hooks.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			hooks := observability.HTTP()
			hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ctx := withLogger(r.Context(), logger.With("request_id", middleware.GetReqID(r.Context())))
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, elapsed)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", elapsed)
		})
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>body{margin:0;display:flex;justify-content:center;align-items:center;min-height:100vh;background:#f4f4f4}</style>
</head>
<body>
{{.SVG}}
</body>
</html>
`))

func (s *sceneServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	res, err := s.runner.Execute(r.Context(), s.scene, pipeline.Options{Formats: []string{pipeline.FormatSVG}})
	if err != nil {
		writeError(w, r, err)
		return
	}

	title := s.scene.Title
	if title == "" {
		title = appName
	}
	// Inline documents drop the XML declaration.
	svg := string(res.Artifacts[pipeline.FormatSVG])
	if i := strings.Index(svg, "<svg"); i > 0 {
		svg = svg[i:]
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTemplate.Execute(w, struct {
		Title string
		SVG   template.HTML
	}{title, template.HTML(svg)})
}

func (s *sceneServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *sceneServer) handleArtifact(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		http.NotFound(w, r)
		return
	}

	opts := pipeline.Options{Formats: []string{format}}
	if v := r.URL.Query().Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v))
			return
		}
		opts.Scale = scale
	}

	res, err := s.runner.Execute(r.Context(), s.scene, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cacheStatus := "MISS"
	if res.CacheHit {
		cacheStatus = "HIT"
	}
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("X-Scene-ID", res.SceneID)
	w.Header().Set("X-Cache", cacheStatus)
	_, _ = w.Write(res.Artifacts[format])
}

// writeError maps err to an HTTP status and writes the user message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}
	if status == http.StatusInternalServerError {
		loggerFromContext(r.Context()).Error("render failed", "path", r.URL.Path, "err", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}
