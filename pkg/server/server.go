// Package server provides the development preview server. It renders a
// document per request, exposes Prometheus metrics, and pushes live
// reload notifications to connected browsers over WebSocket.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/htmlkit-dev/htmlkit/pkg/document"
)

// tracerName identifies render spans from this package.
const tracerName = "htmlkit"

// Source produces the document to serve. It is called on every request
// so edits to the underlying manifest show up on refresh.
type Source func(ctx context.Context) (*document.Document, error)

// Config configures the preview server.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// LiveReload injects the reload client script into served pages and
	// mounts the reload WebSocket endpoint.
	LiveReload bool

	// Logger defaults to the logrus standard logger.
	Logger *logrus.Logger
}

// Server serves rendered documents over HTTP.
type Server struct {
	config Config
	source Source
	reload *ReloadHub
	log    *logrus.Logger
	tracer trace.Tracer
	router chi.Router
}

// New creates a preview server for the given document source.
func New(config Config, source Source) *Server {
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	s := &Server{
		config: config,
		source: source,
		log:    config.Logger,
		tracer: otel.Tracer(tracerName),
	}
	if config.LiveReload {
		s.reload = NewReloadHub()
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Get("/", s.handlePage)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	if s.reload != nil {
		r.Get(reloadPath, s.reload.HandleWebSocket)
	}
	s.router = r

	return s
}

// Handler returns the HTTP handler, for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Reload notifies connected browsers that the page changed. No-op when
// live reload is disabled.
func (s *Server) Reload() {
	if s.reload != nil {
		s.reload.NotifyReload()
	}
}

// ListenAndServe runs the server until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.config.Addr, Handler: s.router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		if s.reload != nil {
			s.reload.Close()
		}
	}()

	s.log.WithField("addr", s.config.Addr).Info("preview server listening")
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// handlePage renders the current document and writes it as HTML.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "htmlkit.render_page",
		trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	start := time.Now()

	doc, err := s.source(ctx)
	if err != nil {
		s.renderError(w, span, err)
		return
	}

	html := doc.Render()
	if s.reload != nil {
		html = injectReloadScript(html)
	}

	renderDuration.Observe(time.Since(start).Seconds())
	renderBytes.Observe(float64(len(html)))
	pagesRendered.Inc()

	span.SetAttributes(
		attribute.String("htmlkit.title", doc.Title()),
		attribute.Int("htmlkit.bytes", len(html)),
	)
	span.SetStatus(codes.Ok, "")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// renderError reports a failed render to the client, the span and the log.
func (s *Server) renderError(w http.ResponseWriter, span trace.Span, err error) {
	renderErrors.Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.log.WithError(err).Error("render failed")
	http.Error(w, "render failed: "+err.Error(), http.StatusInternalServerError)
}

// injectReloadScript inserts the live reload client before </body>. The
// script is only ever added to pages served here, never to sink output.
func injectReloadScript(html string) string {
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		return html[:i] + reloadClientScript + html[i:]
	}
	return html + reloadClientScript
}
