// Package server hosts the interactive demonstration page: a parameter form,
// the concentration-vs-time chart, and the CSV export, served over HTTP.
package server

import (
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server wires the router, the transient run store and the metrics registry.
type Server struct {
	router *chi.Mux
	lgr    *zap.Logger
	store  *runStore
	mtr    *metrics
	tmpl   *template.Template
}

// New builds the demonstration server. Runs are held in memory only; nothing
// persists past the process.
func New(lgr *zap.Logger) *Server {
	reg := prometheus.NewRegistry()
	s := &Server{
		lgr:   lgr,
		store: newRunStore(),
		mtr:   newMetrics(reg),
		tmpl:  template.Must(template.New("index").Parse(indexHTML)),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.mtr.httpMiddleware)
	r.Get("/", s.handleIndex)
	r.Post("/run", s.handleRun)
	r.Get("/runs/{id}/chart.png", s.handleChart)
	r.Get("/runs/{id}/results.csv", s.handleCSV)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe blocks serving the demonstration page on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.lgr.Info("serving", zap.String("addr", addr))
	return srv.ListenAndServe()
}
