package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	runs   *prometheus.CounterVec
	runDur prometheus.Histogram
	reqs   *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "soltrans_runs_total",
			Help: "Completed simulation runs by model type.",
		}, []string{"model"}),
		runDur: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "soltrans_run_duration_seconds",
			Help:    "Simulation run wall time.",
			Buckets: prometheus.DefBuckets,
		}),
		reqs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "soltrans_http_requests_total",
			Help: "HTTP requests by route pattern and status code.",
		}, []string{"route", "code"}),
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (m *metrics) httpMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		m.reqs.WithLabelValues(route, strconv.Itoa(sr.status)).Inc()
	})
}
