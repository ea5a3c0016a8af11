package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// HealthCheck reports the state of one dependency on /health.
type HealthCheck struct {
	Name  string
	State func() string
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewRouter returns a chi router carrying the middleware shared by every
// service, with /health and /metrics already mounted.
func NewRouter(service string, log *zap.Logger, requestTimeout time.Duration, checks ...HealthCheck) chi.Router {
	if log == nil {
		log = zap.NewNop()
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := newHTTPMetrics(reg, service)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestID(log))
	r.Use(AccessLog)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Metrics)
	r.Use(CORS())
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok"}
		if len(checks) > 0 {
			resp.Checks = make(map[string]string, len(checks))
			for _, c := range checks {
				resp.Checks[c.Name] = c.State()
			}
		}
		RespondJSON(w, http.StatusOK, resp)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
