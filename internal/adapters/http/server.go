package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	api "blacklist/internal/api"
	"blacklist/internal/logger"
	"blacklist/internal/metrics"
	"blacklist/internal/ports"
)

const (
	defaultMaxUploadBytes = 10 << 20
	maxJSONBody           = 1 << 20
)

// Options tunes request limits.
type Options struct {
	MaxUploadBytes int64
}

// Server implements the generated StrictServerInterface. Identity is
// supplied per request by the upstream auth proxy; see authorize.
type Server struct {
	cases     ports.Cases
	users     ports.Users
	companies ports.Companies
	overview  ports.Overview
	log       *logger.Logger
	metrics   *metrics.Metrics
	opts      Options
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(cases ports.Cases, users ports.Users, companies ports.Companies, overview ports.Overview, log *logger.Logger, m *metrics.Metrics, opts Options) *Server {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUploadBytes
	}
	return &Server{
		cases:     cases,
		users:     users,
		companies: companies,
		overview:  overview,
		log:       log,
		metrics:   m,
		opts:      opts,
	}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)
	r.Use(s.limitBody)

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	}

	handler := api.NewStrictHandlerWithOptions(s, []api.StrictMiddlewareFunc{s.authorize}, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})
	return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}
