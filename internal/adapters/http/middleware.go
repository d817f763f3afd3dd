package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	api "blacklist/internal/api"
	"blacklist/internal/domain"
)

// Headers set by the upstream auth proxy after it has verified the session.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

var errAwaitingApproval = errors.New("account is awaiting approval")

// Operations reachable without an identity, and those open to identities an
// admin has not approved yet. Everything else needs an approved actor.
var (
	publicOperations     = map[string]bool{"GetHealthz": true}
	unapprovedOperations = map[string]bool{"PostSignup": true, "GetMe": true}
)

type actorKey struct{}

func withActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// actorFrom returns the actor resolved by authorize. Handlers of non-public
// operations can rely on it being present.
func actorFrom(ctx context.Context) domain.Actor {
	a, _ := ctx.Value(actorKey{}).(domain.Actor)
	return a
}

// authorize resolves the application user once per request, stores it as an
// explicit Actor on the context and gates operations on approval.
func (s *Server) authorize(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
	if publicOperations[operationID] {
		return f
	}
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			return nil, domain.ErrUnauthenticated
		}
		admin := strings.EqualFold(strings.TrimSpace(r.Header.Get(HeaderUserRole)), string(domain.RoleAdmin))
		actor, err := s.users.Resolve(ctx, userID, admin)
		if err != nil {
			return nil, err
		}
		if !actor.Approved && !unapprovedOperations[operationID] {
			return nil, errAwaitingApproval
		}
		return f(withActor(ctx, actor), w, r, request)
	}
}

// limitBody caps request bodies: JSON at maxJSONBody, uploads at
// MaxUploadBytes.
func (s *Server) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := s.opts.MaxUploadBytes
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			limit = maxJSONBody
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		if s.log == nil {
			return
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		entry := s.log.WithRequestID(middleware.GetReqID(r.Context())).WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      status,
			"bytes":       ww.BytesWritten(),
			"duration_ms": time.Since(start).Milliseconds(),
			"remote_addr": r.RemoteAddr,
		})
		if status >= http.StatusInternalServerError {
			entry.Warn("request completed")
			return
		}
		entry.Debug("request completed")
	})
}

// instrument records request metrics keyed by route pattern so path
// parameters do not explode label cardinality.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}
		s.metrics.RequestsInFlight.Inc()
		defer s.metrics.RequestsInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.RequestCounter.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		s.metrics.RequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
