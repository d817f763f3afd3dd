package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	api "blacklist/internal/api"
	"blacklist/internal/domain"
)

// paramHints phrase binding failures for the parameters clients get wrong.
var paramHints = map[string]string{
	"id":         "must be a UUID",
	"birth_date": "must be a date (YYYY-MM-DD)",
	"approved":   "must be true or false",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func errorBody(msg string) api.Error {
	return api.Error{Error: msg}
}

// writeError maps the domain error taxonomy onto HTTP statuses. It serves as
// the strict handler's response error hook.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr     *domain.ValidationError
		tooLarge *http.MaxBytesError
	)
	switch {
	case errors.As(err, &verr):
		fields := make([]api.FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, api.FieldError{Field: f.Field, Message: f.Message})
		}
		writeJSON(w, http.StatusBadRequest, api.Error{Error: "validation failed", Fields: &fields})
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("request body too large"))
	case errors.Is(err, domain.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorBody("authentication required"))
	case errors.Is(err, errAwaitingApproval):
		writeJSON(w, http.StatusForbidden, errorBody(errAwaitingApproval.Error()))
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody("forbidden"))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, domain.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorBody("this case was already decided"))
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody("conflict"))
	default:
		if s.log != nil {
			s.log.WithRequestID(middleware.GetReqID(r.Context())).WithError(err).Error("request failed")
		}
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

// requestError handles bodies the generated handlers could not decode.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		s.writeError(w, r, err)
	case errors.Is(err, io.EOF):
		s.writeError(w, r, domain.NewValidationError("body", "is required"))
	default:
		s.writeError(w, r, domain.NewValidationError("body", err.Error()))
	}
}

// paramError handles path and query parameters that failed to bind.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *api.InvalidParamFormatError
	if !errors.As(err, &perr) {
		s.writeError(w, r, domain.NewValidationError("request", err.Error()))
		return
	}
	msg, ok := paramHints[perr.ParamName]
	if !ok {
		msg = "is malformed"
	}
	s.writeError(w, r, domain.NewValidationError(perr.ParamName, msg))
}
