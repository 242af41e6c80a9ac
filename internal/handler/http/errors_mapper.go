package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/shadbase/internal/adapter"
	"github.com/MKhiriev/shadbase/internal/logger"
)

var errorStatusMap = map[error]int{
	ErrSupabaseNotInstalled: http.StatusNotFound,
	ErrShadcnNotInstalled:   http.StatusNotFound,
	ErrUnknownAuthEvent:     http.StatusBadRequest,
	ErrMissingSession:       http.StatusBadRequest,
	ErrNoSessionCookie:      http.StatusUnauthorized,

	adapter.ErrEmptyAccessToken:    http.StatusUnauthorized,
	adapter.ErrBadRequest:          http.StatusBadRequest,
	adapter.ErrUnauthorized:        http.StatusUnauthorized,
	adapter.ErrForbidden:           http.StatusForbidden,
	adapter.ErrNotFound:            http.StatusNotFound,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrServiceUnavailable:  http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status and its text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Send()
	} else {
		log.Debug().Err(err).Int("status", status).Send()
	}

	http.Error(w, http.StatusText(status), status)
}
