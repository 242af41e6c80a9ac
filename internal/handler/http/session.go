package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/shadbase/internal/config"
	"github.com/MKhiriev/shadbase/internal/logger"
	"github.com/MKhiriev/shadbase/internal/utils"
	"github.com/MKhiriev/shadbase/models"
)

const (
	accessTokenCookie  = "sb-access-token"
	refreshTokenCookie = "sb-refresh-token"

	maxSessionBodySize = 64 << 10
)

// setSession mirrors a client-side auth state change into HttpOnly session
// cookies so server routes can act on behalf of the user.
func (h *Handler) setSession(w http.ResponseWriter, r *http.Request) {
	if h.app.Supabase() == nil {
		writeError(w, r, ErrSupabaseNotInstalled)
		return
	}

	var req models.SessionRequest
	if err := utils.DecodeJSON(r.Body, &req, maxSessionBodySize); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid session request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	cookieOptions := h.app.Config().Supabase.CookieOptions
	secure := r.TLS != nil

	switch req.Event {
	case models.AuthEventSignedIn,
		models.AuthEventTokenRefreshed,
		models.AuthEventUserUpdated,
		models.AuthEventPasswordRecovery,
		models.AuthEventMFAChallengeVerified:
		if req.Session == nil || req.Session.AccessToken == "" {
			writeError(w, r, ErrMissingSession)
			return
		}
		setSessionCookies(w, req.Session, cookieOptions, secure)

	case models.AuthEventInitialSession:
		// A client without a stored session reports a null session.
		if req.Session == nil || req.Session.AccessToken == "" {
			clearSessionCookies(w, secure)
			break
		}
		setSessionCookies(w, req.Session, cookieOptions, secure)

	case models.AuthEventSignedOut:
		clearSessionCookies(w, secure)

	default:
		writeError(w, r, fmt.Errorf("%w: %q", ErrUnknownAuthEvent, req.Event))
		return
	}

	logger.FromRequest(r).Debug().Str("event", string(req.Event)).Msg("session cookies updated")
	w.WriteHeader(http.StatusNoContent)
}

// getUser returns the user the session cookie belongs to.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	client := h.app.Supabase()
	if client == nil {
		writeError(w, r, ErrSupabaseNotInstalled)
		return
	}

	token, ok := utils.GetAccessTokenFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSessionCookie)
		return
	}

	user, err := client.GetUser(r.Context(), token)
	if err != nil {
		writeError(w, r, fmt.Errorf("get user: %w", err))
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("write user")
	}
}

func setSessionCookies(w http.ResponseWriter, session *models.Session, opts config.CookieOptions, secure bool) {
	http.SetCookie(w, sessionCookie(accessTokenCookie, session.AccessToken, opts, secure))
	if session.RefreshToken != "" {
		http.SetCookie(w, sessionCookie(refreshTokenCookie, session.RefreshToken, opts, secure))
	}
}

func clearSessionCookies(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, expiredCookie(accessTokenCookie, secure))
	http.SetCookie(w, expiredCookie(refreshTokenCookie, secure))
}

// sessionCookie builds a session cookie. A zero MaxAge yields a
// browser-session cookie without a Max-Age attribute.
func sessionCookie(name, value string, opts config.CookieOptions, secure bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if opts.MaxAge > 0 {
		cookie.MaxAge = opts.MaxAge
	}

	return cookie
}

func expiredCookie(name string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// accessTokenFromRequest returns the access token cookie value.
func accessTokenFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(accessTokenCookie)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && cookie.Value == "") {
		return "", ErrNoSessionCookie
	}
	if err != nil {
		return "", err
	}

	return cookie.Value, nil
}
