package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/shadbase/internal/utils"
)

// loginPath is where unauthenticated visitors are sent when redirect is on.
const loginPath = "/login"

// redirectExcludedPrefixes are never redirected to the login page.
var redirectExcludedPrefixes = []string{"/api/", "/_nuxt/", "/__nuxt_devtools__/"}

// redirectExcludedPaths are never redirected to the login page.
var redirectExcludedPaths = []string{loginPath, "/confirm"}

// withSessionCookie puts the access token from the session cookie, if any,
// into the request context.
func withSessionCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, err := accessTokenFromRequest(r); err == nil {
			r = r.WithContext(utils.WithAccessToken(r.Context(), token))
		}

		next.ServeHTTP(w, r)
	})
}

// withAuthRedirect sends visitors without a session to the login page when
// redirect is enabled in the backend-service record. Must run after
// withSessionCookie.
func (h *Handler) withAuthRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.app.Config().Supabase.Redirect || isRedirectExcluded(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		if _, ok := utils.GetAccessTokenFromContext(r.Context()); !ok {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isRedirectExcluded(path string) bool {
	for _, p := range redirectExcludedPaths {
		if path == p {
			return true
		}
	}
	for _, prefix := range redirectExcludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
