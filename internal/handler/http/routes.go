package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	router.Use(withSessionCookie, h.withAuthRedirect)

	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/_config", h.getRuntimeConfig)
	router.Get("/_nuxt/*", h.getStylesheet)

	// session relay
	router.Post("/api/_supabase/session", h.setSession)
	router.Get("/api/_supabase/user", h.getUser)

	if h.app.DevtoolsEnabled() {
		router.Get(devtoolsPrefix+"/config", h.getDevtoolsConfig)
		router.Get(devtoolsPrefix+"/components", h.getDevtoolsComponents)
		router.Handle(devtoolsPrefix+"/metrics", promhttp.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
