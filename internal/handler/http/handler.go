package http

import (
	"github.com/MKhiriev/shadbase/internal/adapter"
	"github.com/MKhiriev/shadbase/internal/config"
	"github.com/MKhiriev/shadbase/internal/logger"
	"github.com/MKhiriev/shadbase/internal/nuxt"
	"github.com/MKhiriev/shadbase/models"
)

// App is the part of a bootstrapped application the HTTP layer reads.
// [*nuxt.App] implements it.
type App interface {
	Config() config.AppConfig
	DevtoolsEnabled() bool
	Stylesheet(url string) (nuxt.Stylesheet, bool)
	Components() []models.Component
	Supabase() adapter.SupabaseClient
}

type Handler struct {
	app       App
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(app App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		app:       app,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
