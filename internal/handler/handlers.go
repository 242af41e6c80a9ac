package handler

import (
	"github.com/MKhiriev/shadbase/internal/handler/http"
	"github.com/MKhiriev/shadbase/internal/logger"
	"github.com/MKhiriev/shadbase/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(app http.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if app == nil {
		return nil, errNoApplication
	}

	return &Handlers{
		HTTP: http.NewHandler(app, buildInfo, logger),
	}, nil
}
