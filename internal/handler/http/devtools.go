package http

import (
	"net/http"

	"github.com/MKhiriev/shadbase/internal/logger"
	"github.com/MKhiriev/shadbase/internal/utils"
)

const devtoolsPrefix = "/__nuxt_devtools__"

// getDevtoolsConfig serves the full configuration with secrets masked.
func (h *Handler) getDevtoolsConfig(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.app.Config().Redacted(), http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("write devtools config")
	}
}

// getDevtoolsComponents serves the registered UI components.
func (h *Handler) getDevtoolsComponents(w http.ResponseWriter, r *http.Request) {
	components := h.app.Components()
	if components == nil {
		writeError(w, r, ErrShadcnNotInstalled)
		return
	}

	if _, err := utils.WriteJSON(w, components, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("write devtools components")
	}
}
