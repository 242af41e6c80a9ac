package http

import (
	"net/http"

	"github.com/MKhiriev/shadbase/internal/logger"
	"github.com/MKhiriev/shadbase/internal/utils"
)

// getRuntimeConfig serves the browser-visible configuration.
func (h *Handler) getRuntimeConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.app.Config()

	w.Header().Set("Cache-Control", "no-store")
	if _, err := utils.WriteJSON(w, cfg.PublicRuntimeConfig(), http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("write runtime config")
	}
}
