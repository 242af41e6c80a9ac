package http

import (
	"bytes"
	"net/http"
	"path"
	"time"
)

// getStylesheet serves a processed global stylesheet by its URL.
func (h *Handler) getStylesheet(w http.ResponseWriter, r *http.Request) {
	sheet, ok := h.app.Stylesheet(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, path.Base(sheet.URL), time.Time{}, bytes.NewReader(sheet.Content))
}
