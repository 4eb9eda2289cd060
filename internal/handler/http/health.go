package http

import (
	"net/http"

	"github.com/MKhiriev/echosell-api/internal/utils"
)

// root greets callers with the project name and version. Unlike the API
// endpoints it responds with a bare object, not the response envelope.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]string{
		"message": "Welcome to " + h.cfg.ProjectName,
		"version": h.cfg.Version,
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]string{"status": "healthy"}, http.StatusOK)
}
