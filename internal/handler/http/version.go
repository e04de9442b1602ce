package http

import (
	"net/http"

	"github.com/MKhiriev/go-plant-keeper/internal/service"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, serverVersion, http.StatusOK)
}

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Check(r.Context())

	code := http.StatusOK
	if status.Status != service.StatusOK {
		code = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, status, code)
}
