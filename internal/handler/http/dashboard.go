package http

import (
	"net/http"

	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
)

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	query := models.DashboardQuery{
		Search: r.URL.Query().Get("search"),
		Filter: models.ParseDashboardFilter(r.URL.Query().Get("filter")),
	}

	dashboard, err := h.services.DashboardService.GetDashboard(r.Context(), query)
	if err != nil {
		writeError(w, r, err, "*Handler.getDashboard")
		return
	}

	if query.Search == "" && query.Filter == models.FilterNone {
		h.metrics.ObserveDashboard(dashboard)
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}
