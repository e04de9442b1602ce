package http

import (
	"net/http"

	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addSchedule(w http.ResponseWriter, r *http.Request) {
	var body models.ScheduleRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err, "*Handler.addSchedule")
		return
	}

	entry, err := h.services.ScheduleService.AddSchedule(r.Context(),
		chi.URLParam(r, plantIDParam), body.Activity, body.FrequencyText())
	if err != nil {
		writeError(w, r, err, "*Handler.addSchedule")
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) completeSchedule(w http.ResponseWriter, r *http.Request) {
	entry, err := h.services.ScheduleService.CompleteSchedule(r.Context(),
		chi.URLParam(r, plantIDParam), chi.URLParam(r, scheduleIDParam))
	if err != nil {
		writeError(w, r, err, "*Handler.completeSchedule")
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteSchedule(w http.ResponseWriter, r *http.Request) {
	err := h.services.ScheduleService.DeleteSchedule(r.Context(),
		chi.URLParam(r, plantIDParam), chi.URLParam(r, scheduleIDParam))
	if err != nil {
		writeError(w, r, err, "*Handler.deleteSchedule")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
