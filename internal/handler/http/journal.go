package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addJournalEntry(w http.ResponseWriter, r *http.Request) {
	var body models.JournalNoteRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err, "*Handler.addJournalEntry")
		return
	}

	entry, err := h.services.JournalService.AddEntry(r.Context(), chi.URLParam(r, plantIDParam), body.Note)
	if err != nil {
		writeError(w, r, err, "*Handler.addJournalEntry")
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) getJournalEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.services.JournalService.GetEntry(r.Context(), chi.URLParam(r, plantIDParam), chi.URLParam(r, entryIDParam))
	if err != nil {
		writeError(w, r, err, "*Handler.getJournalEntry")
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) updateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var body models.JournalNoteRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err, "*Handler.updateJournalEntry")
		return
	}

	entry, err := h.services.JournalService.UpdateNote(r.Context(),
		chi.URLParam(r, plantIDParam), chi.URLParam(r, entryIDParam), body.Note)
	if err != nil {
		writeError(w, r, err, "*Handler.updateJournalEntry")
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	err := h.services.JournalService.DeleteEntry(r.Context(), chi.URLParam(r, plantIDParam), chi.URLParam(r, entryIDParam))
	if err != nil {
		writeError(w, r, err, "*Handler.deleteJournalEntry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
