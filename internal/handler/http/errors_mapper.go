package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-plant-keeper/internal/app"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/planner"
	"github.com/MKhiriev/go-plant-keeper/internal/service"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/internal/validators"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// errorStatuses maps sentinel errors to HTTP statuses. The first match wins,
// so wrapped gateway failures report 503 before the store error they carry.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrGatewayUnavailable, http.StatusServiceUnavailable},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidForm, http.StatusBadRequest},

	{planner.ErrInvalidFrequency, http.StatusBadRequest},

	{validators.ErrEmptyNote, http.StatusBadRequest},
	{validators.ErrEmptyActivity, http.StatusBadRequest},

	{store.ErrPlantNotFound, http.StatusNotFound},
	{store.ErrJournalEntryNotFound, http.StatusNotFound},
	{store.ErrScheduleEntryNotFound, http.StatusNotFound},
	{store.ErrUnsupportedImageType, http.StatusBadRequest},
}

func statusFromError(err error) int {
	for _, candidate := range errorStatuses {
		if errors.Is(err, candidate.err) {
			return candidate.status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage returns the text sent to the client. Server-side failures
// are replaced by a fixed message so driver details never leak.
func publicMessage(err error, status int) string {
	switch status {
	case http.StatusServiceUnavailable:
		return app.MsgStorageUnavailable
	case http.StatusInternalServerError:
		return app.MsgInternalServerError
	default:
		return err.Error()
	}
}

// writeError logs err and answers with the mapped status.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: publicMessage(err, status)}, status)
}
