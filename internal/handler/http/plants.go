package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-plant-keeper/internal/planner"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	plantIDParam    = "plantID"
	entryIDParam    = "entryID"
	scheduleIDParam = "scheduleID"

	imageFormField = "image"
)

func (h *Handler) listPlants(w http.ResponseWriter, r *http.Request) {
	query := models.PlantQuery{
		Search: r.URL.Query().Get("search"),
		Tag:    r.URL.Query().Get("tag"),
	}

	list, err := h.services.PlantService.ListPlants(r.Context(), query)
	if err != nil {
		writeError(w, r, err, "*Handler.listPlants")
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) createPlant(w http.ResponseWriter, r *http.Request) {
	input, image, cleanup, err := h.parsePlantForm(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.createPlant")
		return
	}
	defer cleanup()

	plant, err := h.services.PlantService.CreatePlant(r.Context(), input, image)
	if err != nil {
		writeError(w, r, err, "*Handler.createPlant")
		return
	}

	utils.WriteJSON(w, plant, http.StatusCreated)
}

func (h *Handler) getPlant(w http.ResponseWriter, r *http.Request) {
	detail, err := h.services.PlantService.GetPlantDetail(r.Context(), chi.URLParam(r, plantIDParam))
	if err != nil {
		writeError(w, r, err, "*Handler.getPlant")
		return
	}

	utils.WriteJSON(w, detail, http.StatusOK)
}

func (h *Handler) updatePlant(w http.ResponseWriter, r *http.Request) {
	input, image, cleanup, err := h.parsePlantForm(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.updatePlant")
		return
	}
	defer cleanup()

	plant, err := h.services.PlantService.UpdatePlant(r.Context(), chi.URLParam(r, plantIDParam), input, image)
	if err != nil {
		writeError(w, r, err, "*Handler.updatePlant")
		return
	}

	utils.WriteJSON(w, plant, http.StatusOK)
}

func (h *Handler) deletePlant(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PlantService.DeletePlant(r.Context(), chi.URLParam(r, plantIDParam)); err != nil {
		writeError(w, r, err, "*Handler.deletePlant")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.services.PlantService.ListTags(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listTags")
		return
	}

	utils.WriteJSON(w, models.TagsResponse{Tags: tags}, http.StatusOK)
}

// parsePlantForm reads a multipart (or url-encoded) plant form. The image
// part is optional; the returned cleanup closes it and removes temporary
// files.
func (h *Handler) parsePlantForm(w http.ResponseWriter, r *http.Request) (models.PlantInput, *models.ImageUpload, func(), error) {
	noop := func() {}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	err := r.ParseMultipartForm(h.maxUploadSize)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return models.PlantInput{}, nil, noop, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	input := models.PlantInput{
		Name:   r.FormValue("name"),
		Kind:   r.FormValue("kind"),
		Origin: r.FormValue("origin"),
		Care:   r.FormValue("care"),
		Tags:   planner.NormalizeTags(r.FormValue("tags")),
	}

	cleanup := func() {
		if r.MultipartForm != nil {
			r.MultipartForm.RemoveAll()
		}
	}

	if r.MultipartForm == nil {
		return input, nil, cleanup, nil
	}

	file, header, err := r.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return input, nil, cleanup, nil
	}
	if err != nil {
		return models.PlantInput{}, nil, cleanup, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	if header.Filename == "" {
		file.Close()
		return input, nil, cleanup, nil
	}

	return input, &models.ImageUpload{FileName: header.Filename, Content: file}, func() {
		file.Close()
		cleanup()
	}, nil
}
