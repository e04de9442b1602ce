// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A request whose path exists but whose method is not registered is answered
// with 404 instead of chi's default 405, so unsupported methods do not reveal
// which paths exist. Parameterised routes such as /api/plants/{plantID} are
// resolved through [chi.Mux.Match]. When the method does match after all the
// request is served by the router as usual.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
	}
}
