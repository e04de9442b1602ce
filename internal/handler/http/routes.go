package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Handle("/metrics", h.metrics.Handler())
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadDir))))

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Get("/api/plants", h.listPlants)
		r.Post("/api/plants", h.createPlant)
		r.Get("/api/plants/{plantID}", h.getPlant)
		r.Put("/api/plants/{plantID}", h.updatePlant)
		r.Delete("/api/plants/{plantID}", h.deletePlant)
		r.Get("/api/tags", h.listTags)

		r.Post("/api/plants/{plantID}/journal", h.addJournalEntry)
		r.Get("/api/plants/{plantID}/journal/{entryID}", h.getJournalEntry)
		r.Put("/api/plants/{plantID}/journal/{entryID}", h.updateJournalEntry)
		r.Delete("/api/plants/{plantID}/journal/{entryID}", h.deleteJournalEntry)

		r.Post("/api/plants/{plantID}/schedules", h.addSchedule)
		r.Post("/api/plants/{plantID}/schedules/{scheduleID}/complete", h.completeSchedule)
		r.Delete("/api/plants/{plantID}/schedules/{scheduleID}", h.deleteSchedule)

		r.Get("/api/dashboard", h.getDashboard)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.getHealth)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
