package timesheet

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/current", h.Current)
	r.Get("/week", h.ForDate)
	r.Get("/stats", h.Stats)
	r.Post("/entries", h.AddEntry)
	r.Put("/entries/{entryID}", h.UpdateEntry)
	r.Delete("/entries/{entryID}", h.DeleteEntry)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/submit", h.Submit)

	return r
}
