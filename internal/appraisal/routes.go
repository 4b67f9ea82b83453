package appraisal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/current", h.Current)
	r.Get("/stats", h.Stats)
	r.Put("/{id}", h.SaveDraft)
	r.Post("/{id}/submit", h.Submit)

	return r
}
