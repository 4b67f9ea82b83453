package task

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateTask)
	r.Get("/", h.ListTasks)
	r.Get("/stats", h.Stats)
	r.Get("/{id}", h.GetTask)
	r.Put("/{id}", h.UpdateTask)
	r.Patch("/{id}/status", h.UpdateStatus)
	r.Post("/{id}/hours", h.LogHours)
	return r
}
