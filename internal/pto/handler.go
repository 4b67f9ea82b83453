package pto

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListMine(r.Context())
	action.Respond(w, r, http.StatusOK, list, err)
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}
