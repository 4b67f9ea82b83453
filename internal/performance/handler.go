package performance

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

func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.Metrics(r.Context())
	action.Respond(w, r, http.StatusOK, m, err)
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Metrics)
	return r
}
