package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
)

type Handler struct {
	service ProjectService
}

func NewHandler(service ProjectService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateProjectDTO
	if err := action.Decode(r, &dto); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	p, err := h.service.CreateProject(r.Context(), dto)
	action.Respond(w, r, http.StatusCreated, p, err)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.ListProjects(r.Context())
	action.Respond(w, r, http.StatusOK, projects, err)
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	return r
}
