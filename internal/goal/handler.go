package goal

import (
	"net/http"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateGoalDTO
	if err := action.Decode(r, &dto); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	goal, err := h.service.Create(r.Context(), dto)
	action.Respond(w, r, http.StatusCreated, goal, err)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.service.List(r.Context())
	action.Respond(w, r, http.StatusOK, goals, err)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "id", "goal")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	goal, err := h.service.Get(r.Context(), id)
	action.Respond(w, r, http.StatusOK, goal, err)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "id", "goal")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	var dto UpdateGoalDTO
	if err := action.Decode(r, &dto); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	goal, err := h.service.Update(r.Context(), id, dto)
	action.Respond(w, r, http.StatusOK, goal, err)
}

func (h *Handler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "id", "goal")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	var dto UpdateProgressDTO
	if err := action.Decode(r, &dto); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	goal, err := h.service.UpdateProgress(r.Context(), id, dto)
	action.Respond(w, r, http.StatusOK, goal, err)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "id", "goal")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	action.RespondMessage(w, r, http.StatusOK, "goal deleted")
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	action.Respond(w, r, http.StatusOK, stats, err)
}
