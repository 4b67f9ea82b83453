package task

import (
	"net/http"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
)

type Handler struct {
	service TaskService
}

func NewHandler(service TaskService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var dto CreateTaskDTO
	if err := action.Decode(r, &dto); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	t, err := h.service.CreateTask(r.Context(), dto)
	action.Respond(w, r, http.StatusCreated, t, err)
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	var status *TaskStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := TaskStatus(raw)
		status = &s
	}
	tasks, err := h.service.ListTasks(r.Context(), status)
	action.Respond(w, r, http.StatusOK, tasks, err)
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "id", "task")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	t, err := h.service.GetTask(r.Context(), id)
	action.Respond(w, r, http.StatusOK, t, err)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "id", "task")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	var dto UpdateTaskDTO
	if err := action.Decode(r, &dto); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	t, err := h.service.UpdateTask(r.Context(), id, dto)
	action.Respond(w, r, http.StatusOK, t, err)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "id", "task")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	var dto UpdateStatusDTO
	if err := action.Decode(r, &dto); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	t, err := h.service.UpdateStatus(r.Context(), id, dto)
	action.Respond(w, r, http.StatusOK, t, err)
}

func (h *Handler) LogHours(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "id", "task")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	var dto LogHoursDTO
	if err := action.Decode(r, &dto); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	t, err := h.service.LogHours(r.Context(), id, dto)
	action.Respond(w, r, http.StatusOK, t, err)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	action.Respond(w, r, http.StatusOK, stats, err)
}
