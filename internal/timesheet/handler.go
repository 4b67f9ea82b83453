package timesheet

import (
	"net/http"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	ts, err := h.service.GetCurrent(r.Context())
	action.Respond(w, r, http.StatusOK, ts, err)
}

// ForDate serves GET /week?date=2006-01-02.
func (h *Handler) ForDate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		action.Respond(w, r, 0, nil, action.Validation("date is required"))
		return
	}
	date, err := util.ParseLocal(raw)
	if err != nil {
		action.Respond(w, r, 0, nil, action.Validation("date must be formatted as 2006-01-02"))
		return
	}
	ts, err := h.service.GetForDate(r.Context(), date)
	action.Respond(w, r, http.StatusOK, ts, err)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "id", "timesheet")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	ts, err := h.service.Get(r.Context(), id)
	action.Respond(w, r, http.StatusOK, ts, err)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	action.Respond(w, r, http.StatusOK, list, err)
}

func (h *Handler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var dto AddEntryDTO
	if err := action.Decode(r, &dto); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	ts, err := h.service.AddEntry(r.Context(), dto)
	action.Respond(w, r, http.StatusCreated, ts, err)
}

func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "entryID", "timesheet entry")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	var dto UpdateEntryDTO
	if err := action.Decode(r, &dto); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	ts, err := h.service.UpdateEntry(r.Context(), id, dto)
	action.Respond(w, r, http.StatusOK, ts, err)
}

func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "entryID", "timesheet entry")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	ts, err := h.service.DeleteEntry(r.Context(), id)
	action.Respond(w, r, http.StatusOK, ts, err)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "id", "timesheet")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	ts, err := h.service.Submit(r.Context(), id)
	action.Respond(w, r, http.StatusOK, ts, err)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	action.Respond(w, r, http.StatusOK, stats, err)
}
