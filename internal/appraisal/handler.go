package appraisal

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

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	review, err := h.service.GetCurrentReview(r.Context())
	action.Respond(w, r, http.StatusOK, review, err)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews(r.Context())
	action.Respond(w, r, http.StatusOK, reviews, err)
}

func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "id", "appraisal review")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	var dto SaveDraftDTO
	if err := action.Decode(r, &dto); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	review, err := h.service.SaveDraft(r.Context(), id, dto)
	action.Respond(w, r, http.StatusOK, review, err)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r, "id", "appraisal review")
	if err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	review, err := h.service.SubmitReview(r.Context(), id)
	action.Respond(w, r, http.StatusOK, review, err)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	action.Respond(w, r, http.StatusOK, stats, err)
}
