package user

import (
	"net/http"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
)

type Handler struct {
	service UserService
}

func NewHandler(service UserService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetMe(r.Context())
	action.Respond(w, r, http.StatusOK, u, err)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var dto UpdateProfileDTO
	if err := action.Decode(r, &dto); err != nil {
		action.Respond(w, r, 0, nil, err)
		return
	}
	u, err := h.service.UpdateProfile(r.Context(), dto)
	action.Respond(w, r, http.StatusOK, u, err)
}
