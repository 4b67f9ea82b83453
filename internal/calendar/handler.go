package calendar

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

type Handler struct {
	service Service
	now     func() time.Time
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, now: time.Now}
}

// Events serves GET /?from=2006-01-02&to=2006-01-02, defaulting to the
// current month.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	from, to := util.MonthBounds(h.now().In(util.Location()))

	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := util.ParseLocal(raw)
		if err != nil {
			action.Respond(w, r, 0, nil, action.Validation("invalid from date"))
			return
		}
		from = t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := util.ParseLocal(raw)
		if err != nil {
			action.Respond(w, r, 0, nil, action.Validation("invalid to date"))
			return
		}
		to = t
	}

	events, err := h.service.Events(r.Context(), from, to)
	action.Respond(w, r, http.StatusOK, events, err)
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Events)
	return r
}
