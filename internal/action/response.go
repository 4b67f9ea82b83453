package action

import (
	"net/http"

	"github.com/saulo-duarte/chronos-workspace/internal/config"
	"github.com/saulo-duarte/chronos-workspace/internal/metrics"
)

// Result is the envelope returned by every action.
type Result struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func statusFor(kind Kind) int {
	switch kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes data with status on success, or the failure envelope for err.
func Respond(w http.ResponseWriter, r *http.Request, status int, data interface{}, err error) {
	route := metrics.RouteLabel(r)
	if err != nil {
		kind := KindOf(err)
		if kind == KindInternal {
			config.WithContext(r.Context()).WithError(err).WithField("route", route).Error("Action failed")
		}
		metrics.RecordAction(r.Method, route, kind.String())
		config.JSON(w, statusFor(kind), Result{Success: false, Error: PublicMessage(err)})
		return
	}
	metrics.RecordAction(r.Method, route, "success")
	config.JSON(w, status, Result{Success: true, Data: data})
}

func RespondMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	metrics.RecordAction(r.Method, metrics.RouteLabel(r), "success")
	config.JSON(w, status, Result{Success: true, Message: message})
}
