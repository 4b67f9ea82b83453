package action

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) Result {
	t.Helper()
	var res Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestRespond_StatusByKind(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"unauthorized", Unauthorized(), http.StatusUnauthorized, "Unauthorized"},
		{"not found", NotFound("goal"), http.StatusNotFound, "goal not found or access denied"},
		{"validation", Validation("hours must be greater than 0"), http.StatusBadRequest, "hours must be greater than 0"},
		{"invalid state", InvalidState("timesheet is approved"), http.StatusConflict, "timesheet is approved"},
		{"internal hides cause", errors.New("pq: relation \"tasks\" does not exist"), http.StatusInternalServerError, "internal server error"},
		{"wrapped internal", Internal(errors.New("disk full")), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Respond(rec, httptest.NewRequest(http.MethodGet, "/x", nil), http.StatusOK, nil, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			res := decodeResult(t, rec)
			assert.False(t, res.Success)
			assert.Equal(t, tt.message, res.Error)
		})
	}
}

func TestRespond_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	Respond(rec, httptest.NewRequest(http.MethodPost, "/x", nil), http.StatusCreated, map[string]int{"total": 3}, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"total":3}}`, rec.Body.String())
}

func TestKindOf_Wrapped(t *testing.T) {
	err := errors.Join(errors.New("context"), NotFound("task"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

type samplePayload struct {
	Title    string  `json:"title" validate:"required"`
	Hours    float64 `json:"hours" validate:"gt=0,lte=24"`
	Priority string  `json:"priority" validate:"omitempty,oneof=LOW HIGH"`
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		payload samplePayload
		want    string
	}{
		{samplePayload{Hours: 1}, "title is required"},
		{samplePayload{Title: "x"}, "hours must be greater than 0"},
		{samplePayload{Title: "x", Hours: 25}, "hours must be at most 24"},
		{samplePayload{Title: "x", Hours: 1, Priority: "MID"}, "priority must be one of: LOW HIGH"},
	}
	for _, tt := range tests {
		err := Validate(tt.payload)
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Equal(t, tt.want, PublicMessage(err))
	}
	assert.NoError(t, Validate(samplePayload{Title: "x", Hours: 8}))
}

func TestDecode(t *testing.T) {
	var p samplePayload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"a","hours":2}`))
	require.NoError(t, Decode(req, &p))
	assert.Equal(t, "a", p.Title)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
	err := Decode(req, &p)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestParseID(t *testing.T) {
	r := chi.NewRouter()
	var got error
	r.Get("/tasks/{id}", func(w http.ResponseWriter, req *http.Request) {
		_, got = ParseID(req, "id", "task")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tasks/not-a-uuid", nil))
	assert.Equal(t, "invalid task id", PublicMessage(got))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tasks/6f1c2a7e-8d0b-4c43-9d4b-2f5a8e7b1c3d", nil))
	assert.NoError(t, got)
}
