package action

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Decode reads a JSON request body into dst.
func Decode(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return Validation("request body is required")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return Validation("invalid request body")
	}
	return nil
}

// Validate checks payload against its `validate` struct tags.
func Validate(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return Validation("invalid payload")
	}
	return Validation(describe(verrs[0]))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "gte", "min":
		return field + " must be at least " + fe.Param()
	case "lte", "max":
		return field + " must be at most " + fe.Param()
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "email":
		return field + " must be a valid email"
	case "timezone":
		return field + " must be a valid time zone"
	default:
		return field + " is invalid"
	}
}

// ParseID reads a uuid path parameter.
func ParseID(r *http.Request, param, entity string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return uuid.Nil, Validation(entity + " id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, Validation("invalid " + entity + " id")
	}
	return id, nil
}
