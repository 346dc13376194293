package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/wardrobe/pkg/httpx"
)

// Client-facing messages for body decoding failures.
const (
	MsgInvalidJSON   = "Invalid JSON in request body"
	MsgEmptyBody     = "Request body is required"
	MsgBodyTooLarge  = "Request body too large"
	MsgNotAnObject   = "Request body must be an object"
	msgFieldSeparate = "; "
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

// ValidationMessage renders err as "field: message" pairs in struct field
// order, e.g. "name: This field is required".
func ValidationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, e.Field()+": "+formatFieldError(e))
	}
	return strings.Join(parts, msgFieldSeparate)
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of %s", strings.ReplaceAll(e.Param(), " ", ", "))
	case "numeric":
		return "Must be a numeric value"
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// DecodeJSON decodes the request body into T and writes the error response
// when decoding fails: 413 when the body exceeds the RequestBodyLimit cap,
// 400 for an empty, non-object or malformed body.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxErr):
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
		case errors.Is(err, io.EOF):
			httpx.JSONError(w, http.StatusBadRequest, MsgEmptyBody)
		case errors.As(err, &typeErr) && typeErr.Field == "":
			httpx.JSONError(w, http.StatusBadRequest, MsgNotAnObject)
		default:
			httpx.JSONError(w, http.StatusBadRequest, MsgInvalidJSON)
		}
		return nil, false
	}
	return &req, true
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes an appropriate error response if either step fails.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	req, ok := DecodeJSON[T](w, r)
	if !ok {
		return nil, false
	}
	if err := Validate(req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, ValidationMessage(err))
		return nil, false
	}
	return req, true
}
