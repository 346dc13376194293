package httpx

import (
	"encoding/json"
	"net/http"
)

// GenericServerError is the only message clients see for a 5xx response.
const GenericServerError = "Internal server error"

// SuccessResponse is the envelope for every successful API response.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
	Data    any  `json:"data"`
} // @name SuccessResponse

// ErrorBody carries the client-facing error message.
type ErrorBody struct {
	Message string `json:"message" example:"Invalid id: must be a positive integer"`
} // @name ErrorBody

// ErrorResponse is the envelope for every failed API response.
type ErrorResponse struct {
	Success bool      `json:"success" example:"false"`
	Error   ErrorBody `json:"error"`
} // @name ErrorResponse

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success writes {"success": true, "data": data}.
func Success(w http.ResponseWriter, status int, data any) {
	JSON(w, status, SuccessResponse{Success: true, Data: data})
}

// JSONError writes {"success": false, "error": {"message": message}}.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: ErrorBody{Message: message}})
}

// SafeError returns the error message for client responses. Server errors
// (5xx) are always replaced with GenericServerError so causes never leak.
func SafeError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return GenericServerError
	}
	return err.Error()
}
