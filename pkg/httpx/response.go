package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON shape of every API error response. Error carries the
// underlying cause for unexpected failures; Errors carries per-field messages
// for validation failures.
type ErrorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
} // @name ErrorBody

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded. Use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a {"message": message} JSON response.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Message: message})
}

// JSONErrorCause writes a {"message": message, "error": cause} JSON response.
func JSONErrorCause(w http.ResponseWriter, status int, message string, cause error) {
	body := ErrorBody{Message: message}
	if cause != nil {
		body.Error = cause.Error()
	}
	JSON(w, status, body)
}
