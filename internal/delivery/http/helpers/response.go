package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every 4xx and 5xx API response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the success envelope used by write endpoints.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONMessage writes a {message, data} envelope.
func WriteJSONMessage(w http.ResponseWriter, statusCode int, message string, data any) {
	WriteJSON(w, statusCode, MessageResponse{Message: message, Data: data})
}

// WriteJSONError writes an {error} envelope with the given message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}
