package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps request bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes a single JSON object from the request body into dest.
// On failure it writes a 400 JSON error and returns false.
// Callers should return immediately when DecodeJSON returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, decodeErrorMessage(err))
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		WriteJSONError(w, http.StatusBadRequest, "request body must contain a single JSON object")
		return false
	}
	return true
}

func decodeErrorMessage(err error) string {
	var maxErr *http.MaxBytesError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &maxErr):
		return fmt.Sprintf("request body must not exceed %d bytes", maxErr.Limit)
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("malformed JSON at position %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return fmt.Sprintf("invalid value for field %q", typeErr.Field)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "malformed JSON"
	case errors.Is(err, io.EOF):
		return "request body is required"
	default:
		return "invalid request body"
	}
}
