package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across layers.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPersistence  = errors.New("persistence failure")
	ErrDraftAbsent  = errors.New("registration draft not found")
)

// ValidationError lists every problem found with a piece of user input.
// It matches ErrInvalidInput under errors.Is.
type ValidationError struct {
	Problems []string
}

// NewValidationError returns a ValidationError for the given problems.
func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ServerError is returned by the registration API client when the server
// replied with a non-success status. Message is the server's {error} text.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// TransportError is returned by the registration API client when no response
// was received at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "could not reach registration server: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
