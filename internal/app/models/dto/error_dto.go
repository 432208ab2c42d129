package dto

import (
	"net/http"
	"time"
)

// JSONError is the error body returned by every failing endpoint.
type JSONError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// NewJSONError builds the standard error body for a status code. The error
// field carries the HTTP reason phrase for the status.
func NewJSONError(status int, message, path string) *JSONError {
	return &JSONError{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      path,
	}
}
