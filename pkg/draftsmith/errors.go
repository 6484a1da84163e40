package draftsmith

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrValidation marks request payloads that failed local checks. The wrapped
// error carries the field detail; no network call has been made.
var ErrValidation = errors.New("draftsmith: request validation failed")

// APIError is a non-success HTTP status returned by the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("draftsmith: API error %d: %s", e.StatusCode, e.Message)
}

// DecodeError is a response body that was not valid JSON or did not match
// the expected model shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("draftsmith: failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
