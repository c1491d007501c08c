package api

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// TransportError means the request never completed.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx answer. Message is the server's own text.
type APIError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.Status, e.Message)
}

// DecodeError means the response body did not match its schema.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) text(status int) string {
	if b.Error != "" {
		return b.Error
	}
	if b.Message != "" {
		return b.Message
	}
	return http.StatusText(status)
}

// AsAPIError unwraps err down to an *APIError if there is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func IsTransport(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

func IsDecode(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}
