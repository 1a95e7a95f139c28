package fetch

import (
	"errors"
	"fmt"
	"strings"
)

// TransportError is a network level failure where no response was received
type TransportError struct {
	Action string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Request failed when %s: %v", e.Action, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RequestError is a response with a non-2xx status code
type RequestError struct {
	Action     string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("Status Code %d when %s. Response: %s", e.StatusCode, e.Action, e.Body)
}

// TrimBody strips surrounding whitespace from the body of a RequestError.
// Any other error is returned unchanged.
func TrimBody(err error) error {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		reqErr.Body = strings.TrimSpace(reqErr.Body)
	}
	return err
}

// ParseError is a response body that is not valid JSON or lacks an expected field
type ParseError struct {
	Action string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid response when %s: %v", e.Action, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingField builds a ParseError for an absent or empty response field
func MissingField(action, field string) *ParseError {
	return &ParseError{
		Action: action,
		Err:    fmt.Errorf("missing field %q", field),
	}
}
