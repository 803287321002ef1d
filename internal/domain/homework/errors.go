package homework

import (
	"errors"
	"fmt"
	"net/url"

	"homework_status_bot/internal/domain/failure"
)

var (
	ErrRequest        = errors.New("status API request failed")
	ErrHTTP           = errors.New("status API returned unexpected HTTP status")
	ErrDecode         = errors.New("status API response is not valid JSON")
	ErrUnexpectedType = errors.New("status API response has unexpected type")
	ErrMissingKey     = errors.New("work item is missing a required key")
	ErrUnknownStatus  = errors.New("work item has unknown status")

	// ErrEmptyResponse means the payload has no "homeworks" key at all. It is not the
	// same as an empty list of work items.
	ErrEmptyResponse = fmt.Errorf("%w: status API response has no %q key", failure.ErrInformational, KeyHomeworks)
)

// RequestError is a transport level failure reaching the status API.
type RequestError struct {
	Endpoint string
	Cursor   int64
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s (from_date=%d) failed: %v", e.Endpoint, e.Cursor, e.Err)
}

func (e *RequestError) Unwrap() []error { return []error{ErrRequest, e.Err} }

// HTTPError is a non-2xx answer from the status API.
type HTTPError struct {
	StatusCode int
	Endpoint   string
	Params     url.Values
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("status API %s answered %d (params: %s)", e.Endpoint, e.StatusCode, e.Params.Encode())
}

func (e *HTTPError) Unwrap() error { return ErrHTTP }

// MissingKeyError names a required work item key that was absent.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("work item has no %q key", e.Key)
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }

// StatusError is a work item status outside the verdict table. Status is empty
// when the key was absent.
type StatusError struct {
	Name   string
	Status string
}

func (e *StatusError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("work item %q has no %q key", e.Name, KeyStatus)
	}
	return fmt.Sprintf("work item %q has unknown status %q", e.Name, e.Status)
}

func (e *StatusError) Unwrap() error { return ErrUnknownStatus }
