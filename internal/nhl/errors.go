package nhl

import (
	"errors"
	"fmt"
)

// TransportError captures network-level failures reaching the upstream
// API, including non-200 responses.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		if e.Body != "" {
			return fmt.Sprintf("nhl api: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
		}
		return fmt.Sprintf("nhl api: unexpected status %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("nhl api: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AsTransportError attempts to unwrap an error into a TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// ResponseFormatError captures bodies that are not valid JSON, or that
// lack an array field the caller must iterate.
type ResponseFormatError struct {
	URL   string
	Field string
	Err   error
}

func (e *ResponseFormatError) Error() string {
	if e.Field != "" {
		if e.Err != nil {
			return fmt.Sprintf("nhl api: response from %s has malformed field %q: %v", e.URL, e.Field, e.Err)
		}
		return fmt.Sprintf("nhl api: response from %s is missing array field %q", e.URL, e.Field)
	}
	return fmt.Sprintf("nhl api: invalid response from %s: %v", e.URL, e.Err)
}

func (e *ResponseFormatError) Unwrap() error { return e.Err }

// AsResponseFormatError attempts to unwrap an error into a ResponseFormatError.
func AsResponseFormatError(err error) (*ResponseFormatError, bool) {
	var fErr *ResponseFormatError
	if errors.As(err, &fErr) {
		return fErr, true
	}
	return nil, false
}
