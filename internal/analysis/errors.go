package analysis

import (
	"errors"
	"fmt"
)

// ErrEmptyResult means the API answered successfully but without commentary.
var ErrEmptyResult = errors.New("no commentary received from the API")

// NetworkError wraps a transport failure: the request never got a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError reports a response outside the 2xx range.
type HTTPError struct {
	StatusCode int
	Detail     string // server-provided detail, when the body carried one
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("HTTP error! status: %d (%s)", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// IsNetwork reports whether err is (or wraps) a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// StatusCode extracts the HTTP status from err, or 0 when err is not an HTTPError.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}
