package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that upstream answered with a non-2xx status.
	ErrNotFound = errors.New("entity not found upstream")
	// ErrUnavailable reports that the upstream call could not complete.
	ErrUnavailable = errors.New("upstream service unavailable")
	// ErrMalformedPayload reports an upstream body missing expected fields.
	ErrMalformedPayload = errors.New("malformed upstream payload")
)

// StatusError captures a non-2xx upstream response.
type StatusError struct {
	Provider   string
	Identifier string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d for %q", e.Provider, e.StatusCode, e.Identifier)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is lets callers match any StatusError with errors.Is(err, ErrNotFound).
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound
}

// UnavailableError wraps a transport level failure (dial, DNS, timeout, broken body).
type UnavailableError struct {
	Provider   string
	Identifier string
	Timeout    bool
	Err        error
}

func (e *UnavailableError) Error() string {
	reason := "request failed"
	if e.Timeout {
		reason = "request timed out"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s for %q", e.Provider, reason, e.Identifier)
	}
	return fmt.Sprintf("%s: %s for %q: %v", e.Provider, reason, e.Identifier, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Is lets callers match any UnavailableError with errors.Is(err, ErrUnavailable).
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
