package transform

import (
	"fmt"

	"github.com/preston-bernstein/pokemon-gateway/internal/providers"
)

// FieldError names the payload path that was missing or of the wrong shape.
type FieldError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is lets callers match any FieldError with errors.Is(err, providers.ErrMalformedPayload).
func (e *FieldError) Is(target error) bool {
	return target == providers.ErrMalformedPayload
}

func missing(path string) error {
	return &FieldError{Path: path, Reason: "missing or null"}
}
