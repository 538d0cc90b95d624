package bench

import (
	"errors"
	"fmt"
	"time"
)

// Error is a sentinel error which can be defined as a constant.
type Error string

func (e Error) Error() string {
	return string(e)
}

// NotFoundError reports that a resource lookup matched nothing. Scenarios
// treat it as a distinct outcome from an API failure.
type NotFoundError struct {
	Resource string // resource kind, e.g. "network"
	ID       string // identifier or name used in the lookup
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// GetResourceError reports that fetching a resource failed for a reason other
// than absence.
type GetResourceError struct {
	Resource string
	ID       string
	Err      error
}

func (e *GetResourceError) Error() string {
	return fmt.Sprintf("getting %s %q: %v", e.Resource, e.ID, e.Err)
}

func (e *GetResourceError) Unwrap() error {
	return e.Err
}

// StatusError reports that a resource settled in a failure status while a
// wait was in progress.
type StatusError struct {
	Resource string
	Status   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s entered failure status %q", e.Resource, e.Status)
}

// WaitTimeoutError reports that a resource did not reach a ready status
// within the allotted time. Status holds the last observed value.
type WaitTimeoutError struct {
	Resource string
	Status   string
	Timeout  time.Duration
}

func (e *WaitTimeoutError) Error() string {
	return fmt.Sprintf("%s still %q after %s", e.Resource, e.Status, e.Timeout)
}

// IsNotFound reports whether err (or anything it wraps) is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
