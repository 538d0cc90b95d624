package bench

import (
	"context"
	"time"

	"github.com/avast/retry-go/v3"
)

// Polling defaults used when a WaitSpec leaves them zero.
const (
	DefaultWaitTimeout  = 120 * time.Second
	DefaultWaitInterval = 1 * time.Second
)

// WaitSpec describes how to poll one resource until it settles.
type WaitSpec[T any] struct {
	// Resource names the resource kind in errors, e.g. "loadbalancer".
	Resource string

	// Refresh fetches the current view of the resource.
	Refresh func(ctx context.Context) (T, error)

	// Status extracts the status string the wait is keyed on.
	Status func(T) string

	// Ready lists the statuses that complete the wait.
	Ready []string

	// Failure lists the statuses that abort the wait immediately.
	Failure []string

	Timeout  time.Duration
	Interval time.Duration
}

// WaitForStatus polls spec.Refresh at the configured interval until the
// resource reaches a ready status. It returns the last fetched view along
// with a StatusError when a failure status is observed, a WaitTimeoutError
// when the timeout elapses, or the refresh error when a fetch fails.
func WaitForStatus[T any](ctx context.Context, spec WaitSpec[T]) (T, error) {
	if spec.Timeout <= 0 {
		spec.Timeout = DefaultWaitTimeout
	}
	if spec.Interval <= 0 {
		spec.Interval = DefaultWaitInterval
	}
	attempts := uint(spec.Timeout/spec.Interval) + 1

	var current T
	err := retry.Do(
		func() error {
			if err := ctx.Err(); err != nil {
				return retry.Unrecoverable(err)
			}
			fetched, err := spec.Refresh(ctx)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			current = fetched

			status := spec.Status(fetched)
			for _, ready := range spec.Ready {
				if status == ready {
					return nil
				}
			}
			for _, failed := range spec.Failure {
				if status == failed {
					return retry.Unrecoverable(&StatusError{Resource: spec.Resource, Status: status})
				}
			}
			return &WaitTimeoutError{Resource: spec.Resource, Status: status, Timeout: spec.Timeout}
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(spec.Interval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	return current, err
}
