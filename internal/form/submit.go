package form

import (
	"context"
	"time"
)

// Submitter is the explicit async boundary for commit operations. The
// UI today wraps an in-memory commit with a cosmetic delay; a real
// backend call can replace the inner function without changing the
// form contract.
type Submitter[T any] func(ctx context.Context, draft T) error

// Delayed decorates next with a fixed processing delay, honouring
// cancellation.
func Delayed[T any](d time.Duration, next Submitter[T]) Submitter[T] {
	return func(ctx context.Context, draft T) error {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		return next(ctx, draft)
	}
}
