package gocombine

import (
	"context"
	"sync/atomic"
)

// Observe subscribes to pub, calling onValue for each value and onCompletion for the completion.
// Either function may be nil.
func Observe[T any](pub Publisher[T], onValue func(v T), onCompletion func(c Completion)) Subscription {
	return pub.Subscribe(SinkFuncs[T]{
		OnValue:      onValue,
		OnCompletion: onCompletion,
	})
}

// Each subscribes to pub and calls each for every value, until pub completes or ctx is canceled.
// If pub fails, it returns the cause of the failure. If ctx is canceled first, the subscription
// is canceled and the cause of the cancelation is returned.
func Each[T any](ctx context.Context, pub Publisher[T], each func(v T)) error {
	if ctx.Err() != nil {
		return context.Cause(ctx)
	}

	done := make(chan Completion, 1)

	sub := Observe(pub, each, func(c Completion) {
		select {
		case done <- c:
		default:
		}
	})

	select {
	case c := <-done:
		return c.Err

	case <-ctx.Done():
		sub.Cancel()
		return context.Cause(ctx)
	}
}

// Collect subscribes to pub and returns all values it delivers, in order, once it completes.
// If pub fails, or ctx is canceled first, it returns the values collected so far, and the cause.
func Collect[T any](ctx context.Context, pub Publisher[T]) ([]T, error) {
	rec := NewRecorder[T]()

	err := Each(ctx, pub, rec.Receive)

	return rec.Values(), err
}

// Count returns the number of values delivered by pub once it completes.
// If pub fails, or ctx is canceled first, it returns the count so far, and the cause.
func Count[T any](ctx context.Context, pub Publisher[T]) (uint64, error) {
	count := atomic.Uint64{}

	err := Each(ctx, pub, func(_ T) {
		count.Add(1)
	})

	return count.Load(), err
}
