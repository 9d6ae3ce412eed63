package gocombine

import (
	"errors"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ErrZeroStep is the failure of a Range publisher constructed with a step of zero.
var ErrZeroStep = errors.New("range step must not be zero")

// Of returns a publisher that delivers the given values, in order, then finishes.
// Every subscription receives all values.
func Of[T any](values ...T) Publisher[T] {
	values = slices.Clone(values)

	return PublisherFunc[T](func(sink Sink[T]) Subscription {
		s := newSession(sink)

		for _, v := range values {
			if !s.send(v) {
				return s
			}
		}

		s.finish(Finished)

		return s
	})
}

// Empty returns a publisher that finishes immediately without delivering any values.
func Empty[T any]() Publisher[T] {
	return Of[T]()
}

// Fail returns a publisher that fails immediately with err, without delivering any values.
func Fail[T any](err error) Publisher[T] {
	return PublisherFunc[T](func(sink Sink[T]) Subscription {
		s := newSession(sink)
		s.finish(Failure(err))

		return s
	})
}

// Range returns a publisher that delivers from, from+step, from+2*step, and so on, up to but not
// including to, then finishes. step may be negative. If step is zero, the publisher fails with ErrZeroStep.
func Range[T constraints.Integer](from T, to T, step T) Publisher[T] {
	if step == 0 {
		return Fail[T](ErrZeroStep)
	}

	return PublisherFunc[T](func(sink Sink[T]) Subscription {
		s := newSession(sink)

		v := from

		for (step > 0 && v < to) || (step < 0 && v > to) {
			if !s.send(v) {
				return s
			}

			next := v + step

			// v+step overflowed
			if (step > 0 && next < v) || (step < 0 && next > v) {
				break
			}

			v = next
		}

		s.finish(Finished)

		return s
	})
}
