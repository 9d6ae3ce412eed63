package gocombine

import "errors"

// Kind is the kind of an Event.
type Kind uint8

const (
	// KindValue is an event carrying a value.
	KindValue Kind = iota

	// KindCompleted is the terminal event of a stream that finished normally.
	KindCompleted

	// KindFailed is the terminal event of a stream that failed.
	KindFailed
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindCompleted:
		return "completed"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Completion is the terminal outcome of a stream.
// A zero Completion means the stream finished normally.
type Completion struct {
	// Err is the cause of the failure, or nil if the stream finished normally.
	Err error
}

// Finished is the Completion of a stream that finished normally.
var Finished = Completion{}

// ErrUnknownFailure is used as the cause of a Failure that was given a nil error.
var ErrUnknownFailure = errors.New("unknown failure")

// Failure returns the Completion of a stream that failed with err.
func Failure(err error) Completion {
	if err == nil {
		err = ErrUnknownFailure
	}

	return Completion{Err: err}
}

// Failed returns true if c is a failure.
func (c Completion) Failed() bool {
	return c.Err != nil
}

// String implements fmt.Stringer.
func (c Completion) String() string {
	if c.Err != nil {
		return "failed: " + c.Err.Error()
	}

	return "finished"
}

// Event is a single element of a stream's event sequence: a value, or a terminal completion.
type Event[T any] struct {
	Kind Kind

	// Value is only meaningful if Kind is KindValue.
	Value T

	// Err is only meaningful if Kind is KindFailed.
	Err error
}

// ValueEvent returns an event carrying v.
func ValueEvent[T any](v T) Event[T] {
	return Event[T]{Kind: KindValue, Value: v}
}

// CompletionEvent returns the terminal event for c.
func CompletionEvent[T any](c Completion) Event[T] {
	if c.Failed() {
		return Event[T]{Kind: KindFailed, Err: c.Err}
	}

	return Event[T]{Kind: KindCompleted}
}

// Terminal returns true if e is KindCompleted or KindFailed.
func (e Event[T]) Terminal() bool {
	return e.Kind == KindCompleted || e.Kind == KindFailed
}

// Completion returns the Completion of a terminal event.
// It returns false if e is not terminal.
func (e Event[T]) Completion() (Completion, bool) {
	switch e.Kind {
	case KindCompleted:
		return Finished, true
	case KindFailed:
		return Failure(e.Err), true
	default:
		return Completion{}, false
	}
}

// Deliver delivers e to sink.
func Deliver[T any](sink Sink[T], e Event[T]) {
	if c, ok := e.Completion(); ok {
		sink.ReceiveCompletion(c)
		return
	}

	sink.Receive(e.Value)
}
