package gocombine

import (
	"sync"

	"golang.org/x/exp/slices"
)

// Recorder is a Sink that records the events it receives.
//
// Recorder is safe for concurrent use, so it may be inspected while events are being delivered
// from another goroutine.
type Recorder[T any] struct {
	mu        sync.Mutex
	events    []Event[T]
	done      chan struct{}
	closeOnce sync.Once
}

// NewRecorder returns a new, empty Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{
		done: make(chan struct{}),
	}
}

// Receive implements Sink.
func (r *Recorder[T]) Receive(v T) {
	r.mu.Lock()
	r.events = append(r.events, ValueEvent(v))
	r.mu.Unlock()
}

// ReceiveCompletion implements Sink.
func (r *Recorder[T]) ReceiveCompletion(c Completion) {
	r.mu.Lock()
	r.events = append(r.events, CompletionEvent[T](c))
	r.mu.Unlock()

	r.closeOnce.Do(func() {
		close(r.done)
	})
}

// Done returns a channel that is closed once a completion has been received.
func (r *Recorder[T]) Done() <-chan struct{} {
	return r.done
}

// Events returns a snapshot copy of the recorded events.
func (r *Recorder[T]) Events() []Event[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.events)
}

// Values returns a snapshot copy of the recorded values, in the order received.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	values := make([]T, 0, len(r.events))

	for _, e := range r.events {
		if e.Kind == KindValue {
			values = append(values, e.Value)
		}
	}

	return values
}

// Completion returns the recorded completion.
// It returns false if no completion has been received yet.
func (r *Recorder[T]) Completion() (Completion, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.events {
		if c, ok := e.Completion(); ok {
			return c, true
		}
	}

	return Completion{}, false
}
