package gocombine

import (
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"
)

var errBoom = errors.New("boom")

// tap counts subscriptions to, and cancellations of, a publisher.
type tap struct {
	subscribed atomic.Int32
	canceled   atomic.Int32
}

func tapped[T any](pub Publisher[T]) (Publisher[T], *tap) {
	p := &tap{}

	return PublisherFunc[T](func(sink Sink[T]) Subscription {
		p.subscribed.Add(1)

		sub := pub.Subscribe(sink)

		return SubscriptionFunc(func() {
			p.canceled.Add(1)
			sub.Cancel()
		})
	}), p
}

// manual is a publisher driven by hand, delivering to the sessions attached at the time of each call.
type manual[T any] struct {
	mu       sync.Mutex
	sessions []*session[T]
}

func newManual[T any]() *manual[T] {
	return &manual[T]{}
}

func (m *manual[T]) Subscribe(sink Sink[T]) Subscription {
	s := newSession(sink)

	m.mu.Lock()
	m.sessions = append(m.sessions, s)
	m.mu.Unlock()

	s.onRelease(func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if i := slices.Index(m.sessions, s); i >= 0 {
			m.sessions = slices.Delete(m.sessions, i, i+1)
		}
	})

	return s
}

func (m *manual[T]) Send(v T) {
	for _, s := range m.attached() {
		s.send(v)
	}
}

func (m *manual[T]) SendCompletion(c Completion) {
	for _, s := range m.attached() {
		s.finish(c)
	}
}

func (m *manual[T]) Subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

func (m *manual[T]) attached() []*session[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.sessions)
}

func finished[T any](values ...T) []Event[T] {
	events := make([]Event[T], 0, len(values)+1)
	for _, v := range values {
		events = append(events, ValueEvent(v))
	}

	return append(events, CompletionEvent[T](Finished))
}
