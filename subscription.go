package gocombine

import (
	"sync"
	"sync/atomic"
)

// SubscriptionFunc implements Subscription with a function.
type SubscriptionFunc func()

// Cancel implements Subscription.
func (f SubscriptionFunc) Cancel() {
	f()
}

// session is the delivery session created for each call to Subscribe.
// It guards the sink: nothing is delivered after a terminal event or after Cancel.
// Teardown functions registered with onRelease run exactly once, on termination or on Cancel,
// in reverse order of registration.
type session[T any] struct {
	sink Sink[T]
	done atomic.Bool

	mu       sync.Mutex
	released bool
	releases []func()
}

func newSession[T any](sink Sink[T]) *session[T] {
	return &session[T]{sink: sink}
}

// stopped returns true if no further events should be delivered to the session's sink.
func (s *session[T]) stopped() bool {
	if s.done.Load() {
		return true
	}

	if st, ok := s.sink.(Stopper); ok {
		return st.Stopped()
	}

	return false
}

// send delivers v to the sink. It returns false if the session is stopped, either before or as
// a consequence of delivering v.
func (s *session[T]) send(v T) bool {
	if s.stopped() {
		return false
	}

	s.sink.Receive(v)

	return !s.stopped()
}

// finish releases the session and delivers c to the sink.
// Only the first call to finish or Cancel has any effect.
func (s *session[T]) finish(c Completion) {
	if s.done.Swap(true) {
		return
	}

	s.release()

	s.sink.ReceiveCompletion(c)
}

// Cancel implements Subscription.
func (s *session[T]) Cancel() {
	if s.done.Swap(true) {
		return
	}

	logger().Debug().Msg("subscription cancelled")

	s.release()
}

// onRelease registers f to run when the session terminates or is canceled.
// If the session has already been released, f runs immediately.
func (s *session[T]) onRelease(f func()) {
	s.mu.Lock()

	if s.released {
		s.mu.Unlock()
		f()

		return
	}

	s.releases = append(s.releases, f)

	s.mu.Unlock()
}

func (s *session[T]) release() {
	s.mu.Lock()

	if s.released {
		s.mu.Unlock()
		return
	}

	s.released = true
	releases := s.releases
	s.releases = nil

	s.mu.Unlock()

	for i := len(releases) - 1; i >= 0; i-- {
		releases[i]()
	}
}

type upstreamState uint8

const (
	upstreamLive upstreamState = iota
	upstreamCanceled
	upstreamFinished
)

// upstream is a subscription an operator holds on one of its upstream publishers.
// It can be canceled before the upstream's Subscribe call has returned: the subscription is then
// canceled as soon as it is attached.
type upstream struct {
	mu    sync.Mutex
	state upstreamState
	sub   Subscription
}

// subscribeUpstream subscribes sink to pub and attaches the resulting subscription to u.
func subscribeUpstream[T any](u *upstream, pub Publisher[T], sink Sink[T]) {
	u.attach(pub.Subscribe(sink))
}

func (u *upstream) attach(sub Subscription) {
	if sub == nil {
		return
	}

	u.mu.Lock()

	switch u.state {
	case upstreamLive:
		u.sub = sub
		u.mu.Unlock()

	case upstreamCanceled:
		u.mu.Unlock()
		sub.Cancel()

	default:
		u.mu.Unlock()
	}
}

// cancel cancels the upstream subscription, unless it has already finished or been canceled.
func (u *upstream) cancel() {
	u.mu.Lock()

	if u.state != upstreamLive {
		u.mu.Unlock()
		return
	}

	u.state = upstreamCanceled
	sub := u.sub
	u.sub = nil

	u.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
}

// finish marks the upstream as terminated by its publisher.
// It returns false if the upstream was not live.
func (u *upstream) finish() bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state != upstreamLive {
		return false
	}

	u.state = upstreamFinished
	u.sub = nil

	return true
}

// live returns true if the upstream has neither finished nor been canceled.
func (u *upstream) live() bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.state == upstreamLive
}

// Subscriptions is a set of subscriptions that are canceled together.
// The zero value is ready to use.
type Subscriptions struct {
	mu   sync.Mutex
	subs []Subscription
}

// Add adds sub to the set.
func (s *Subscriptions) Add(sub Subscription) {
	if sub == nil {
		return
	}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
}

// Len returns the number of subscriptions in the set.
func (s *Subscriptions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.subs)
}

// CancelAll cancels all subscriptions in the set, and empties it.
func (s *Subscriptions) CancelAll() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Cancel()
	}
}
