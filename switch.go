package gocombine

import "sync"

type switchState uint8

const (
	// switchIdle: no inner subscription.
	switchIdle switchState = iota

	// switchActive: subscribed to the current inner publisher.
	switchActive

	// switchOuterDone: the outer publisher has finished, waiting on the current inner publisher.
	switchOuterDone

	// switchTerminated: a terminal event has been delivered.
	switchTerminated
)

// String implements fmt.Stringer.
func (s switchState) String() string {
	switch s {
	case switchIdle:
		return "idle"
	case switchActive:
		return "active"
	case switchOuterDone:
		return "outer-done"
	case switchTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// SwitchToLatest flattens a publisher of publishers. It delivers the values of the most recent
// inner publisher received from outer.
//
// When outer delivers a new inner publisher, the subscription to the previous inner publisher is
// canceled before the new one is subscribed to, so at most one inner subscription is ever live.
//
// The returned publisher finishes once outer has finished and the current inner publisher, if any,
// has finished. It fails as soon as outer or the current inner publisher fails.
func SwitchToLatest[T any](outer Publisher[Publisher[T]]) Publisher[T] {
	return PublisherFunc[T](func(sink Sink[T]) Subscription {
		n := &switchNode[T]{
			sess:  newSession(sink),
			outer: &upstream{},
		}

		n.sess.onRelease(n.cancelAll)

		subscribeUpstream[Publisher[T]](n.outer, outer, &switchOuterSink[T]{node: n})

		return n.sess
	})
}

// switchNode is the state of one subscription to a switch-to-latest publisher.
// Inner subscriptions are told apart by generation: an inner sink whose generation is not the
// current one has been superseded.
type switchNode[T any] struct {
	sess  *session[T]
	outer *upstream

	mu    sync.Mutex
	state switchState
	gen   uint64
	inner *upstream
}

type switchOuterSink[T any] struct {
	node *switchNode[T]
}

type switchInnerSink[T any] struct {
	node *switchNode[T]
	up   *upstream
	gen  uint64
}

func (n *switchNode[T]) cancelAll() {
	n.outer.cancel()

	n.mu.Lock()
	inner := n.inner
	n.inner = nil
	n.mu.Unlock()

	if inner != nil {
		inner.cancel()
	}
}

// switchTo makes u the current inner subscription and returns the one it supersedes.
// It returns false if the node has terminated or its session has stopped; the session is checked
// under the lock, so that a concurrent cancelAll either sees u or has already run.
func (n *switchNode[T]) switchTo(u *upstream) (*upstream, uint64, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.state == switchTerminated || n.sess.stopped() {
		return nil, 0, false
	}

	prev := n.inner
	n.gen++
	n.inner = u
	n.state = switchActive

	return prev, n.gen, true
}

// current returns true if gen is the generation of the current inner subscription.
func (n *switchNode[T]) current(gen uint64) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.gen == gen && n.state != switchTerminated
}

func (s *switchOuterSink[T]) Stopped() bool {
	return !s.node.outer.live() || s.node.sess.stopped()
}

func (s *switchOuterSink[T]) Receive(pub Publisher[T]) {
	n := s.node

	if s.Stopped() || pub == nil {
		return
	}

	u := &upstream{}

	prev, gen, ok := n.switchTo(u)
	if !ok {
		return
	}

	if prev != nil {
		logger().Debug().
			Uint64("generation", gen).
			Msg("switching to latest inner publisher, canceling previous")

		prev.cancel()
	}

	subscribeUpstream[T](u, pub, &switchInnerSink[T]{
		node: n,
		up:   u,
		gen:  gen,
	})
}

func (s *switchOuterSink[T]) ReceiveCompletion(c Completion) {
	n := s.node

	if n.sess.stopped() || !n.outer.finish() {
		return
	}

	n.mu.Lock()

	if c.Failed() {
		n.state = switchTerminated
		n.mu.Unlock()

		n.sess.finish(c)

		return
	}

	switch n.state {
	case switchActive:
		n.state = switchOuterDone
		n.mu.Unlock()

	case switchIdle:
		n.state = switchTerminated
		n.mu.Unlock()

		n.sess.finish(Finished)

	default:
		n.mu.Unlock()
	}
}

func (s *switchInnerSink[T]) Stopped() bool {
	return !s.up.live() || s.node.sess.stopped() || !s.node.current(s.gen)
}

func (s *switchInnerSink[T]) Receive(v T) {
	if s.Stopped() {
		return
	}

	s.node.sess.send(v)
}

func (s *switchInnerSink[T]) ReceiveCompletion(c Completion) {
	n := s.node

	if n.sess.stopped() || !s.up.finish() {
		return
	}

	n.mu.Lock()

	if n.gen != s.gen || n.state == switchTerminated {
		n.mu.Unlock()
		return
	}

	n.inner = nil

	if c.Failed() {
		n.state = switchTerminated
		n.mu.Unlock()

		n.sess.finish(c)

		return
	}

	if n.state == switchOuterDone {
		n.state = switchTerminated
		n.mu.Unlock()

		n.sess.finish(Finished)

		return
	}

	n.state = switchIdle
	n.mu.Unlock()
}
