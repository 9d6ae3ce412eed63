package gocombine

import "sync"

// Prepend returns a publisher that delivers values, in order, before the elements of pub.
// pub is subscribed to only after all values have been delivered.
func Prepend[T any](pub Publisher[T], values ...T) Publisher[T] {
	return concat(Of(values...), pub)
}

// PrependPublisher returns a publisher that delivers the elements of prefix, then the elements of pub.
// pub is subscribed to only after prefix finishes. If prefix fails, the failure is delivered
// and pub is never subscribed to.
//
// Chained calls deliver the outermost prefix first: PrependPublisher(PrependPublisher(a, b), c)
// delivers the elements of c, b, and a, in that order.
func PrependPublisher[T any](pub Publisher[T], prefix Publisher[T]) Publisher[T] {
	return concat(prefix, pub)
}

// Append returns a publisher that delivers the elements of pub, then values, in order.
// If pub fails, the failure is delivered and values are not.
func Append[T any](pub Publisher[T], values ...T) Publisher[T] {
	return concat(pub, Of(values...))
}

// AppendPublisher returns a publisher that delivers the elements of pub, then the elements of suffix.
// suffix is subscribed to only after pub finishes, and its completion becomes the completion
// of the returned publisher. If pub fails, the failure is delivered and suffix is never subscribed to.
func AppendPublisher[T any](pub Publisher[T], suffix Publisher[T]) Publisher[T] {
	return concat(pub, suffix)
}

// concat returns a publisher that delivers the elements of first, then, once first has finished,
// the elements of second.
func concat[T any](first Publisher[T], second Publisher[T]) Publisher[T] {
	return PublisherFunc[T](func(sink Sink[T]) Subscription {
		n := &concatNode[T]{
			sess:   newSession(sink),
			second: second,
		}

		n.sess.onRelease(n.cancelCurrent)

		n.follow(first, false)

		return n.sess
	})
}

// concatNode is the state of one subscription to a concat publisher.
// It holds at most one upstream subscription at a time.
type concatNode[T any] struct {
	sess   *session[T]
	second Publisher[T]

	mu      sync.Mutex
	current *upstream
}

// concatSink receives events from the active side of a concatNode.
type concatSink[T any] struct {
	node *concatNode[T]
	up   *upstream
	last bool
}

// follow subscribes to pub, making it the active side.
func (n *concatNode[T]) follow(pub Publisher[T], last bool) {
	u := &upstream{}

	// checked under the lock, so that a concurrent cancelCurrent either sees u or has already run
	n.mu.Lock()

	if n.sess.stopped() {
		n.mu.Unlock()
		return
	}

	n.current = u

	n.mu.Unlock()

	subscribeUpstream[T](u, pub, &concatSink[T]{
		node: n,
		up:   u,
		last: last,
	})
}

func (n *concatNode[T]) cancelCurrent() {
	n.mu.Lock()
	u := n.current
	n.current = nil
	n.mu.Unlock()

	if u != nil {
		u.cancel()
	}
}

func (s *concatSink[T]) Stopped() bool {
	return !s.up.live() || s.node.sess.stopped()
}

func (s *concatSink[T]) Receive(v T) {
	if s.Stopped() {
		return
	}

	s.node.sess.send(v)
}

func (s *concatSink[T]) ReceiveCompletion(c Completion) {
	if s.node.sess.stopped() || !s.up.finish() {
		return
	}

	if c.Failed() || s.last {
		s.node.sess.finish(c)
		return
	}

	s.node.follow(s.node.second, true)
}
