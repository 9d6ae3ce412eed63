package gocombine

import (
	"errors"
	"sync/atomic"
)

// ErrMergeArity is returned by MergeAll when given fewer than two publishers.
var ErrMergeArity = errors.New("merge requires at least two publishers")

// Merge returns a publisher that subscribes to all of the given publishers and delivers their values
// as they arrive. The relative order of values from each publisher is preserved.
//
// The returned publisher finishes after all publishers have finished. It fails as soon as any
// publisher fails, canceling the subscriptions to all other publishers.
func Merge[T any](first Publisher[T], second Publisher[T], rest ...Publisher[T]) Publisher[T] {
	pubs := make([]Publisher[T], 0, len(rest)+2)
	pubs = append(pubs, first, second)
	pubs = append(pubs, rest...)

	return merge(pubs)
}

// MergeAll is like Merge, but takes a slice of publishers.
// It returns ErrMergeArity if pubs contains fewer than two publishers.
func MergeAll[T any](pubs []Publisher[T]) (Publisher[T], error) {
	if len(pubs) < 2 {
		return nil, ErrMergeArity
	}

	return merge(append([]Publisher[T](nil), pubs...)), nil
}

func merge[T any](pubs []Publisher[T]) Publisher[T] {
	return PublisherFunc[T](func(sink Sink[T]) Subscription {
		n := &mergeNode[T]{
			sess: newSession(sink),
			ups:  make([]*upstream, len(pubs)),
		}

		n.remaining.Store(int64(len(pubs)))

		for i := range n.ups {
			n.ups[i] = &upstream{}
		}

		n.sess.onRelease(n.cancelAll)

		for i, pub := range pubs {
			if n.sess.stopped() {
				break
			}

			subscribeUpstream[T](n.ups[i], pub, &mergeSink[T]{
				node:  n,
				up:    n.ups[i],
				index: i,
			})
		}

		return n.sess
	})
}

// mergeNode is the state of one subscription to a merge publisher.
type mergeNode[T any] struct {
	sess      *session[T]
	ups       []*upstream
	remaining atomic.Int64
}

// mergeSink receives events from one of the upstreams of a mergeNode.
type mergeSink[T any] struct {
	node  *mergeNode[T]
	up    *upstream
	index int
}

func (n *mergeNode[T]) cancelAll() {
	for _, u := range n.ups {
		u.cancel()
	}
}

func (s *mergeSink[T]) Stopped() bool {
	return !s.up.live() || s.node.sess.stopped()
}

func (s *mergeSink[T]) Receive(v T) {
	if s.Stopped() {
		return
	}

	s.node.sess.send(v)
}

func (s *mergeSink[T]) ReceiveCompletion(c Completion) {
	if s.node.sess.stopped() || !s.up.finish() {
		return
	}

	if c.Failed() {
		logger().Debug().
			Int("upstream", s.index).
			Err(c.Err).
			Msg("merge upstream failed, canceling remaining upstreams")

		s.node.sess.finish(c)

		return
	}

	if s.node.remaining.Add(-1) == 0 {
		s.node.sess.finish(Finished)
	}
}
