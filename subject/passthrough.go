package subject

import (
	"sync"
	"sync/atomic"

	"github.com/deadlyengineer/gocombine"
	"golang.org/x/exp/slices"
)

// Passthrough is a publisher that delivers values sent with Send to all currently attached sinks.
// It does not replay past values to new subscribers. Once a completion has been sent, further sends
// are ignored, and new subscribers receive that completion immediately.
//
// The zero value is ready to use.
type Passthrough[T any] struct {
	mu         sync.Mutex
	sinks      []*attachment[T]
	completion *gocombine.Completion
}

// attachment is a sink attached to a Passthrough.
type attachment[T any] struct {
	subject  *Passthrough[T]
	sink     gocombine.Sink[T]
	detached atomic.Bool
}

// New returns a new Passthrough.
func New[T any]() *Passthrough[T] {
	return &Passthrough[T]{}
}

// Subscribe implements gocombine.Publisher.
func (p *Passthrough[T]) Subscribe(sink gocombine.Sink[T]) gocombine.Subscription {
	a := &attachment[T]{
		subject: p,
		sink:    sink,
	}

	p.mu.Lock()

	if p.completion != nil {
		c := *p.completion
		p.mu.Unlock()

		a.detached.Store(true)
		sink.ReceiveCompletion(c)

		return a
	}

	p.sinks = append(p.sinks, a)

	p.mu.Unlock()

	return a
}

// Send delivers v to all currently attached sinks, in the order they were attached.
func (p *Passthrough[T]) Send(v T) {
	for _, a := range p.attached() {
		// detached during this fan-out
		if a.detached.Load() {
			continue
		}

		a.sink.Receive(v)
	}
}

// SendCompletion delivers c to all currently attached sinks and detaches them.
// Only the first completion sent has any effect.
func (p *Passthrough[T]) SendCompletion(c gocombine.Completion) {
	p.mu.Lock()

	if p.completion != nil {
		p.mu.Unlock()
		return
	}

	p.completion = &c
	sinks := p.sinks
	p.sinks = nil

	p.mu.Unlock()

	for _, a := range sinks {
		if a.detached.Swap(true) {
			continue
		}

		a.sink.ReceiveCompletion(c)
	}
}

// Subscribers returns the number of currently attached sinks.
func (p *Passthrough[T]) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.sinks)
}

func (p *Passthrough[T]) attached() []*attachment[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.sinks)
}

// Cancel implements gocombine.Subscription.
func (a *attachment[T]) Cancel() {
	if a.detached.Swap(true) {
		return
	}

	p := a.subject

	p.mu.Lock()
	defer p.mu.Unlock()

	if i := slices.Index(p.sinks, a); i >= 0 {
		p.sinks = slices.Delete(p.sinks, i, i+1)
	}
}
