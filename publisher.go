package gocombine

// Publisher can be subscribed to by a Sink.
//
// After Subscribe, a Publisher delivers zero or more values followed by at most one terminal Completion
// to sink, in order and never concurrently. Each call to Subscribe creates an independent delivery session.
type Publisher[T any] interface {
	Subscribe(sink Sink[T]) Subscription
}

// PublisherFunc implements Publisher with a function.
type PublisherFunc[T any] func(sink Sink[T]) Subscription

// Subscribe implements Publisher.
func (f PublisherFunc[T]) Subscribe(sink Sink[T]) Subscription {
	return f(sink)
}

// Sink is the consumer of a stream's events.
type Sink[T any] interface {
	// Receive is called for each value.
	Receive(v T)

	// ReceiveCompletion is called at most once, after which no further calls are made.
	ReceiveCompletion(c Completion)
}

// SinkFuncs implements Sink with functions. Nil functions are ignored.
type SinkFuncs[T any] struct {
	OnValue      func(v T)
	OnCompletion func(c Completion)
}

// Receive implements Sink.
func (s SinkFuncs[T]) Receive(v T) {
	if s.OnValue != nil {
		s.OnValue(v)
	}
}

// ReceiveCompletion implements Sink.
func (s SinkFuncs[T]) ReceiveCompletion(c Completion) {
	if s.OnCompletion != nil {
		s.OnCompletion(c)
	}
}

// Subscription is a cancellable handle for one delivery relationship between a Publisher and a Sink.
type Subscription interface {
	// Cancel stops all future deliveries and releases upstream subscriptions.
	// Calling Cancel more than once, or after the stream terminated, does nothing.
	Cancel()
}

// Stopper may be implemented by a Sink that can report it no longer wants events.
// Publishers that deliver synchronously from within Subscribe check it to stop early, since their
// caller does not hold the returned Subscription yet and so cannot cancel it.
type Stopper interface {
	Stopped() bool
}
