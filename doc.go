// Package gocombine provides a small push-based reactive stream engine.
// Streams are built from Publishers that wrap one another by composition.
//
// A Publisher is constructed from a source, such as Of, or from a subject that is driven
// manually. Operators (Prepend, Append, Merge, and SwitchToLatest) return new Publishers
// that own the subscriptions they make to their upstream Publishers.
//
// Subscribing a Sink to a Publisher returns a Subscription. Events are delivered synchronously:
// an upstream delivering a value runs into every downstream handler before it returns.
// A subscription delivers zero or more values followed by at most one terminal Completion,
// which is either Finished or a Failure.
//
// Cancelling a Subscription stops all further deliveries to its Sink and cancels every upstream
// subscription held on its behalf. Cancelling is idempotent, and cancelling after termination
// does nothing. Deliveries to a single subscription must not happen concurrently, but Cancel
// may be called from any goroutine.
package gocombine
