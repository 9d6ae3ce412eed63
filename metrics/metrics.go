// Package metrics instruments publishers with Prometheus counters.
package metrics

import (
	"sync/atomic"

	"github.com/deadlyengineer/gocombine"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of the completions counter.
const (
	OutcomeFinished = "finished"
	OutcomeFailed   = "failed"
)

// Collector holds the counters updated by instrumented publishers.
type Collector struct {
	subscriptions *prometheus.CounterVec
	values        *prometheus.CounterVec
	completions   *prometheus.CounterVec
	cancellations *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its counters with reg.
// If reg is nil, the counters are not registered.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		subscriptions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gocombine",
				Subsystem: "publisher",
				Name:      "subscriptions_total",
				Help:      "Total number of subscriptions to a publisher",
			},
			[]string{"publisher"},
		),
		values: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gocombine",
				Subsystem: "publisher",
				Name:      "values_total",
				Help:      "Total number of values delivered by a publisher",
			},
			[]string{"publisher"},
		),
		completions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gocombine",
				Subsystem: "publisher",
				Name:      "completions_total",
				Help:      "Total number of completions delivered by a publisher, by outcome",
			},
			[]string{"publisher", "outcome"},
		),
		cancellations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gocombine",
				Subsystem: "publisher",
				Name:      "cancellations_total",
				Help:      "Total number of subscriptions to a publisher canceled before completion",
			},
			[]string{"publisher"},
		),
	}

	if reg != nil {
		reg.MustRegister(c.subscriptions, c.values, c.completions, c.cancellations)
	}

	return c
}

// Instrument returns a publisher that delivers the same events as pub, counting them under the
// publisher label name.
func Instrument[T any](c *Collector, name string, pub gocombine.Publisher[T]) gocombine.Publisher[T] {
	return gocombine.PublisherFunc[T](func(sink gocombine.Sink[T]) gocombine.Subscription {
		c.subscriptions.WithLabelValues(name).Inc()

		s := &countingSink[T]{
			sink:     sink,
			values:   c.values.WithLabelValues(name),
			finished: c.completions.WithLabelValues(name, OutcomeFinished),
			failed:   c.completions.WithLabelValues(name, OutcomeFailed),
		}

		sub := pub.Subscribe(s)

		canceled := c.cancellations.WithLabelValues(name)

		return gocombine.SubscriptionFunc(func() {
			if s.closed.Swap(true) {
				return
			}

			canceled.Inc()
			sub.Cancel()
		})
	})
}

// countingSink counts the events it forwards to sink.
type countingSink[T any] struct {
	sink     gocombine.Sink[T]
	values   prometheus.Counter
	finished prometheus.Counter
	failed   prometheus.Counter
	closed   atomic.Bool
}

// Stopped implements gocombine.Stopper.
func (s *countingSink[T]) Stopped() bool {
	if s.closed.Load() {
		return true
	}

	if st, ok := s.sink.(gocombine.Stopper); ok {
		return st.Stopped()
	}

	return false
}

func (s *countingSink[T]) Receive(v T) {
	if s.Stopped() {
		return
	}

	s.values.Inc()
	s.sink.Receive(v)
}

func (s *countingSink[T]) ReceiveCompletion(c gocombine.Completion) {
	if s.closed.Swap(true) {
		return
	}

	if c.Failed() {
		s.failed.Inc()
	} else {
		s.finished.Inc()
	}

	s.sink.ReceiveCompletion(c)
}
