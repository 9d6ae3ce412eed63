package metrics

import (
	"errors"
	"testing"

	"github.com/deadlyengineer/gocombine"
	"github.com/deadlyengineer/gocombine/subject"
	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrument(t *testing.T) {
	is := is.New(t)

	c := NewCollector(prometheus.NewRegistry())

	pub := Instrument(c, "ints", gocombine.Of(1, 2, 3))

	rec := gocombine.NewRecorder[int]()
	pub.Subscribe(rec)
	pub.Subscribe(gocombine.NewRecorder[int]())

	is.Equal(rec.Values(), []int{1, 2, 3})

	is.Equal(testutil.ToFloat64(c.subscriptions.WithLabelValues("ints")), float64(2))
	is.Equal(testutil.ToFloat64(c.values.WithLabelValues("ints")), float64(6))
	is.Equal(testutil.ToFloat64(c.completions.WithLabelValues("ints", OutcomeFinished)), float64(2))
	is.Equal(testutil.ToFloat64(c.completions.WithLabelValues("ints", OutcomeFailed)), float64(0))
	is.Equal(testutil.ToFloat64(c.cancellations.WithLabelValues("ints")), float64(0))
}

func TestInstrument_Failure(t *testing.T) {
	is := is.New(t)

	c := NewCollector(nil)

	pub := Instrument(c, "failing", gocombine.Fail[int](errors.New("boom")))
	pub.Subscribe(gocombine.NewRecorder[int]())

	is.Equal(testutil.ToFloat64(c.completions.WithLabelValues("failing", OutcomeFailed)), float64(1))
}

func TestInstrument_Cancel(t *testing.T) {
	is := is.New(t)

	c := NewCollector(nil)

	src := subject.New[int]()

	sub := Instrument[int](c, "subject", src).Subscribe(gocombine.NewRecorder[int]())

	src.Send(1)

	sub.Cancel()
	sub.Cancel()

	src.Send(2)

	is.Equal(src.Subscribers(), 0)
	is.Equal(testutil.ToFloat64(c.values.WithLabelValues("subject")), float64(1))
	is.Equal(testutil.ToFloat64(c.cancellations.WithLabelValues("subject")), float64(1))
}

func TestInstrument_MergeFailure(t *testing.T) {
	is := is.New(t)

	c := NewCollector(nil)

	merged := gocombine.Merge(
		Instrument(c, "failing", gocombine.Fail[int](errors.New("boom"))),
		Instrument(c, "ints", gocombine.Of(1, 2, 3)),
	)

	rec := gocombine.NewRecorder[int]()
	merged.Subscribe(rec)

	is.Equal(rec.Values(), []int{})
	is.Equal(testutil.ToFloat64(c.subscriptions.WithLabelValues("ints")), float64(0))
}

func TestNewCollector_Registers(t *testing.T) {
	is := is.New(t)

	reg := prometheus.NewRegistry()

	c := NewCollector(reg)
	Instrument(c, "ints", gocombine.Of(1)).Subscribe(gocombine.NewRecorder[int]())

	families, err := reg.Gather()
	is.NoErr(err)
	is.Equal(len(families), 4)
}
