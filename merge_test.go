package gocombine

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestMerge(t *testing.T) {
	is := is.New(t)

	rec := NewRecorder[int]()
	Merge(Of(1, 2), Of(3), Of(4, 5)).Subscribe(rec)

	is.Equal(rec.Events(), finished(1, 2, 3, 4, 5))
}

func TestMerge_Interleaved(t *testing.T) {
	is := is.New(t)

	a := newManual[int]()
	b := newManual[int]()

	rec := NewRecorder[int]()
	Merge[int](a, b).Subscribe(rec)

	a.Send(1)
	b.Send(10)
	a.Send(2)

	is.Equal(rec.Values(), []int{1, 10, 2})
}

func TestMerge_CompletesAfterAll(t *testing.T) {
	is := is.New(t)

	a := newManual[int]()
	b := newManual[int]()

	rec := NewRecorder[int]()
	Merge[int](a, b).Subscribe(rec)

	a.Send(1)
	a.Send(2)
	b.Send(3)

	a.SendCompletion(Finished)

	_, ok := rec.Completion()
	is.True(!ok)

	b.SendCompletion(Finished)

	is.Equal(rec.Events(), finished(1, 2, 3))
}

func TestMerge_FailureCancelsOthers(t *testing.T) {
	is := is.New(t)

	a := newManual[int]()
	b := newManual[int]()
	c := newManual[int]()

	rec := NewRecorder[int]()
	Merge[int](a, b, c).Subscribe(rec)

	a.Send(1)

	b.SendCompletion(Failure(errBoom))

	is.Equal(a.Subscribers(), 0)
	is.Equal(c.Subscribers(), 0)

	a.Send(2)
	c.Send(3)

	is.Equal(rec.Values(), []int{1})

	comp, ok := rec.Completion()
	is.True(ok)
	is.Equal(comp.Err, errBoom)
}

func TestMerge_FailureDuringSubscribe(t *testing.T) {
	is := is.New(t)

	other, otherTap := tapped(Of(1))

	rec := NewRecorder[int]()
	Merge(Fail[int](errBoom), other).Subscribe(rec)

	c, ok := rec.Completion()
	is.True(ok)
	is.Equal(c.Err, errBoom)

	is.Equal(otherTap.subscribed.Load(), int32(0))
}

func TestMerge_Cancel(t *testing.T) {
	is := is.New(t)

	a := newManual[int]()
	b := newManual[int]()

	rec := NewRecorder[int]()
	sub := Merge[int](a, b).Subscribe(rec)

	a.SendCompletion(Finished)

	sub.Cancel()
	sub.Cancel()

	is.Equal(b.Subscribers(), 0)

	b.Send(1)
	b.SendCompletion(Finished)

	is.Equal(len(rec.Events()), 0)
}

func TestMerge_CancelDoesNotCancelFinished(t *testing.T) {
	is := is.New(t)

	a, aTap := tapped(Of(1))
	b := newManual[int]()

	sub := Merge[int](a, b).Subscribe(NewRecorder[int]())

	sub.Cancel()

	is.Equal(aTap.subscribed.Load(), int32(1))
	is.Equal(aTap.canceled.Load(), int32(0))
	is.Equal(b.Subscribers(), 0)
}

func TestMergeAll(t *testing.T) {
	is := is.New(t)

	pub, err := MergeAll([]Publisher[int]{Of(1), Of(2)})
	is.NoErr(err)

	rec := NewRecorder[int]()
	pub.Subscribe(rec)

	is.Equal(rec.Events(), finished(1, 2))
}

func TestMergeAll_Arity(t *testing.T) {
	is := is.New(t)

	_, err := MergeAll[int](nil)
	is.True(errors.Is(err, ErrMergeArity))

	_, err = MergeAll([]Publisher[int]{Of(1)})
	is.True(errors.Is(err, ErrMergeArity))
}
