package gocombine

import (
	"testing"

	"github.com/matryer/is"
)

func TestRecorder(t *testing.T) {
	is := is.New(t)

	rec := NewRecorder[string]()

	_, ok := rec.Completion()
	is.True(!ok)

	select {
	case <-rec.Done():
		is.Fail() // done before completion
	default:
	}

	rec.Receive("a")
	rec.Receive("b")
	rec.ReceiveCompletion(Failure(errBoom))

	<-rec.Done()

	is.Equal(rec.Values(), []string{"a", "b"})

	c, ok := rec.Completion()
	is.True(ok)
	is.Equal(c.Err, errBoom)

	is.Equal(len(rec.Events()), 3)
}

func TestRecorder_EventsSnapshot(t *testing.T) {
	is := is.New(t)

	rec := NewRecorder[int]()
	rec.Receive(1)

	events := rec.Events()
	events[0].Value = 100

	is.Equal(rec.Values(), []int{1})
}
