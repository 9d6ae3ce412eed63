package tour

import (
	"io"

	"github.com/deadlyengineer/gocombine"
	"github.com/deadlyengineer/gocombine/subject"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Examples returns all examples, in order.
func Examples() []Example {
	return []Example{
		{Name: "prepend(Output...)", Run: prependValues},
		{Name: "prepend(Sequence)", Run: prependSequence},
		{Name: "prepend(Publisher)", Run: prependPublisher},
		{Name: "prepend(Publisher) #2", Run: prependSubject},
		{Name: "append(Output...)", Run: appendValues},
		{Name: "append(Output...) #2", Run: appendSubject},
		{Name: "append(Sequence)", Run: appendSequence},
		{Name: "append(Publisher)", Run: appendPublisher},
		{Name: "merge(with:)", Run: mergeSubjects},
		{Name: "switchToLatest", Run: switchToLatest},
	}
}

// set returns the elements of a set, sorted.
func set(elems ...int) []int {
	s := map[int]struct{}{}
	for _, e := range elems {
		s[e] = struct{}{}
	}

	keys := maps.Keys(s)
	slices.Sort(keys)

	return keys
}

func prependValues(w io.Writer, subs *gocombine.Subscriptions) {
	pub := gocombine.Of(3, 4)

	pub = gocombine.Prepend(pub, 1, 2)
	pub = gocombine.Prepend(pub, -1, 0)

	subs.Add(pub.Subscribe(printValues[int](w)))
}

func prependSequence(w io.Writer, subs *gocombine.Subscriptions) {
	pub := gocombine.Of(5, 6, 7)

	pub = gocombine.Prepend(pub, 3, 4)
	pub = gocombine.Prepend(pub, set(1, 2)...)
	pub = gocombine.PrependPublisher(pub, gocombine.Range(6, 11, 2))

	subs.Add(pub.Subscribe(printValues[int](w)))
}

func prependPublisher(w io.Writer, subs *gocombine.Subscriptions) {
	pub1 := gocombine.Of(3, 4)
	pub2 := gocombine.Of(1, 2)

	subs.Add(gocombine.PrependPublisher(pub1, pub2).Subscribe(printValues[int](w)))
}

func prependSubject(w io.Writer, subs *gocombine.Subscriptions) {
	pub1 := gocombine.Of(3, 4)
	pub2 := subject.New[int]()

	subs.Add(gocombine.PrependPublisher[int](pub1, pub2).Subscribe(printValues[int](w)))

	pub2.Send(1)
	pub2.Send(2)
	pub2.SendCompletion(gocombine.Finished)
}

func appendValues(w io.Writer, subs *gocombine.Subscriptions) {
	pub := gocombine.Of(1)

	pub = gocombine.Append(pub, 2, 3)
	pub = gocombine.Append(pub, 4)

	subs.Add(pub.Subscribe(printValues[int](w)))
}

func appendSubject(w io.Writer, subs *gocombine.Subscriptions) {
	subj := subject.New[int]()

	pub := gocombine.Append[int](subj, 3, 4)
	pub = gocombine.Append(pub, 5)

	subs.Add(pub.Subscribe(printValues[int](w)))

	subj.Send(1)
	subj.Send(2)
	subj.SendCompletion(gocombine.Finished)
}

func appendSequence(w io.Writer, subs *gocombine.Subscriptions) {
	pub := gocombine.Of(1, 2, 3)

	pub = gocombine.Append(pub, 4, 5)
	pub = gocombine.Append(pub, set(6, 7)...)
	pub = gocombine.AppendPublisher(pub, gocombine.Range(8, 11, 2))

	subs.Add(pub.Subscribe(printValues[int](w)))
}

func appendPublisher(w io.Writer, subs *gocombine.Subscriptions) {
	pub1 := gocombine.Of(1, 2)
	pub2 := gocombine.Of(3, 4)

	subs.Add(gocombine.AppendPublisher(pub1, pub2).Subscribe(printValues[int](w)))
}

func mergeSubjects(w io.Writer, subs *gocombine.Subscriptions) {
	pub1 := subject.New[int]()
	pub2 := subject.New[int]()

	subs.Add(gocombine.Merge[int](pub1, pub2).Subscribe(printAll[int](w)))

	pub1.Send(1)
	pub1.Send(2)
	pub2.Send(3)
	pub1.Send(4)
	pub2.Send(5)

	pub1.SendCompletion(gocombine.Finished)
	pub2.SendCompletion(gocombine.Finished)
}

func switchToLatest(w io.Writer, subs *gocombine.Subscriptions) {
	pub1 := subject.New[int]()
	pub2 := subject.New[int]()
	pub3 := subject.New[int]()

	pubs := subject.New[gocombine.Publisher[int]]()

	subs.Add(gocombine.SwitchToLatest[int](pubs).Subscribe(printAll[int](w)))

	pubs.Send(pub1)
	pub1.Send(1)
	pub1.Send(2)

	pubs.Send(pub2)
	pub1.Send(3)
	pub2.Send(4)
	pub2.Send(5)

	pubs.Send(pub3)
	pub2.Send(6)
	pub3.Send(7)
	pub3.Send(8)
	pub3.Send(9)

	pub3.SendCompletion(gocombine.Finished)
	pubs.SendCompletion(gocombine.Finished)
}
