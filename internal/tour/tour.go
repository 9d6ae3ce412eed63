package tour

import (
	"fmt"
	"io"

	"github.com/deadlyengineer/gocombine"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

// Example is a named, runnable example.
type Example struct {
	Name string

	// Run wires up publishers and sinks, storing subscriptions in subs, and drives any subjects.
	// Values are printed to w.
	Run func(w io.Writer, subs *gocombine.Subscriptions)
}

// Runner runs examples.
type Runner struct {
	Out io.Writer
	Log zerolog.Logger
}

// Run runs the given examples in order. Subscriptions made by an example are canceled once it returns.
func (r Runner) Run(examples ...Example) {
	for _, ex := range examples {
		r.Log.Debug().Str("example", ex.Name).Msg("running example")

		fmt.Fprintf(r.Out, "\n——— Example of: %s ———\n", ex.Name)

		subs := gocombine.Subscriptions{}
		ex.Run(r.Out, &subs)

		r.Log.Debug().
			Str("example", ex.Name).
			Int("subscriptions", subs.Len()).
			Msg("canceling example subscriptions")

		subs.CancelAll()
	}
}

// Names returns the names of all examples, in order.
func Names() []string {
	examples := Examples()

	names := make([]string, len(examples))
	for i, ex := range examples {
		names[i] = ex.Name
	}

	return names
}

// Lookup returns the examples with the given names, in the order given.
func Lookup(names ...string) ([]Example, error) {
	examples := Examples()

	found := make([]Example, 0, len(names))

	for _, name := range names {
		i := slices.IndexFunc(examples, func(ex Example) bool {
			return ex.Name == name
		})

		if i < 0 {
			return nil, fmt.Errorf("unknown example %q", name)
		}

		found = append(found, examples[i])
	}

	return found, nil
}

// printValues returns a sink that prints each value on its own line.
func printValues[T any](w io.Writer) gocombine.SinkFuncs[T] {
	return gocombine.SinkFuncs[T]{
		OnValue: func(v T) {
			fmt.Fprintln(w, v)
		},
	}
}

// printAll returns a sink that prints each value on its own line, and "Completed" or the failure
// on completion.
func printAll[T any](w io.Writer) gocombine.SinkFuncs[T] {
	s := printValues[T](w)

	s.OnCompletion = func(c gocombine.Completion) {
		if c.Failed() {
			fmt.Fprintln(w, "Failed:", c.Err)
			return
		}

		fmt.Fprintln(w, "Completed")
	}

	return s
}
