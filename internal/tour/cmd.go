package tour

import (
	"fmt"
	"os"

	"github.com/deadlyengineer/gocombine"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRoot constructs the root command of the tour CLI.
// It registers the list and run commands.
func NewRoot() *cobra.Command {
	debug := false

	root := &cobra.Command{
		Use:           "gocombine-tour",
		Short:         "Run examples of the gocombine operators",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "log subscription lifecycles to stderr")

	root.AddCommand(newListCommand())
	root.AddCommand(newRunCommand(&debug))

	return root
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List example names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newRunCommand(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run [name...]",
		Short: "Run all examples, or the named examples",
		RunE: func(cmd *cobra.Command, args []string) error {
			examples := Examples()

			if len(args) > 0 {
				var err error
				if examples, err = Lookup(args...); err != nil {
					return err
				}
			}

			log := zerolog.Nop()
			if *debug {
				log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
					Level(zerolog.DebugLevel).
					With().
					Timestamp().
					Logger()

				gocombine.SetLogger(log)
			}

			Runner{
				Out: cmd.OutOrStdout(),
				Log: log,
			}.Run(examples...)

			return nil
		},
	}
}

// Execute runs the root command, exiting with a non-zero status on error.
func Execute() {
	if err := NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
