package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formkit/internal/logging"
)

type rootFlags struct {
	logLevel  string
	humanLogs bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "formkit",
		Short:         "Render, fill and serve bound forms from OpenAPI operations or form definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.humanLogs, "log-human", true, "Write console formatted logs instead of JSON")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newFillCmd(flags, nil))
	cmd.AddCommand(newOperationsCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger writes to w, which commands point at stderr so stdout stays clean
// for rendered output.
func (f *rootFlags) logger(w io.Writer) (*logging.Logger, error) {
	return logging.New(logging.Options{
		Level:         f.logLevel,
		HumanReadable: f.humanLogs,
		Writer:        w,
	})
}
