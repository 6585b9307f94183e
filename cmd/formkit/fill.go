package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/orchestrator"
	"github.com/goliatone/go-formkit/pkg/renderers/tui"
)

type fillFlags struct {
	form        formFlags
	format      string
	mode        string
	maxAttempts int
}

// newFillCmd builds the interactive fill command. driver replaces the
// survey prompts when non-nil.
func newFillCmd(root *rootFlags, driver tui.PromptDriver) *cobra.Command {
	flags := &fillFlags{}

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Prompt for every field in the terminal and print the submitted values",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			sess, err := flags.form.session(orchestrator.WithStoreOptions(form.WithMode(form.Mode(flags.mode))))
			if err != nil {
				return err
			}
			f, err := sess.orch.Form(cmd.Context(), sess.request)
			if err != nil {
				return err
			}

			renderer, err := tui.New(
				tui.WithPromptDriver(driver),
				tui.WithOutput(cmd.ErrOrStderr()),
				tui.WithOutputFormat(tui.OutputFormat(flags.format)),
				tui.WithMaxAttempts(flags.maxAttempts),
			)
			if err != nil {
				return err
			}

			output, err := renderer.Fill(cmd.Context(), f)
			if err != nil {
				return err
			}
			log.WithFields(map[string]any{"fields": len(f.Inputs()), "format": flags.format}).Debug("form filled")

			out := cmd.OutOrStdout()
			if _, err := out.Write(output); err != nil {
				return err
			}
			_, err = out.Write([]byte("\n"))
			return err
		},
	}

	flags.form.register(cmd)
	cmd.Flags().StringVar(&flags.format, "output-format", string(tui.OutputFormatJSON), "Result format (json, form, pretty)")
	cmd.Flags().StringVar(&flags.mode, "mode", string(form.ModeOnBlur), "Validation mode (onBlur, onChange, onSubmit)")
	cmd.Flags().IntVar(&flags.maxAttempts, "max-attempts", 3, "Prompts per field before giving up (0 for unlimited)")

	return cmd
}
