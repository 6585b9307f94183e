package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formkit/pkg/orchestrator"
	"github.com/goliatone/go-formkit/pkg/render"
	"github.com/goliatone/go-formkit/pkg/renderers/tui"
	"github.com/goliatone/go-formkit/pkg/renderers/vanilla"
)

type renderFlags struct {
	form     formFlags
	format   string
	output   string
	fragment bool
	submit   bool
	csrf     string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a form as HTML or a text summary",
		Example: `  formkit render --schema api.yaml --operation createUser
  formkit render --definition signup.yaml --value email= --submit --format tui`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			registry, err := rendererRegistry()
			if err != nil {
				return err
			}
			sess, err := flags.form.session(orchestrator.WithRegistry(registry))
			if err != nil {
				return err
			}

			req := sess.request
			req.Renderer = strings.TrimSpace(flags.format)
			req.Submit = flags.submit
			req.RenderOptions.Fragment = flags.fragment
			if token := strings.TrimSpace(flags.csrf); token != "" {
				req.RenderOptions.Hidden = render.MergeHiddenFields(nil, render.CSRFToken(csrfFieldName, token))
			}

			output, err := sess.orch.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			if flags.output == "" {
				_, err = cmd.OutOrStdout().Write(output)
				return err
			}
			if err := os.WriteFile(flags.output, output, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			log.WithFields(map[string]any{"path": flags.output, "bytes": len(output)}).Info("form written")
			return nil
		},
	}

	flags.form.register(cmd)
	cmd.Flags().StringVar(&flags.format, "format", "vanilla", "Renderer name (vanilla, tui)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().BoolVar(&flags.fragment, "fragment", false, "Render only the form element, without the document shell")
	cmd.Flags().BoolVar(&flags.submit, "submit", false, "Validate every field before rendering")
	cmd.Flags().StringVar(&flags.csrf, "csrf-token", "", "Embed a CSRF token hidden field")

	return cmd
}

func rendererRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	text, err := tui.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(text); err != nil {
		return nil, err
	}
	return registry, nil
}
