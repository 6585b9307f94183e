package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/openapi"
	"github.com/goliatone/go-formkit/pkg/orchestrator"
	"github.com/goliatone/go-formkit/pkg/theme"
)

const fetchTimeout = 30 * time.Second

// formFlags selects where a form comes from and how it is themed. Either
// definition or schema+operation must be set.
type formFlags struct {
	schema     string
	operation  string
	definition string
	preset     string
	themeFile  string
	variant    string
	values     []string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.schema, "schema", "", "OpenAPI document path or URL")
	cmd.Flags().StringVar(&f.operation, "operation", "", "Operation ID whose request body becomes the form")
	cmd.Flags().StringVar(&f.definition, "definition", "", "Form definition file (YAML or JSON)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "Preset file applied to the definition before rendering")
	cmd.Flags().StringVar(&f.themeFile, "theme", "", "Theme manifest file (YAML)")
	cmd.Flags().StringVar(&f.variant, "variant", "", "Theme variant")
	cmd.Flags().StringArrayVar(&f.values, "value", nil, "Prefill a field as name=value (repeatable)")
}

// session is an orchestrator plus the base request the flags describe.
type session struct {
	orch    *orchestrator.Orchestrator
	request orchestrator.Request
}

func (f *formFlags) session(extra ...orchestrator.Option) (*session, error) {
	req := orchestrator.Request{ThemeVariant: strings.TrimSpace(f.variant)}

	switch {
	case strings.TrimSpace(f.definition) != "":
		data, err := os.ReadFile(f.definition)
		if err != nil {
			return nil, fmt.Errorf("read definition: %w", err)
		}
		def, err := model.ParseDefinition(data)
		if err != nil {
			return nil, err
		}
		req.Definition = &def
	case strings.TrimSpace(f.schema) != "":
		if strings.TrimSpace(f.operation) == "" {
			return nil, errors.New("--operation is required with --schema")
		}
		src, err := openapi.SourceFor(strings.TrimSpace(f.schema))
		if err != nil {
			return nil, err
		}
		req.Source = src
		req.OperationID = strings.TrimSpace(f.operation)
	default:
		return nil, errors.New("either --definition or --schema is required")
	}

	values, err := parseValues(f.values)
	if err != nil {
		return nil, err
	}
	req.Values = values

	options := []orchestrator.Option{
		orchestrator.WithLoader(openapi.NewLoader(openapi.WithHTTPFallback(fetchTimeout))),
	}

	selector := theme.NewSelector("", "")
	if path := strings.TrimSpace(f.themeFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read theme: %w", err)
		}
		manifest, err := theme.LoadManifest(data)
		if err != nil {
			return nil, err
		}
		if err := selector.Register(manifest); err != nil {
			return nil, err
		}
		req.ThemeName = manifest.Name
	}
	options = append(options, orchestrator.WithThemeSelector(selector))

	if path := strings.TrimSpace(f.preset); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read preset: %w", err)
		}
		transformer, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithTransformer(transformer))
	}

	options = append(options, extra...)
	return &session{orch: orchestrator.New(options...), request: req}, nil
}

// parseValues turns name=value pairs into posted form values. A bare name
// posts the empty string.
func parseValues(pairs []string) (url.Values, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	values := url.Values{}
	for _, pair := range pairs {
		name, value, _ := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid value %q: expected name=value", pair)
		}
		values.Set(name, value)
	}
	return values, nil
}
