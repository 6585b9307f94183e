package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formkit/pkg/model"
)

// Transformer mutates a Definition before bindings are mounted.
type Transformer interface {
	Transform(ctx context.Context, def *model.Definition) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, def *model.Definition) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, def *model.Definition) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, def)
}

// Chain runs transformers in order, stopping at the first error.
func Chain(transformers ...Transformer) Transformer {
	return TransformerFunc(func(ctx context.Context, def *model.Definition) error {
		for _, t := range transformers {
			if t == nil {
				continue
			}
			if err := t.Transform(ctx, def); err != nil {
				return err
			}
		}
		return nil
	})
}

// PresetTransformer applies declarative overrides loaded from a YAML or JSON
// document:
//
//	title: Create account
//	submit: {label: Sign up, variant: secondary}
//	order: [email, password]
//	fields:
//	  email: {label: Work email, placeholder: you@company.com}
//	  nickname: {required: false, rename: handle}
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Title  string                `yaml:"title"`
	Action string                `yaml:"action"`
	Method string                `yaml:"method"`
	Submit *model.ButtonProps    `yaml:"submit"`
	Order  []string              `yaml:"order"`
	Fields map[string]fieldPatch `yaml:"fields"`
}

type fieldPatch struct {
	Label            string `yaml:"label"`
	Tip              string `yaml:"tip"`
	Placeholder      string `yaml:"placeholder"`
	Type             string `yaml:"type"`
	Rename           string `yaml:"rename"`
	Default          any    `yaml:"default"`
	Required         *bool  `yaml:"required"`
	Disabled         *bool  `yaml:"disabled"`
	Trim             *bool  `yaml:"trim"`
	ShowRequiredSign *bool  `yaml:"showRequiredSign"`
	ShowSearchIcon   *bool  `yaml:"showSearchIcon"`
	ClassName        string `yaml:"className"`
}

// NewPresetTransformer constructs a transformer from raw document bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from fsys.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the declarative patches onto def. Patches are keyed by
// the field's name before any rename.
func (t *PresetTransformer) Transform(ctx context.Context, def *model.Definition) error {
	if def == nil {
		return errors.New("preset transformer: definition is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := t.document
	if doc.Title != "" {
		def.Title = doc.Title
	}
	if doc.Action != "" {
		def.Action = doc.Action
	}
	if doc.Method != "" {
		def.Method = doc.Method
	}
	if doc.Submit != nil {
		def.Submit = mergeButton(def.Submit, *doc.Submit)
	}

	names := make([]string, 0, len(doc.Fields))
	for name := range doc.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	// Resolve every target first so one patch's rename cannot hide another.
	targets := make([]*model.FieldConfig, len(names))
	for idx, name := range names {
		field := findField(def.Fields, name)
		if field == nil {
			return fmt.Errorf("preset transformer: field %q not found", name)
		}
		targets[idx] = field
	}
	for idx, name := range names {
		applyFieldPatch(targets[idx], doc.Fields[name])
	}

	if len(doc.Order) > 0 {
		def.Fields = reorder(def.Fields, doc.Order)
	}
	return nil
}

func applyFieldPatch(field *model.FieldConfig, patch fieldPatch) {
	if patch.Label != "" {
		field.Input.Label = patch.Label
	}
	if patch.Tip != "" {
		field.Input.Tip = patch.Tip
	}
	if patch.Placeholder != "" {
		field.Input.Placeholder = patch.Placeholder
	}
	if patch.Type != "" {
		field.Input.Type = model.ParseFieldType(patch.Type)
	}
	if patch.Default != nil {
		field.Default = patch.Default
	}
	if patch.Required != nil {
		required := *patch.Required
		field.Required = &required
	}
	if patch.Disabled != nil {
		field.Input.Disabled = *patch.Disabled
	}
	if patch.Trim != nil {
		field.Input.Trim = *patch.Trim
	}
	if patch.ShowRequiredSign != nil {
		field.Input.ShowRequiredSign = *patch.ShowRequiredSign
	}
	if patch.ShowSearchIcon != nil {
		field.Input.ShowSearchIcon = *patch.ShowSearchIcon
	}
	if patch.ClassName != "" {
		field.Input.ClassName = patch.ClassName
	}
	if rename := strings.TrimSpace(patch.Rename); rename != "" {
		field.Name = rename
	}
}

func mergeButton(base, patch model.ButtonProps) model.ButtonProps {
	if patch.Label != "" {
		base.Label = patch.Label
	}
	if patch.Variant != "" {
		base.Variant = patch.Variant
	}
	if patch.Size != "" {
		base.Size = patch.Size
	}
	if patch.Type != "" {
		base.Type = patch.Type
	}
	if patch.ClassName != "" {
		base.ClassName = patch.ClassName
	}
	return base
}

func findField(fields []model.FieldConfig, name string) *model.FieldConfig {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for idx := range fields {
		if fields[idx].Name == name {
			return &fields[idx]
		}
	}
	return nil
}

// reorder moves the named fields to the front in the given order; the rest
// keep their relative positions.
func reorder(fields []model.FieldConfig, order []string) []model.FieldConfig {
	out := make([]model.FieldConfig, 0, len(fields))
	used := make([]bool, len(fields))
	for _, name := range order {
		for idx, field := range fields {
			if !used[idx] && field.Name == name {
				out = append(out, field)
				used[idx] = true
				break
			}
		}
	}
	for idx, field := range fields {
		if !used[idx] {
			out = append(out, field)
		}
	}
	return out
}
