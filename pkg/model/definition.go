package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldConfig declares a single bound input inside a form definition.
// Required defaults to true when omitted, matching the binding default.
// Input options sit next to the field keys in both YAML and JSON.
type FieldConfig struct {
	Name    string `json:"name" yaml:"name"`
	Default any    `json:"default,omitempty" yaml:"default,omitempty"`
	// Required is a pointer so "omitted" and "false" stay distinguishable.
	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`
	// Validate holds go-playground/validator tags applied to non-empty
	// values ("email", "min=3,max=20"). Presence is controlled by Required.
	Validate        string      `json:"validate,omitempty" yaml:"validate,omitempty"`
	ValidateMessage string      `json:"validateMessage,omitempty" yaml:"validateMessage,omitempty"`
	Input           InputConfig `json:"-" yaml:",inline"`
}

type fieldJSON struct {
	Name            string `json:"name"`
	Default         any    `json:"default,omitempty"`
	Required        *bool  `json:"required,omitempty"`
	Validate        string `json:"validate,omitempty"`
	ValidateMessage string `json:"validateMessage,omitempty"`
	InputConfig
}

// MarshalJSON writes the input options inline, the shape ParseDefinition
// reads back.
func (f FieldConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldJSON{
		Name:            f.Name,
		Default:         f.Default,
		Required:        f.Required,
		Validate:        f.Validate,
		ValidateMessage: f.ValidateMessage,
		InputConfig:     f.Input,
	})
}

func (f *FieldConfig) UnmarshalJSON(data []byte) error {
	var raw fieldJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = FieldConfig{
		Name:            raw.Name,
		Default:         raw.Default,
		Required:        raw.Required,
		Validate:        raw.Validate,
		ValidateMessage: raw.ValidateMessage,
		Input:           raw.InputConfig,
	}
	return nil
}

// IsRequired resolves the Required pointer against the default of true.
func (f FieldConfig) IsRequired() bool {
	return f.Required == nil || *f.Required
}

// Definition is a declarative form description loaded from YAML/JSON or
// derived from an OpenAPI operation.
type Definition struct {
	Title  string        `json:"title,omitempty" yaml:"title,omitempty"`
	Action string        `json:"action,omitempty" yaml:"action,omitempty"`
	Method string        `json:"method,omitempty" yaml:"method,omitempty"`
	Fields []FieldConfig `json:"fields" yaml:"fields"`
	Submit ButtonProps   `json:"submit,omitempty" yaml:"submit,omitempty"`
}

var errDefinitionEmpty = errors.New("model: definition payload is empty")

// ParseDefinition decodes a YAML (or JSON, which YAML accepts) definition and
// validates field names.
func ParseDefinition(data []byte) (Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Definition{}, errDefinitionEmpty
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("model: decode definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Validate checks names are present and unique, normalises field types and
// rejects validator tags that would not parse.
func (d *Definition) Validate() error {
	seen := make(map[string]struct{}, len(d.Fields))
	for idx := range d.Fields {
		field := &d.Fields[idx]
		field.Name = strings.TrimSpace(field.Name)
		if field.Name == "" {
			return fmt.Errorf("model: field %d: name is required", idx)
		}
		if _, exists := seen[field.Name]; exists {
			return fmt.Errorf("model: field %q declared twice", field.Name)
		}
		seen[field.Name] = struct{}{}
		field.Input.Type = ParseFieldType(string(field.Input.Type))
		field.Validate = strings.TrimSpace(field.Validate)
		if err := checkTag(field.Validate); err != nil {
			return fmt.Errorf("model: field %q: %w", field.Name, err)
		}
	}
	return nil
}
