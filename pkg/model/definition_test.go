package model_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/model"
)

func TestParseDefinition_ValidateTags(t *testing.T) {
	def, err := model.ParseDefinition([]byte(`
fields:
  - name: email
    validate: " email,max=120 "
`))
	if err != nil {
		t.Fatalf("parse definition: %v", err)
	}
	if def.Fields[0].Validate != "email,max=120" {
		t.Fatalf("validate tag = %q", def.Fields[0].Validate)
	}
}

func TestParseDefinition_RejectsBadValidateTags(t *testing.T) {
	cases := map[string]string{
		"unknown function": "postcode",
		"bad parameter":    "min=abc",
		"presence tag":     "email,required",
	}
	for name, tag := range cases {
		t.Run(name, func(t *testing.T) {
			doc := "fields:\n  - name: code\n    validate: " + tag + "\n"
			_, err := model.ParseDefinition([]byte(doc))
			if err == nil {
				t.Fatalf("expected error for tag %q", tag)
			}
			if !strings.Contains(err.Error(), `"code"`) {
				t.Fatalf("expected field name in error, got %v", err)
			}
		})
	}

	_, err := model.ParseDefinition([]byte("fields:\n  - name: code\n    validate: required\n"))
	if !errors.Is(err, model.ErrRequiredTag) {
		t.Fatalf("expected ErrRequiredTag, got %v", err)
	}
}

func TestFieldConfig_JSONKeepsInputInline(t *testing.T) {
	def, err := model.ParseDefinition([]byte(`{
  "title": "Sign up",
  "fields": [
    {"name": "email", "type": "email", "label": "Email", "placeholder": "you@example.com", "validate": "email"}
  ]
}`))
	if err != nil {
		t.Fatalf("parse definition: %v", err)
	}
	want := model.FieldConfig{
		Name:     "email",
		Validate: "email",
		Input: model.InputConfig{
			Type:        model.FieldTypeEmail,
			Label:       "Email",
			Placeholder: "you@example.com",
		},
	}
	if diff := cmp.Diff(want, def.Fields[0]); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}

	data, err := json.Marshal(def.Fields[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), `"input"`) || !strings.Contains(string(data), `"label":"Email"`) {
		t.Fatalf("expected inline input keys, got %s", data)
	}

	again, err := model.ParseDefinition([]byte(`{"fields": [` + string(data) + `]}`))
	if err != nil {
		t.Fatalf("parse marshalled field: %v", err)
	}
	if diff := cmp.Diff(def.Fields[0], again.Fields[0]); diff != "" {
		t.Fatalf("marshalled field mismatch (-want +got):\n%s", diff)
	}
}
