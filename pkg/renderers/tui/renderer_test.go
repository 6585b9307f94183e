package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/binding"
	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/render"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	prompts      []InputConfig
	infoMessages []string
	inputPos     int
	passPos      int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func signupForm(mode form.Mode) *binding.Form {
	optional := false
	def := model.Definition{
		Title: "Sign up",
		Fields: []model.FieldConfig{
			{Name: "name", Input: model.InputConfig{Label: "Name", Tip: "Full name"}},
			{Name: "age", Required: &optional, Input: model.InputConfig{Type: model.FieldTypeNumber}},
			{Name: "password", Input: model.InputConfig{Type: model.FieldTypePassword, Label: "Password"}},
		},
	}
	return binding.NewForm(form.NewMemoryStore(form.WithMode(mode)), def)
}

func TestFill_RepromptsRequiredField(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "Ada", "42"},
		passwords: []string{"secret"},
	}
	renderer, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Fill(context.Background(), signupForm(form.ModeOnBlur))
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	if got, want := string(out), `{"age":42,"name":"Ada","password":"secret"}`; got != want {
		t.Fatalf("output mismatch\nwant: %s\n got: %s", want, got)
	}
	if diff := cmp.Diff([]string{"*Required"}, driver.infoMessages); diff != "" {
		t.Fatalf("info messages mismatch (-want +got):\n%s", diff)
	}
	if driver.prompts[0].Message != "Name *" || driver.prompts[0].Help != "Full name" {
		t.Fatalf("unexpected first prompt: %+v", driver.prompts[0])
	}
	if driver.prompts[2].Message != "age" {
		t.Fatalf("optional field should be labelled by path without marker, got %q", driver.prompts[2].Message)
	}
}

func TestFill_OnSubmitModeRepromptsAfterSubmit(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "", "Ada"},
		passwords: []string{"secret"},
	}
	renderer, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Fill(context.Background(), signupForm(form.ModeOnSubmit))
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if got, want := string(out), "age=\nname=Ada\npassword=secret\n"; got != want {
		t.Fatalf("output mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestFill_TooManyAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"", ""}}
	renderer, err := New(WithPromptDriver(driver), WithMaxAttempts(2))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, err = renderer.Fill(context.Background(), signupForm(form.ModeOnBlur))
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestFill_PropagatesDriverErrors(t *testing.T) {
	renderer, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := renderer.Fill(context.Background(), signupForm(form.ModeOnBlur)); err == nil {
		t.Fatalf("expected error when the driver runs out of answers")
	}
}

func TestFill_FormURLEncoded(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Ada Lovelace", ""}, passwords: []string{"pw"}}
	renderer, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatFormURLEncoded))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.OutputContentType() != "application/x-www-form-urlencoded" {
		t.Fatalf("unexpected content type %q", renderer.OutputContentType())
	}

	out, err := renderer.Fill(context.Background(), signupForm(form.ModeOnBlur))
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if got, want := string(out), "age=&name=Ada+Lovelace&password=pw"; got != want {
		t.Fatalf("output mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestRender_TextSummary(t *testing.T) {
	renderer, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), model.Page{
		Title: "Login",
		Inputs: []model.InputProps{
			{Name: "email", Label: "Email", Value: "ada@example.com", Required: true, ShowRequiredSign: true},
			{Name: "password", Type: model.FieldTypePassword, Value: "hunter2", Error: "Required"},
			{Name: "code", Tip: "From your app"},
		},
	}, render.RenderOptions{FormErrors: []string{"Locked out"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		"Login",
		"=====",
		"Email *: ada@example.com",
		"password: *******",
		"  *Required",
		"code: ",
		"  From your app",
		"*Locked out",
		"",
	}, "\n")
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}
