package binding_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/binding"
	"github.com/goliatone/go-formkit/pkg/errtree"
	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/model"
)

func TestFormInput_RequiredFieldLifecycle(t *testing.T) {
	store := form.NewMemoryStore()
	email := binding.New(store, "email", binding.WithInput(model.InputConfig{
		Type:  model.FieldTypeEmail,
		Label: "Email",
	}))

	email.Mount()

	rules := store.Rules("email")
	if diff := cmp.Diff([]form.Rule{form.RequiredRule("Required")}, rules); diff != "" {
		t.Fatalf("registered rules mismatch (-want +got):\n%s", diff)
	}

	props := email.Props()
	if props.Value != "" {
		t.Fatalf("expected empty display value, got %q", props.Value)
	}
	if props.Error != "" {
		t.Fatalf("expected no error before interaction, got %q", props.Error)
	}
	if props.ID != "form-input-email" {
		t.Fatalf("unexpected id %q", props.ID)
	}
	if props.Name != "email" || !props.Required {
		t.Fatalf("unexpected name/required: %q %v", props.Name, props.Required)
	}

	email.Change("")
	email.Blur()

	if got := email.Props().Error; got != "Required" {
		t.Fatalf("expected Required after blur, got %q", got)
	}

	email.Change("ada@example.com")
	props = email.Props()
	if props.Error != "" || props.Value != "ada@example.com" {
		t.Fatalf("expected valid state, got value=%q error=%q", props.Value, props.Error)
	}
}

func TestFormInput_NotRequiredRegistersNoRules(t *testing.T) {
	store := form.NewMemoryStore()
	nick := binding.New(store, "nickname", binding.WithRequired(false))
	nick.Mount()

	if rules := store.Rules("nickname"); len(rules) != 0 {
		t.Fatalf("expected no rules, got %v", rules)
	}
	nick.Blur()
	if got := nick.Props().Error; got != "" {
		t.Fatalf("optional field must not error, got %q", got)
	}
}

func TestFormInput_DisplayDerivedFromStore(t *testing.T) {
	store := form.NewMemoryStore()
	published := binding.New(store, "published_at",
		binding.WithInput(model.InputConfig{Type: model.FieldTypeDate}),
		binding.WithDefault(model.String("2023-12-31T08:00:00.000")),
	)
	published.Mount()

	if got := published.Props().Value; got != "2023-12-31" {
		t.Fatalf("default display = %q", got)
	}

	store.Reset(map[string]model.Value{"published_at": model.String("2024-03-01T10:30:00.000")})
	if got := published.Props().Value; got != "2024-03-01" {
		t.Fatalf("display after external reset = %q", got)
	}
}

func TestFormInput_DefaultSurvivesReset(t *testing.T) {
	store := form.NewMemoryStore()
	country := binding.New(store, "country", binding.WithDefault(model.String("PT")))
	country.Mount()

	country.Change("ES")
	store.Reset(nil)

	props := country.Props()
	if props.Value != "PT" {
		t.Fatalf("display after reset = %q, want default", props.Value)
	}

	values, valid := store.Submit()
	if !valid {
		t.Fatalf("expected reset form with a default to be valid")
	}
	if !values["country"].Equal(model.String("PT")) {
		t.Fatalf("submitted country = %#v, want default", values["country"])
	}
	if got := country.Props().Error; got != "" {
		t.Fatalf("expected no error next to the default, got %q", got)
	}
}

func TestFormInput_ForwardsNormalisedNumber(t *testing.T) {
	store := form.NewMemoryStore()
	age := binding.New(store, "age", binding.WithInput(model.InputConfig{Type: model.FieldTypeNumber, Trim: true}))
	age.Mount()

	age.Change(" 36 ")
	value, ok := store.Value("age")
	if !ok || !value.Equal(model.Number(36)) {
		t.Fatalf("stored value = %#v (ok=%v), want number 36", value, ok)
	}

	age.OnChange(model.String("raw"))
	value, _ = store.Value("age")
	if !value.Equal(model.String("raw")) {
		t.Fatalf("OnChange must forward values unchanged, got %#v", value)
	}
}

func TestFormInput_ErrorFromExternalTree(t *testing.T) {
	store := form.NewMemoryStore()
	city := binding.New(store, "city")
	city.Mount()
	store.SetError("city", "Unknown city")

	if got := city.Error(); got != "Unknown city" {
		t.Fatalf("expected resolved error, got %q", got)
	}
	if _, ok := errtree.Resolve(store.Errors(), "country"); ok {
		t.Fatalf("unexpected error for unrelated path")
	}
}

func TestForm_ApplyAndSubmit(t *testing.T) {
	required := false
	def := model.Definition{
		Title:  "Profile",
		Action: "/profile",
		Fields: []model.FieldConfig{
			{Name: "email", Input: model.InputConfig{Type: model.FieldTypeEmail, Label: "Email"}},
			{Name: "age", Input: model.InputConfig{Type: model.FieldTypeNumber, Trim: true}},
			{Name: "bio", Required: &required},
		},
	}

	store := form.NewMemoryStore()
	f := binding.NewForm(store, def)

	f.Apply(url.Values{
		"email": {""},
		"age":   {" 41 "},
	})

	values, valid := f.Submit()
	if valid {
		t.Fatalf("expected submit to fail with empty email")
	}
	if !values["age"].Equal(model.Number(41)) {
		t.Fatalf("age = %#v, want number 41", values["age"])
	}

	page := f.Page()
	if page.Method != "POST" || page.Title != "Profile" {
		t.Fatalf("unexpected page header: %+v", page)
	}
	errorsByName := map[string]string{}
	for _, in := range page.Inputs {
		errorsByName[in.Name] = in.Error
	}
	want := map[string]string{"email": "Required", "age": "", "bio": ""}
	if diff := cmp.Diff(want, errorsByName); diff != "" {
		t.Fatalf("page errors mismatch (-want +got):\n%s", diff)
	}
	if len(page.Buttons) != 1 || page.Buttons[0].Label != "Submit" || page.Buttons[0].Type != "submit" {
		t.Fatalf("unexpected submit button: %+v", page.Buttons)
	}

	if _, ok := f.Lookup("bio"); !ok {
		t.Fatalf("expected lookup to find bio")
	}
}

func TestForm_ApplyErrors(t *testing.T) {
	def := model.Definition{
		Fields: []model.FieldConfig{
			{Name: "email"},
			{Name: "owner.name"},
		},
	}
	f := binding.NewForm(form.NewMemoryStore(), def)

	formLevel := f.ApplyErrors(map[string][]string{
		"/body/email":      {"Already taken"},
		"$.owner.name":     {"", "Too short"},
		"non_field_errors": {"Try again later"},
	})
	if diff := cmp.Diff([]string{"Try again later"}, formLevel); diff != "" {
		t.Fatalf("form-level messages mismatch (-want +got):\n%s", diff)
	}

	got := map[string]string{}
	for _, in := range f.Inputs() {
		got[in.Path()] = in.Error()
	}
	want := map[string]string{"email": "Already taken", "owner.name": "Too short"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_ValidateTagRules(t *testing.T) {
	def, err := model.ParseDefinition([]byte(`
fields:
  - name: email
    type: email
    validate: email
    validateMessage: Enter a valid email
  - name: handle
    required: false
    validate: min=3
`))
	if err != nil {
		t.Fatalf("parse definition: %v", err)
	}
	f := binding.NewForm(form.NewMemoryStore(), def)

	f.Apply(url.Values{"email": {"not-an-email"}, "handle": {"ab"}})

	got := map[string]string{}
	for _, in := range f.Inputs() {
		got[in.Path()] = in.Error()
	}
	want := map[string]string{"email": "Enter a valid email", "handle": form.InvalidMessage}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	f.Apply(url.Values{"email": {"ada@example.com"}, "handle": {""}})
	if _, valid := f.Submit(); !valid {
		t.Fatalf("expected valid submit once the email parses and the optional handle is empty")
	}
}
