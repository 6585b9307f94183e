package model

import "strings"

// FieldType tags the normalisation and rendering rules applied to an input.
// Any string outside the named constants is treated as an opaque string type
// and passed through to the rendered element unchanged.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypePassword FieldType = "password"
	FieldTypeSearch   FieldType = "search"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTel      FieldType = "tel"
	FieldTypeURL      FieldType = "url"
)

// ParseFieldType normalises a user supplied type tag. The HTML spelling
// "datetime-local" maps onto FieldTypeDatetime; an empty tag means text.
func ParseFieldType(raw string) FieldType {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	switch trimmed {
	case "":
		return FieldTypeText
	case "datetime-local", "date-time":
		return FieldTypeDatetime
	default:
		return FieldType(trimmed)
	}
}

// IsPassword reports whether the tag renders a masked input. Composite tags
// such as "new-password" count as password fields.
func (t FieldType) IsPassword() bool {
	return strings.Contains(string(t), string(FieldTypePassword))
}

// HTMLType returns the value used for the rendered element's type attribute.
func (t FieldType) HTMLType() string {
	switch t {
	case "":
		return string(FieldTypeText)
	case FieldTypeDatetime:
		return "datetime-local"
	default:
		return string(t)
	}
}

// InputConfig lists every option the visual input understands. Binding
// adapters treat it as opaque pass-through configuration.
type InputConfig struct {
	Type             FieldType         `json:"type,omitempty" yaml:"type,omitempty"`
	Label            string            `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder      string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Tip              string            `json:"tip,omitempty" yaml:"tip,omitempty"`
	Disabled         bool              `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Trim             bool              `json:"trim,omitempty" yaml:"trim,omitempty"`
	ShowRequiredSign bool              `json:"showRequiredSign,omitempty" yaml:"showRequiredSign,omitempty"`
	ShowSearchIcon   bool              `json:"showSearchIcon,omitempty" yaml:"showSearchIcon,omitempty"`
	ClassName        string            `json:"className,omitempty" yaml:"className,omitempty"`
	InputClassName   string            `json:"inputClassName,omitempty" yaml:"inputClassName,omitempty"`
	LabelClassName   string            `json:"labelClassName,omitempty" yaml:"labelClassName,omitempty"`
	ContainerClass   string            `json:"containerClassName,omitempty" yaml:"containerClassName,omitempty"`
	Attrs            map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// InputProps is the fully resolved view state handed to renderers. Value is
// the display value, already normalised for the field type.
type InputProps struct {
	ID               string
	Name             string
	Value            string
	Type             FieldType
	Label            string
	Placeholder      string
	Tip              string
	Error            string
	Disabled         bool
	Required         bool
	ShowRequiredSign bool
	ShowSearchIcon   bool
	ShowPassword     bool
	Focused          bool
	ClassName        string
	InputClassName   string
	LabelClassName   string
	ContainerClass   string
	Attrs            map[string]string
}

// ButtonVariant selects the colour treatment of a button.
type ButtonVariant string

const (
	ButtonDefault     ButtonVariant = "default"
	ButtonDestructive ButtonVariant = "destructive"
	ButtonOutline     ButtonVariant = "outline"
	ButtonSecondary   ButtonVariant = "secondary"
	ButtonGhost       ButtonVariant = "ghost"
	ButtonLink        ButtonVariant = "link"
)

// ButtonSize selects the box dimensions of a button.
type ButtonSize string

const (
	SizeDefault ButtonSize = "default"
	SizeSmall   ButtonSize = "sm"
	SizeLarge   ButtonSize = "lg"
	SizeIcon    ButtonSize = "icon"
	SizeIconSm  ButtonSize = "icon-sm"
	SizeIconLg  ButtonSize = "icon-lg"
)

// ButtonProps configures a button. LoadingWidth carries the width (in pixels)
// measured before loading started; it is pinned while IsLoading is set so
// the spinner does not collapse the layout.
type ButtonProps struct {
	Label        string            `json:"label,omitempty" yaml:"label,omitempty"`
	Variant      ButtonVariant     `json:"variant,omitempty" yaml:"variant,omitempty"`
	Size         ButtonSize        `json:"size,omitempty" yaml:"size,omitempty"`
	Type         string            `json:"type,omitempty" yaml:"type,omitempty"`
	Href         string            `json:"href,omitempty" yaml:"href,omitempty"`
	Disabled     bool              `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	IsLoading    bool              `json:"isLoading,omitempty" yaml:"isLoading,omitempty"`
	LoadingWidth int               `json:"loadingWidth,omitempty" yaml:"loadingWidth,omitempty"`
	Selected     *bool             `json:"selected,omitempty" yaml:"selected,omitempty"`
	ClassName    string            `json:"className,omitempty" yaml:"className,omitempty"`
	Attrs        map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Page groups everything a renderer needs to emit a complete form.
type Page struct {
	Title      string
	Action     string
	Method     string
	Inputs     []InputProps
	Buttons    []ButtonProps
	FormErrors []string
}
