package vanilla

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formkit/pkg/classes"
	"github.com/goliatone/go-formkit/pkg/icons"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/theme"
)

type attr struct {
	Name  string
	Value string
}

func inputView(props model.InputProps) map[string]any {
	password := props.Type.IsPassword()
	htmlType := props.Type.HTMLType()
	if password && props.ShowPassword {
		htmlType = "text"
	}
	hasError := props.Error != ""

	view := map[string]any{
		"id":             props.ID,
		"name":           props.Name,
		"value":          props.Value,
		"type":           htmlType,
		"label":          props.Label,
		"placeholder":    props.Placeholder,
		"error":          props.Error,
		"disabled":       props.Disabled,
		"required":       props.Required,
		"invalid":        strconv.FormatBool(hasError),
		"focused":        props.Focused,
		"password":       password,
		"visible":        props.ShowPassword,
		"wrapperClass":   classes.Merge(theme.InputWrapperClass, props.ClassName),
		"labelRowClass":  theme.InputLabelRowClass,
		"labelClass":     classes.Merge(theme.InputLabelClass, props.LabelClassName),
		"containerClass": theme.InputContainerClasses(hasError, props.ContainerClass),
		"inputClass":     theme.InputElementClasses(props.InputClassName),
		"toggleClass":    theme.InputToggleClass,
		"tipClass":       theme.InputTipClass,
		"errorClass":     theme.InputErrorClass,
		"attrs":          attrList(props.Attrs, reservedInputAttrs),
	}
	if !hasError {
		view["tip"] = props.Tip
	}
	if props.Required && props.ShowRequiredSign {
		view["requiredIcon"] = icons.SVG(icons.Asterisk, 12, theme.InputRequiredClass)
	}
	if props.ShowSearchIcon || props.Type == model.FieldTypeSearch {
		view["searchIcon"] = icons.SVG(icons.Search, 18, theme.InputSearchIconClass)
	}
	if password {
		view["eyeIcon"] = icons.SVG(icons.Eye, 16, "")
		view["eyeOffIcon"] = icons.SVG(icons.EyeOff, 16, "")
	}
	return view
}

func buttonView(props model.ButtonProps) map[string]any {
	buttonType := strings.TrimSpace(props.Type)
	if buttonType == "" {
		buttonType = "button"
	}

	view := map[string]any{
		"label":    props.Label,
		"type":     buttonType,
		"href":     strings.TrimSpace(props.Href),
		"disabled": props.Disabled || props.IsLoading,
		"loading":  props.IsLoading,
		"class":    theme.ButtonClasses(props.Variant, props.Size, props.ClassName),
		"attrs":    attrList(props.Attrs, reservedButtonAttrs),
	}
	if props.Selected != nil {
		view["selected"] = strconv.FormatBool(*props.Selected)
	}
	if props.IsLoading {
		view["loader"] = icons.SVG(icons.Loader, 16, "size-4 animate-spin")
		if props.LoadingWidth > 0 {
			view["style"] = "width: " + strconv.Itoa(props.LoadingWidth) + "px"
		}
	}
	return view
}

var reservedInputAttrs = map[string]struct{}{
	"id": {}, "name": {}, "type": {}, "value": {}, "class": {}, "step": {},
	"disabled": {}, "required": {}, "placeholder": {}, "aria-invalid": {},
}

var reservedButtonAttrs = map[string]struct{}{
	"type": {}, "class": {}, "disabled": {}, "href": {}, "style": {}, "data-slot": {},
}

// attrList turns pass-through attributes into a sorted list, dropping names
// the templates already emit and names that are not plain attribute tokens.
// Event handler attributes are never passed through.
func attrList(attrs map[string]string, reserved map[string]struct{}) []attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]attr, 0, len(attrs))
	for name, value := range attrs {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, skip := reserved[name]; skip || !validAttrName(name) || strings.HasPrefix(name, "on") {
			continue
		}
		out = append(out, attr{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == ':', r == '.':
		default:
			return false
		}
	}
	return true
}
