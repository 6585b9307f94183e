// Package normalize shapes raw input text into the value reported to a form
// store and shapes stored values back into the text shown by an input. Both
// directions are pure and total: malformed input never panics and never
// produces an invalid number.
package normalize

import (
	"strings"

	"github.com/goliatone/go-formkit/pkg/model"
)

// ForReport converts the text typed into an input into the value handed to
// the form store. Number fields with non-empty text report the parsed number;
// text that does not parse is reported unchanged. Empty text always reports
// the empty string.
func ForReport(raw string, fieldType model.FieldType, trim bool) model.Value {
	text := raw
	if trim {
		text = strings.TrimSpace(text)
	}
	if text == "" || fieldType != model.FieldTypeNumber {
		return model.String(text)
	}

	result := ParseNumber(text)
	if n, ok := result.Number(); ok {
		return model.Number(n)
	}
	return model.String(result.Text())
}

// ForDisplay converts a stored value into the text rendered by the input.
// Dates keep the calendar portion, datetimes lose second precision when a
// fractional-seconds component is present, every other type is unchanged.
func ForDisplay(stored model.Value, fieldType model.FieldType) string {
	text := stored.Text()
	if text == "" {
		return ""
	}

	switch fieldType {
	case model.FieldTypeDatetime:
		return truncateDatetime(text)
	case model.FieldTypeDate:
		return truncateDate(text)
	default:
		return text
	}
}

// truncateDatetime drops ":ss" when the value carries exactly one fractional
// seconds marker ("2024-03-01T10:30:00.000" -> "2024-03-01T10:30").
func truncateDatetime(text string) string {
	parts := strings.Split(text, ".")
	if len(parts) != 2 {
		return text
	}
	head := parts[0]
	if len(head) < len(":ss") {
		return ""
	}
	return head[:len(head)-len(":ss")]
}

func truncateDate(text string) string {
	date, _, _ := strings.Cut(text, "T")
	return date
}
