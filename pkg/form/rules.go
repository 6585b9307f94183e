package form

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-formkit/pkg/model"
)

// RequiredMessage is the message attached to a missing required value.
const RequiredMessage = "Required"

// InvalidMessage is the default message of a TagRule.
const InvalidMessage = "Invalid value"

const requiredTag = "required"

// Rule is a single validation constraint. Tag uses go-playground/validator
// syntax ("required", "email", "min=3", ...).
type Rule struct {
	Tag     string
	Message string
}

// RequiredRule reports message when the field has no value.
func RequiredRule(message string) Rule {
	if strings.TrimSpace(message) == "" {
		message = RequiredMessage
	}
	return Rule{Tag: requiredTag, Message: message}
}

// TagRule validates values with an arbitrary validator tag. Empty values are
// skipped so format rules compose with an optional field. A tag validator
// cannot parse fails the rule instead of panicking.
func TagRule(tag, message string) Rule {
	if strings.TrimSpace(message) == "" {
		message = InvalidMessage
	}
	return Rule{Tag: strings.TrimSpace(tag), Message: message}
}

func (r Rule) isRequired() bool {
	return r.Tag == requiredTag
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// check returns the message of the first violated rule.
func check(value model.Value, rules []Rule) (string, bool) {
	for _, rule := range rules {
		if rule.Tag == "" {
			continue
		}
		if !passes(value, rule) {
			return rule.Message, true
		}
	}
	return "", false
}

func passes(value model.Value, rule Rule) bool {
	switch value.Kind() {
	case model.KindNull:
		return !rule.isRequired()
	case model.KindNumber:
		// A parsed number is a value even when it is zero.
		if rule.isRequired() {
			return true
		}
		n, _ := value.Num()
		return validateVar(n, rule.Tag) == nil
	default:
		text, _ := value.Str()
		if text == "" && !rule.isRequired() {
			return true
		}
		return validateVar(text, rule.Tag) == nil
	}
}

// validateVar turns validator's panics on malformed tags into errors.
func validateVar(field any, tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("form: tag %q: %v", tag, r)
		}
	}()
	return validatorInstance().Var(field, tag)
}
