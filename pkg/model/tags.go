package model

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrRequiredTag rejects presence tags inside Validate; FieldConfig.Required
// owns that rule.
var ErrRequiredTag = errors.New("required belongs in the required key, not in validate")

var (
	tagCheckerOnce sync.Once
	tagChecker     *validator.Validate
)

// checkTag parses tag once so unknown validation functions surface as an
// error at load time. validator reports them by panicking.
func checkTag(tag string) (err error) {
	if tag == "" {
		return nil
	}
	for _, token := range strings.FieldsFunc(tag, func(r rune) bool { return r == ',' || r == '|' }) {
		name, _, _ := strings.Cut(strings.TrimSpace(token), "=")
		if strings.HasPrefix(name, "required") {
			return fmt.Errorf("validate %q: %w", tag, ErrRequiredTag)
		}
	}

	tagCheckerOnce.Do(func() {
		tagChecker = validator.New()
	})
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("validate %q: %v", tag, r)
		}
	}()
	_ = tagChecker.Var("", tag)
	return nil
}
