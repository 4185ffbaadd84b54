// Package validation evaluates per-entity rule tables against request payloads.
//
// A rule is plain data: the wire field it reports under, a validator tag
// expression, the message shown to the client, and an accessor returning the
// value to check. One evaluator serves every entity.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/school-registry-api/pkg/errors"
)

// Rule constrains a single field of T.
type Rule[T any] struct {
	Field   string
	Tag     string
	Message string
	Value   func(T) any
}

// Validator wraps a shared validator instance.
type Validator struct {
	validate *validator.Validate
}

// New constructs a Validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Check evaluates rules in order and reports the first failing rule of each field.
// It returns nil when subject satisfies every rule.
func Check[T any](v *Validator, subject T, rules []Rule[T]) error {
	if v == nil {
		v = New()
	}
	var details []appErrors.FieldError
	failed := make(map[string]bool)
	for _, rule := range rules {
		if failed[rule.Field] {
			continue
		}
		err := v.validate.Var(rule.Value(subject), rule.Tag)
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("rule %s %q: %w", rule.Field, rule.Tag, err)
		}
		failed[rule.Field] = true
		details = append(details, appErrors.FieldError{Field: rule.Field, Message: rule.Message})
	}
	if len(details) > 0 {
		return appErrors.Validation(details)
	}
	return nil
}
