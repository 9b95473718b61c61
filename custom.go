package jsonschema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PredicateRule accepts values for which its function returns true. It has
// no JSON Schema counterpart and is never translated.
type PredicateRule struct {
	fn  func(any) bool
	err validation.Error
}

// Predicate returns a rule that rejects values for which fn returns false,
// reporting message.
func Predicate(fn func(any) bool, message string) *PredicateRule {
	return &PredicateRule{
		fn:  fn,
		err: validation.NewError("validation_predicate", message),
	}
}

// Validate checks if the given value is valid or not.
func (r *PredicateRule) Validate(value any) error {
	if r.fn(value) {
		return nil
	}
	return r.err
}
