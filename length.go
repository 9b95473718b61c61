package jsonschema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LengthRule bounds the rune length of a string or the element count of a
// list. Zero means unbounded for every field. Exact, when set, takes
// precedence over both Min and Max.
type LengthRule struct {
	Min, Max, Exact int
}

// Length returns a rule that checks if a length is within [lo, hi].
func Length(lo, hi int) *LengthRule {
	return &LengthRule{Min: lo, Max: hi}
}

// ExactLength returns a rule that checks if a length is exactly n.
func ExactLength(n int) *LengthRule {
	return &LengthRule{Exact: n}
}

// lower returns the effective lower bound, zero if unbounded.
func (r *LengthRule) lower() int {
	if r.Exact != 0 {
		return r.Exact
	}
	return r.Min
}

// upper returns the effective upper bound, zero if unbounded.
func (r *LengthRule) upper() int {
	if r.Exact != 0 {
		return r.Exact
	}
	return r.Max
}

// Validate checks if the given value is valid or not.
func (r *LengthRule) Validate(value any) error {
	return validation.RuneLength(r.lower(), r.upper()).Validate(value)
}
