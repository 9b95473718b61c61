package jsonschema

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RegexpRule checks that a string matches a regular expression.
type RegexpRule struct {
	Regexp *regexp.Regexp
}

// Regexp returns a rule matching pattern. It panics if pattern does not compile.
func Regexp(pattern string) *RegexpRule {
	return Match(regexp.MustCompile(pattern))
}

// Match returns a rule matching re.
func Match(re *regexp.Regexp) *RegexpRule {
	return &RegexpRule{Regexp: re}
}

// Pattern returns the source text of the expression.
func (r *RegexpRule) Pattern() string {
	return r.Regexp.String()
}

// Validate checks if the given value is valid or not.
func (r *RegexpRule) Validate(value any) error {
	return validation.Match(r.Regexp).Validate(value)
}
