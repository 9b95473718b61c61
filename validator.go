package jsonschema

// Validator is a rule attached to a schema node. Any ozzo-validation rule
// satisfies it. The translator understands [*LengthRule], [*RegexpRule],
// [*RangeRule] and [*UniqueRule]; other validators only take part in
// [Validate].
type Validator interface {
	Validate(value any) error
}

// validatorsOf returns the validators of concrete type V, in attachment order.
func validatorsOf[V Validator](validators []Validator) []V {
	var out []V
	for _, v := range validators {
		if match, ok := v.(V); ok {
			out = append(out, match)
		}
	}
	return out
}
