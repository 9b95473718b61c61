package jsonschema

import (
	"math"
	"reflect"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

var (
	// ErrNotString is returned when a string node is given another kind of value.
	ErrNotString = validation.NewError("validation_is_string", "must be a string")
	// ErrNotNumber is returned when a number node is given a non-numeric value.
	ErrNotNumber = validation.NewError("validation_is_number", "must be a number")
	// ErrNotInteger is returned when an integer node is given a non-integral value.
	ErrNotInteger = validation.NewError("validation_is_integer", "must be an integer")
	// ErrNotBoolean is returned when a boolean node is given another kind of value.
	ErrNotBoolean = validation.NewError("validation_is_boolean", "must be a boolean")
	// ErrNotObject is returned when an object node is given anything but a string-keyed map.
	ErrNotObject = validation.NewError("validation_is_object", "must be an object")
	// ErrTupleLength is returned when a tuple value has the wrong number of elements.
	ErrTupleLength = validation.NewError("validation_tuple_length", "must have exactly {{.length}} elements")
)

// Validate checks value against the schema node n. Values are expected in
// the shape encoding/json decodes into: string-keyed maps for objects,
// slices for lists and tuples, and scalars.
//
// The node's type is checked first, then its validators run in order, then
// list elements, tuple positions and object fields are validated
// recursively. Failures inside containers are reported as
// [validation.Errors] keyed by index or field name. A null value is only
// accepted by Any and Optional nodes.
func Validate(n Node, value any) error {
	return validateNode(n, value)
}

func validateNode(n Node, value any) error { //nolint:revive // one branch per variant
	if isNil(n) {
		return errors.Wrap(ErrNilNode, "validate")
	}
	b := n.schemaBase()

	switch n.(type) {
	case *AnyType:
		return validateRules(value, b.Validators)
	case *OptionalType:
		if isNilValue(value) {
			return nil
		}
	}

	if w, ok := n.(Wrapper); ok {
		if err := validateNode(w.Inner(), value); err != nil {
			return err
		}
		return validateRules(value, b.Validators)
	}

	if isNilValue(value) {
		return validation.ErrRequired
	}
	rv := reflect.Indirect(reflect.ValueOf(value))

	switch n := n.(type) {
	case *StringType:
		if rv.Kind() != reflect.String {
			return ErrNotString
		}
	case *IntegerType:
		f, err := getFloat(value)
		if err != nil {
			return ErrNotNumber
		}
		if f != math.Trunc(f) {
			return ErrNotInteger
		}
	case *NumberType:
		if _, err := getFloat(value); err != nil {
			return ErrNotNumber
		}
	case *BooleanType:
		if rv.Kind() != reflect.Bool {
			return ErrNotBoolean
		}
	case *ListType:
		if !isSequence(rv) {
			return ErrNotList
		}
		if err := validateRules(value, b.Validators); err != nil {
			return err
		}
		return validateSlice(rv, func(int) Node { return n.ItemType })
	case *TupleType:
		if !isSequence(rv) {
			return ErrNotList
		}
		if rv.Len() != len(n.ItemTypes) {
			return ErrTupleLength.SetParams(map[string]any{"length": len(n.ItemTypes)})
		}
		if err := validateRules(value, b.Validators); err != nil {
			return err
		}
		return validateSlice(rv, func(i int) Node { return n.ItemTypes[i] })
	case *ObjectType:
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return ErrNotObject
		}
		if err := validateRules(value, b.Validators); err != nil {
			return err
		}
		return validateFields(n, rv)
	}

	return validateRules(value, b.Validators)
}

// validateRules applies validators to a single value, stopping at the first failure.
func validateRules(value any, validators []Validator) error {
	for _, v := range validators {
		if err := v.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

func validateSlice(rv reflect.Value, itemType func(int) Node) error {
	errs := validation.Errors{}
	for i := 0; i < rv.Len(); i++ {
		if err := validateNode(itemType(i), rv.Index(i).Interface()); err != nil {
			errs[strconv.Itoa(i)] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateFields(o *ObjectType, rv reflect.Value) error {
	if o.Fields == nil {
		return nil
	}
	errs := validation.Errors{}
	for pair := o.Fields.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil || isNil(pair.Value.FieldType) {
			errs[pair.Key] = errors.Wrapf(ErrNilNode, "validate field %s", pair.Key)
			continue
		}
		ft := pair.Value.FieldType
		fv := rv.MapIndex(reflect.ValueOf(pair.Key).Convert(rv.Type().Key()))
		if !fv.IsValid() {
			if _, optional := ft.(*OptionalType); !optional {
				errs[pair.Key] = validation.ErrRequired
			}
			continue
		}
		if err := validateNode(ft, fv.Interface()); err != nil {
			errs[pair.Key] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isSequence(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

func isNilValue(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
