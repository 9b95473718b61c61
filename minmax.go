package jsonschema

import (
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

// RangeRule bounds a numeric value. A nil bound is unbounded. Bounds may be
// any value convertible to float64.
type RangeRule struct {
	Min, Max any
}

// Range returns a rule that checks if a value is within [lo, hi].
func Range(lo, hi any) *RangeRule {
	return &RangeRule{Min: lo, Max: hi}
}

// Min returns a validation rule that checks if a value is greater than or equal to the specified minimum.
func Min(threshold any) *RangeRule {
	return &RangeRule{Min: threshold}
}

// Max returns a validation rule that checks if a value is less than or equal to the specified maximum.
func Max(threshold any) *RangeRule {
	return &RangeRule{Max: threshold}
}

// Validate checks if the given value is valid or not. Both the value and
// the bounds are compared as float64, so an int field may carry float bounds
// and zero is checked like any other value.
func (r *RangeRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	f, err := getFloat(value)
	if err != nil {
		return err
	}
	if r.Min != nil {
		lo, err := getFloat(r.Min)
		if err != nil {
			return err
		}
		if f < lo {
			return validation.ErrMinGreaterEqualThanRequired.SetParams(map[string]any{"threshold": r.Min})
		}
	}
	if r.Max != nil {
		hi, err := getFloat(r.Max)
		if err != nil {
			return err
		}
		if f > hi {
			return validation.ErrMaxLessEqualThanRequired.SetParams(map[string]any{"threshold": r.Max})
		}
	}
	return nil
}

// bound converts a range bound for translation. Unset, unconvertible and
// zero bounds all report false.
func bound(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	f, err := getFloat(v)
	if err != nil || f == 0 {
		return 0, false
	}
	return f, true
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	v := reflect.ValueOf(unk)
	v = reflect.Indirect(v)
	if !v.IsValid() {
		return 0, errors.Errorf("cannot convert %v to float64", unk)
	}
	if v.Kind() == reflect.String || !v.Type().ConvertibleTo(floatType) {
		return 0, errors.Errorf("cannot convert %v to float64", v.Type())
	}
	fv := v.Convert(floatType)
	return fv.Float(), nil
}
