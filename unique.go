package jsonschema

import (
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrNotUnique is returned when a list holds two elements with the same key.
	ErrNotUnique = validation.NewError("validation_unique", "must contain unique elements")
	// ErrNotList is returned when a uniqueness check is applied to a non-list.
	ErrNotList = validation.NewError("validation_is_list", "must be a list")
)

// KeyExtractor selects what a [UniqueRule] compares. The zero value is
// [WholeElement].
type KeyExtractor struct {
	fn func(any) any
}

// WholeElement compares list elements as a whole.
var WholeElement = KeyExtractor{}

// KeyFunc compares list elements by the key fn returns for them.
func KeyFunc(fn func(any) any) KeyExtractor {
	return KeyExtractor{fn: fn}
}

// IsWholeElement reports whether elements are compared as a whole.
func (k KeyExtractor) IsWholeElement() bool {
	return k.fn == nil
}

func (k KeyExtractor) extract(v any) any {
	if k.fn == nil {
		return v
	}
	return k.fn(v)
}

// UniqueRule checks that no two list elements share a key.
type UniqueRule struct {
	Key KeyExtractor
}

// Unique returns a rule that checks that all list elements are distinct.
func Unique() *UniqueRule {
	return &UniqueRule{Key: WholeElement}
}

// UniqueBy returns a rule that checks that fn yields a distinct key for
// every list element.
func UniqueBy(fn func(any) any) *UniqueRule {
	return &UniqueRule{Key: KeyFunc(fn)}
}

// Validate checks if the given value is valid or not.
func (r *UniqueRule) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil
	}

	rv = reflect.Indirect(rv)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		m := make(map[any]struct{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			m[hashable(r.Key.extract(rv.Index(i).Interface()))] = struct{}{}
		}
		if len(m) != rv.Len() {
			return ErrNotUnique
		}
	default:
		return ErrNotList
	}
	return nil
}

// hashable returns k itself when it can be a map key, or its Go-syntax
// representation otherwise. Comparability is checked on the value, since a
// comparable struct or array may still hold an unhashable interface value.
func hashable(k any) any {
	if k == nil || reflect.ValueOf(k).Comparable() {
		return k
	}
	return fmt.Sprintf("%T:%#v", k, k)
}
