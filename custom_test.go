package jsonschema_test

import (
	"testing"

	js "github.com/Gobd/jsonschema"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/require"
)

func TestPredicate(t *testing.T) {
	even := js.Predicate(func(v any) bool {
		n, ok := v.(int)
		return ok && n%2 == 0
	}, "must be even")

	require.NoError(t, even.Validate(4))
	require.EqualError(t, even.Validate(3), "must be even")

	var verr validation.Error
	require.ErrorAs(t, even.Validate(3), &verr)
	require.Equal(t, "validation_predicate", verr.Code())
}

func TestOzzoRuleAsValidator(t *testing.T) {
	n := js.String(validation.In("a", "b"))
	require.NoError(t, js.Validate(n, "a"))
	require.Error(t, js.Validate(n, "c"))
	require.Equal(t, `{"type":"string"}`, js.MustTranslate(n).String())
}
