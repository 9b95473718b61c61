package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnique(t *testing.T) {
	r := Unique()
	assert.True(t, r.Key.IsWholeElement())

	require.NoError(t, r.Validate([]int{1, 2, 3}))
	require.Equal(t, ErrNotUnique, r.Validate([]int{1, 2, 1}))
	require.NoError(t, r.Validate([2]string{"a", "b"}))
	require.NoError(t, r.Validate(nil))
	require.NoError(t, r.Validate((*[]int)(nil)))
	require.Equal(t, ErrNotList, r.Validate("abc"))
}

func TestUnique_Uncomparable(t *testing.T) {
	r := Unique()
	require.NoError(t, r.Validate([]any{[]int{1}, []int{2}}))
	require.Equal(t, ErrNotUnique, r.Validate([]any{map[string]any{"a": 1}, map[string]any{"a": 1}}))

	type boxed struct{ v any }
	byBox := UniqueBy(func(v any) any { return boxed{v} })
	require.NoError(t, byBox.Validate([]any{[]any{1}, []any{2}}))
	require.Equal(t, ErrNotUnique, byBox.Validate([]any{[]any{1}, []any{1}}))
	require.NoError(t, byBox.Validate([]any{"a", "b"}))

	arr := UniqueBy(func(v any) any { return [1]any{v} })
	require.Equal(t, ErrNotUnique, arr.Validate([]any{map[string]any{"a": 1}, map[string]any{"a": 1}}))
}

func TestUniqueBy(t *testing.T) {
	r := UniqueBy(func(v any) any { return v.(map[string]any)["id"] })
	assert.False(t, r.Key.IsWholeElement())

	require.NoError(t, r.Validate([]any{
		map[string]any{"id": 1, "name": "a"},
		map[string]any{"id": 2, "name": "a"},
	}))
	err := r.Validate([]any{
		map[string]any{"id": 1, "name": "a"},
		map[string]any{"id": 1, "name": "b"},
	})
	require.Equal(t, ErrNotUnique, err)
}
