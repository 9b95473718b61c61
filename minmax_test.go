package jsonschema

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	minTests := []struct {
		min         any
		value       any
		expectError bool
	}{
		{min: 0, value: 1.0, expectError: false},
		{min: 0, value: 1, expectError: false},
		{min: 0, value: -1, expectError: true},
		{min: 0.5, value: 0, expectError: true}, // zero is checked, not skipped
		{min: 1, value: uint8(1), expectError: false},
		{min: 0, value: nil, expectError: false}, // skips nil
		{min: 0, value: "1", expectError: true},
		{min: 0, value: []int{1}, expectError: true},
		{min: 2, value: json.Number("1"), expectError: true},
	}
	for _, tt := range minTests {
		t.Run(fmt.Sprintf("min:%v,v:%v", tt.min, tt.value), func(t *testing.T) {
			r := Min(tt.min)
			err := r.Validate(tt.value)
			if tt.expectError {
				require.NotNil(t, err)
			} else {
				require.Nil(t, err)
			}
		})
	}

	maxTests := []struct {
		max         any
		value       any
		expectError bool
	}{
		{max: 2, value: 2, expectError: false},
		{max: 2, value: 3, expectError: true},
		{max: 2, value: 1.5, expectError: false},
		{max: 5.5, value: 5.6, expectError: true},
		{max: 5.5, value: 5.4, expectError: false},
		{max: 5.5, value: 5.5, expectError: false},
	}
	for _, tt := range maxTests {
		t.Run(fmt.Sprintf("max:%v,v:%v", tt.max, tt.value), func(t *testing.T) {
			r := Max(tt.max)
			err := r.Validate(tt.value)
			if tt.expectError {
				require.NotNil(t, err)
			} else {
				require.Nil(t, err)
			}
		})
	}
}

func TestRange_Messages(t *testing.T) {
	r := Range(1, 10)
	require.NoError(t, r.Validate(5))

	err := r.Validate(0)
	require.EqualError(t, err, "must be no less than 1")

	err = r.Validate(11)
	require.EqualError(t, err, "must be no greater than 10")

	err = Range("a", nil).Validate(1)
	require.Error(t, err)
}

func TestRange_Pointer(t *testing.T) {
	v := 3
	require.NoError(t, Range(1, 5).Validate(&v))
	var p *int
	require.NoError(t, Range(1, 5).Validate(p))
}

func TestBound(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{nil, 0, false},
		{0, 0, false},
		{0.0, 0, false},
		{3, 3, true},
		{-2.5, -2.5, true},
		{uint16(7), 7, true},
		{"7", 0, false},
	}
	for _, tt := range tests {
		got, ok := bound(tt.in)
		require.Equal(t, tt.ok, ok, "%v", tt.in)
		require.Equal(t, tt.want, got, "%v", tt.in)
	}
}
