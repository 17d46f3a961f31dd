package handler

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	cases := []struct {
		raw  any
		kind reflect.Kind
		want any
		msg  string
	}{
		{" bob ", reflect.String, "bob", ""},
		{float64(12), reflect.String, "12", ""},
		{true, reflect.String, nil, "Not a valid string."},
		{"1.5", reflect.Float64, 1.5, ""},
		{"abc", reflect.Float64, nil, "A valid number is required."},
		{float64(15), reflect.Int, 15, ""},
		{"15.0", reflect.Int, 15, ""},
		{float64(1.5), reflect.Int, nil, "A valid integer is required."},
		{[]any{}, reflect.Int, nil, "A valid integer is required."},
		{"yes", reflect.Bool, true, ""},
		{float64(0), reflect.Bool, false, ""},
		{"maybe", reflect.Bool, nil, "Must be a valid boolean."},
	}
	for _, tc := range cases {
		value, msg := coerce(tc.raw, tc.kind)
		assert.Equal(t, tc.msg, msg, "%v as %s", tc.raw, tc.kind)
		if tc.msg == "" {
			assert.Equal(t, tc.want, value.Interface(), "%v as %s", tc.raw, tc.kind)
		}
	}
}

func TestJSONTypeName(t *testing.T) {
	assert.Equal(t, "list", jsonTypeName([]any{}))
	assert.Equal(t, "str", jsonTypeName("x"))
	assert.Equal(t, "bool", jsonTypeName(true))
}
