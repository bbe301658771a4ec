package value

import (
	"encoding/json"
	"math"
	"testing"
)

func TestTypeName(t *testing.T) {
	cases := []struct {
		v    any
		want string
	}{
		{nil, "null"},
		{true, "boolean"},
		{"x", "string"},
		{1.0, "integer"},
		{1.5, "number"},
		{json.Number("3"), "integer"},
		{json.Number("3.25"), "number"},
		{int64(7), "integer"},
		{[]any{}, "array"},
		{map[string]any{}, "object"},
		{math.NaN(), "invalid"},
		{struct{}{}, "invalid"},
	}
	for _, c := range cases {
		if got := TypeName(c.v); got != c.want {
			t.Fatalf("TypeName(%v)=%q want %q", c.v, got, c.want)
		}
	}
}

func TestEqual_NumbersByValue(t *testing.T) {
	if !Equal(1, 1.0) {
		t.Fatalf("1 and 1.0 must be equal")
	}
	if !Equal(json.Number("0.1"), 0.1) {
		t.Fatalf("json.Number 0.1 must equal float 0.1")
	}
	if Equal(1, "1") {
		t.Fatalf("number and string must differ")
	}
	if Equal(false, 0) {
		t.Fatalf("false and 0 must differ")
	}
}

func TestEqual_Nested(t *testing.T) {
	a := map[string]any{"a": []any{1.0, map[string]any{"b": nil}}}
	b := map[string]any{"a": []any{json.Number("1"), map[string]any{"b": nil}}}
	if !Equal(a, b) {
		t.Fatalf("expected deep equality")
	}
	c := map[string]any{"a": []any{1.0, map[string]any{"b": false}}}
	if Equal(a, c) {
		t.Fatalf("expected inequality")
	}
}

func TestNonNegativeInt(t *testing.T) {
	if n, ok := NonNegativeInt(2.0); !ok || n != 2 {
		t.Fatalf("2.0 should be accepted, got %d %v", n, ok)
	}
	if _, ok := NonNegativeInt(-1); ok {
		t.Fatalf("-1 must be rejected")
	}
	if _, ok := NonNegativeInt(1.5); ok {
		t.Fatalf("1.5 must be rejected")
	}
}
