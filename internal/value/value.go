// Package value gives the evaluator a uniform read-only view over JSON-like Go
// values: nil, bool, string, float64, json.Number, Go integer/float kinds,
// map[string]any and []any.
package value

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
)

// Kind is the JSON type of a value.
type Kind int

const (
	Invalid Kind = iota
	Null
	Boolean
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// numberLiteral matches json.Number and look-alike types from other decoders.
type numberLiteral interface {
	String() string
	Float64() (float64, error)
	Int64() (int64, error)
}

// KindOf classifies v. Unsupported Go types report Invalid.
func KindOf(v any) Kind {
	switch t := v.(type) {
	case nil:
		return Null
	case bool:
		return Boolean
	case string:
		return String
	case map[string]any:
		return Object
	case []any:
		return Array
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return Invalid
		}
		return Number
	case float32:
		if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
			return Invalid
		}
		return Number
	case json.Number, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Number
	case numberLiteral:
		return Number
	default:
		return Invalid
	}
}

// TypeName returns the JSON Schema type name of v; integral numbers report
// "integer".
func TypeName(v any) string {
	k := KindOf(v)
	if k == Number && IsInteger(v) {
		return "integer"
	}
	return k.String()
}

// Rat converts a numeric value to an exact rational. Floats go through their
// shortest decimal representation so 0.1 compares as one tenth.
func Rat(v any) (*big.Rat, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, false
		}
		return new(big.Rat).SetString(strconv.FormatFloat(t, 'g', -1, 64))
	case float32:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 32))
	case int:
		return new(big.Rat).SetInt64(int64(t)), true
	case int8:
		return new(big.Rat).SetInt64(int64(t)), true
	case int16:
		return new(big.Rat).SetInt64(int64(t)), true
	case int32:
		return new(big.Rat).SetInt64(int64(t)), true
	case int64:
		return new(big.Rat).SetInt64(t), true
	case uint:
		return new(big.Rat).SetUint64(uint64(t)), true
	case uint8:
		return new(big.Rat).SetUint64(uint64(t)), true
	case uint16:
		return new(big.Rat).SetUint64(uint64(t)), true
	case uint32:
		return new(big.Rat).SetUint64(uint64(t)), true
	case uint64:
		return new(big.Rat).SetUint64(t), true
	case json.Number:
		return new(big.Rat).SetString(string(t))
	case numberLiteral:
		return new(big.Rat).SetString(t.String())
	default:
		return nil, false
	}
}

// IsInteger reports whether v is a number without a fractional part.
func IsInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	r, ok := Rat(v)
	return ok && r.IsInt()
}

// NonNegativeInt reads a keyword value that must be a non-negative integer
// (2.0 is accepted).
func NonNegativeInt(v any) (int, bool) {
	r, ok := Rat(v)
	if !ok || !r.IsInt() || r.Sign() < 0 {
		return 0, false
	}
	n := r.Num()
	if !n.IsInt64() || n.Int64() > math.MaxInt32 {
		return math.MaxInt32, true
	}
	return int(n.Int64()), true
}

// Equal is JSON equality: numbers compare by value, objects by key set and
// arrays element-wise.
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case Null:
		return true
	case Boolean:
		return a.(bool) == b.(bool)
	case String:
		return a.(string) == b.(string)
	case Number:
		ra, _ := Rat(a)
		rb, _ := Rat(b)
		return ra != nil && rb != nil && ra.Cmp(rb) == 0
	case Array:
		xa, xb := a.([]any), b.([]any)
		if len(xa) != len(xb) {
			return false
		}
		for i := range xa {
			if !Equal(xa[i], xb[i]) {
				return false
			}
		}
		return true
	case Object:
		ma, mb := a.(map[string]any), b.(map[string]any)
		if len(ma) != len(mb) {
			return false
		}
		for k, va := range ma {
			vb, ok := mb[k]
			if !ok || !Equal(va, vb) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
