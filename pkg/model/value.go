package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind discriminates the variants of Value.
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "null"
	}
}

// Value is the reported value of a field: a string, a number or null. The
// zero Value is null.
type Value struct {
	kind ValueKind
	str  string
	num  float64
}

// String wraps s as a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps f as a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Null returns the "no value" variant.
func Null() Value {
	return Value{}
}

// ValueOf converts decoded JSON/YAML scalars into a Value. Unsupported types
// are formatted with fmt and stored as strings.
func ValueOf(v any) Value {
	switch typed := v.(type) {
	case nil:
		return Null()
	case Value:
		return typed
	case string:
		return String(typed)
	case float64:
		return Number(typed)
	case float32:
		return Number(float64(typed))
	case int:
		return Number(float64(typed))
	case int64:
		return Number(float64(typed))
	case int32:
		return Number(float64(typed))
	case uint64:
		return Number(float64(typed))
	case json.Number:
		if f, err := typed.Float64(); err == nil {
			return Number(f)
		}
		return String(typed.String())
	default:
		return String(fmt.Sprint(typed))
	}
}

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload when v is a string.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Num returns the numeric payload when v is a number.
func (v Value) Num() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Text renders v for display. Null renders as the empty string; numbers use
// the shortest decimal representation that round-trips.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	default:
		return ""
	}
}

// Interface returns the Go value carried by v (string, float64 or nil).
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	default:
		return nil
	}
}

// Equal compares kinds and payloads.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	default:
		return true
	}
}

func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return "model.String(" + strconv.Quote(v.str) + ")"
	case KindNumber:
		return "model.Number(" + formatNumber(v.num) + ")"
	default:
		return "model.Null()"
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = ValueOf(raw)
	return nil
}

func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	out := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.HasPrefix(out, "-0") && f == 0 {
		return "0"
	}
	return out
}
