package record

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a single cell, either as read from the sheet or after normalization.
// The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	list []string
}

func Null() Value { return Value{} }

func String(s string) Value { return Value{kind: KindString, str: s} }

func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// List copies items so the caller's slice can be reused.
func List(items []string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload and whether v is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Num returns the numeric payload and whether v is a number.
func (v Value) Num() (float64, bool) { return v.num, v.kind == KindNumber }

// Bool returns the boolean payload and whether v is a boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// List returns a copy of the list payload and whether v is a list.
func (v Value) List() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	cp := make([]string, len(v.list))
	copy(cp, v.list)
	return cp, true
}

// Equal reports whether both values hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
	}
	return true
}

func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("String(%q)", v.str)
	case KindNumber:
		return fmt.Sprintf("Number(%v)", v.num)
	case KindBool:
		return fmt.Sprintf("Bool(%v)", v.b)
	case KindList:
		return fmt.Sprintf("List(%q)", v.list)
	default:
		return "Null()"
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindList:
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

// FromCell converts a cell as returned by the Sheets API into a Value.
// The API only produces strings, float64 and bool; nil is an empty cell.
func FromCell(cell interface{}) (Value, error) {
	switch c := cell.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(c), nil
	case float64:
		return Number(c), nil
	case int:
		return Number(float64(c)), nil
	case int64:
		return Number(float64(c)), nil
	case bool:
		return Bool(c), nil
	case json.Number:
		f, err := c.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid numeric cell %q: %w", c.String(), err)
		}
		return Number(f), nil
	default:
		return Value{}, fmt.Errorf("unsupported cell type %T", cell)
	}
}
