// Package record holds the ordered, typed rows that flow from the spreadsheet
// to the output files.
package record

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SourceSheetKey is the provenance field injected into every raw row.
const SourceSheetKey = "SourceSheet"

// Field is one key/value pair of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record is an insertion-ordered mapping of keys to values. Copies of a
// Record share their fields.
type Record struct {
	m *orderedmap.OrderedMap[string, Value]
}

// New builds a record from fields, applying Set in order.
func New(fields ...Field) Record {
	r := Record{m: orderedmap.New[string, Value](len(fields))}
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}
	return r
}

// Set assigns key. A key that is already present keeps its position and
// takes the new value; the return value reports whether that happened.
func (r *Record) Set(key string, v Value) bool {
	if r.m == nil {
		r.m = orderedmap.New[string, Value]()
	}
	_, replaced := r.m.Set(key, v)
	return replaced
}

func (r Record) Get(key string) (Value, bool) {
	if r.m == nil {
		return Value{}, false
	}
	return r.m.Get(key)
}

func (r Record) Len() int {
	if r.m == nil {
		return 0
	}
	return r.m.Len()
}

func (r Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	for _, f := range r.Fields() {
		keys = append(keys, f.Key)
	}
	return keys
}

// Fields returns the fields in order.
func (r Record) Fields() []Field {
	fields := make([]Field, 0, r.Len())
	if r.m == nil {
		return fields
	}
	for pair := r.m.Oldest(); pair != nil; pair = pair.Next() {
		fields = append(fields, Field{Key: pair.Key, Value: pair.Value})
	}
	return fields
}

// SourceSheet returns the originating tab name, if the record carries one.
func (r Record) SourceSheet() string {
	for _, key := range []string{SourceSheetKey, "sourceSheet"} {
		if v, ok := r.Get(key); ok {
			if s, ok := v.Str(); ok {
				return s
			}
		}
	}
	return ""
}

func (r Record) MarshalJSON() ([]byte, error) {
	if r.m == nil {
		return []byte("{}"), nil
	}
	return r.m.MarshalJSON()
}
