package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Encode renders records as a JSON array, indented with indent. Arrays are
// always expanded one element per line and there is no trailing newline. An
// empty indent produces compact output.
func Encode(records []Record, indent string) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}

	if indent == "" {
		return data, nil
	}
	// Width 0 keeps short arrays from collapsing onto one line
	out := pretty.PrettyOptions(data, &pretty.Options{Indent: indent})
	return bytes.TrimSuffix(out, []byte("\n")), nil
}

// Decode parses a JSON array of flat objects, keeping each object's key order.
func Decode(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("expected a JSON array, got %s", root.Type)
	}

	var (
		records []Record
		err     error
	)
	root.ForEach(func(_, item gjson.Result) bool {
		var r Record
		r, err = decodeObject(item)
		if err != nil {
			err = fmt.Errorf("record %d: %w", len(records), err)
			return false
		}
		records = append(records, r)
		return true
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func decodeObject(obj gjson.Result) (Record, error) {
	var r Record
	if !obj.IsObject() {
		return r, fmt.Errorf("expected an object, got %s", obj.Type)
	}
	var err error
	obj.ForEach(func(key, val gjson.Result) bool {
		var v Value
		v, err = decodeValue(val)
		if err != nil {
			err = fmt.Errorf("field %q: %w", key.String(), err)
			return false
		}
		r.Set(key.String(), v)
		return true
	})
	return r, err
}

func decodeValue(val gjson.Result) (Value, error) {
	switch val.Type {
	case gjson.Null:
		return Null(), nil
	case gjson.String:
		return String(val.Str), nil
	case gjson.Number:
		// go through json.Number so values like 1e400 are rejected rather than
		// silently turned into +Inf
		return FromCell(json.Number(val.Raw))
	case gjson.True:
		return Bool(true), nil
	case gjson.False:
		return Bool(false), nil
	}

	if !val.IsArray() {
		return Value{}, fmt.Errorf("nested objects are not supported")
	}
	var (
		items []string
		err   error
	)
	val.ForEach(func(_, item gjson.Result) bool {
		if item.Type != gjson.String {
			err = fmt.Errorf("list items must be strings, got %s", item.Type)
			return false
		}
		items = append(items, item.Str)
		return true
	})
	if err != nil {
		return Value{}, err
	}
	if items == nil {
		items = []string{}
	}
	return List(items), nil
}
