package normalize

import (
	"strings"

	"acnh_sheet_data/internal/record"
)

// Formatter converts the trimmed value of one column. rec is the row being
// normalized, already keyed by identifier but holding the raw cell values,
// for formatters that depend on sibling columns.
type Formatter func(v record.Value, rec record.Record) (record.Value, error)

var formatters = map[string]Formatter{
	"image":  imageURL,
	"house":  imageURL,
	"uses":   uses,
	"source": sourceList,
}

// FormatterFor returns the formatter registered for a field identifier.
func FormatterFor(id string) (Formatter, bool) {
	f, ok := formatters[id]
	return f, ok
}

const (
	imagePrefixLen = len(`=IMAGE("`)
	imageSuffixLen = len(`")`)
)

// imageURL strips the =IMAGE("...") wrapper from a formula cell.
func imageURL(v record.Value, _ record.Record) (record.Value, error) {
	s, ok := v.Str()
	if !ok {
		return v, nil
	}
	rs := []rune(s)
	if len(rs) < imagePrefixLen+imageSuffixLen {
		return record.String(""), nil
	}
	return record.String(string(rs[imagePrefixLen : len(rs)-imageSuffixLen])), nil
}

// uses maps the tool durability column to a number, with -1 for unlimited.
func uses(v record.Value, _ record.Record) (record.Value, error) {
	if _, ok := v.Num(); ok {
		return v, nil
	}
	if s, ok := v.Str(); ok {
		switch s {
		case "Unlimited":
			return record.Number(-1), nil
		case "9.5?":
			// the flimsy fishing rod is listed with a questionable 9.5 uses
			return record.Number(9.5), nil
		}
	}
	return record.Value{}, &UnexpectedValueError{Field: "uses", Value: v}
}

func sourceList(v record.Value, _ record.Record) (record.Value, error) {
	s, ok := v.Str()
	if !ok {
		return v, nil
	}
	return record.List(strings.Split(s, "\n")), nil
}
