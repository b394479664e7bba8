// Package normalize turns raw spreadsheet rows into clean records: header
// labels become lowerCamelCase identifiers, cells are trimmed, run through
// per-column formatters and have sentinel strings replaced.
package normalize

import (
	"fmt"
	"strings"
	"unicode"

	"acnh_sheet_data/internal/catalog"
	"acnh_sheet_data/internal/record"

	"github.com/rs/zerolog/log"
)

var nullSentinels = map[string]struct{}{
	"None":                {},
	"NA":                  {},
	"Does not play music": {},
}

// Batch normalizes every raw row of a category. The result has the same
// length and order as raws. The first failing row aborts the whole batch.
func Batch(category catalog.Category, raws []record.Record) ([]record.Record, error) {
	log.Debug().
		Str("category", category.String()).
		Int("records", len(raws)).
		Msg("Normalizing batch")

	out := make([]record.Record, len(raws))
	for i, raw := range raws {
		rec, err := Row(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize %s record %d (sheet %q): %w",
				category, i, raw.SourceSheet(), err)
		}
		out[i] = rec
	}
	return out, nil
}

// Row normalizes a single raw row. raw is not modified.
func Row(raw record.Record) (record.Record, error) {
	keyed := keys(raw)

	var out record.Record
	for _, f := range keyed.Fields() {
		v, err := Value(f.Key, f.Value, keyed)
		if err != nil {
			return record.Record{}, err
		}
		out.Set(f.Key, v)
	}
	return out, nil
}

// keys renames every label to its identifier. When two labels share an
// identifier the later value wins at the earlier position.
func keys(raw record.Record) record.Record {
	var keyed record.Record
	seen := make(map[string]string, raw.Len())
	for _, f := range raw.Fields() {
		id := Key(f.Key)
		if !IsIdentifier(id) {
			log.Debug().
				Str("label", f.Key).
				Str("sheet", raw.SourceSheet()).
				Msg("Skipping column without a usable identifier")
			continue
		}
		if prev, ok := seen[id]; ok {
			log.Warn().
				Str("identifier", id).
				Str("label", f.Key).
				Str("previous_label", prev).
				Str("sheet", raw.SourceSheet()).
				Msg("Header labels collide, keeping the later value")
		}
		seen[id] = f.Key
		keyed.Set(id, f.Value)
	}
	return keyed
}

// Value normalizes one cell of the column identified by id:
// trim, column formatter, then null/boolean/not-for-sale sentinels.
// Sentinels only apply to values that are still strings after formatting.
func Value(id string, v record.Value, rec record.Record) (record.Value, error) {
	if s, ok := v.Str(); ok {
		v = record.String(strings.TrimFunc(s, isTrimmable))
	}

	if format, ok := FormatterFor(id); ok {
		var err error
		if v, err = format(v, rec); err != nil {
			return record.Value{}, err
		}
	}

	s, ok := v.Str()
	if !ok {
		return v, nil
	}
	if _, null := nullSentinels[s]; null || s == "" {
		return record.Null(), nil
	}
	switch s {
	case "Yes":
		return record.Bool(true), nil
	case "No":
		return record.Bool(false), nil
	case "NFS":
		return record.Number(-1), nil
	}
	return v, nil
}

// isTrimmable matches Unicode white space and the byte order mark. NEL
// (U+0085) is kept.
func isTrimmable(r rune) bool {
	return r == '\ufeff' || (unicode.IsSpace(r) && r != '\u0085')
}
