// Package output writes the generated data files.
package output

import (
	"fmt"
	"path/filepath"

	"acnh_sheet_data/internal/catalog"
	"acnh_sheet_data/internal/record"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const indent = " "

type Writer struct {
	fs  afero.Fs
	dir string
}

func NewWriter(fs afero.Fs, dir string) *Writer {
	return &Writer{fs: fs, dir: dir}
}

// RawPath is where the unnormalized rows of a category are dumped.
func (w *Writer) RawPath(category catalog.Category) string {
	return filepath.Join(w.dir, category.String()+"-raw.json")
}

func (w *Writer) Path(category catalog.Category) string {
	return filepath.Join(w.dir, category.String()+".json")
}

func (w *Writer) WriteRaw(category catalog.Category, records []record.Record) error {
	return w.write(w.RawPath(category), records)
}

func (w *Writer) WriteNormalized(category catalog.Category, records []record.Record) error {
	return w.write(w.Path(category), records)
}

func (w *Writer) write(path string, records []record.Record) error {
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := record.Encode(records, indent)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := afero.WriteFile(w.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("records", len(records)).
		Int("bytes", len(data)).
		Msg("Wrote data file")
	return nil
}
