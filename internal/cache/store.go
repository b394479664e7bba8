// Package cache keeps the raw rows of each category on disk so reruns do not
// hit the spreadsheet.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"acnh_sheet_data/internal/catalog"
	"acnh_sheet_data/internal/record"

	"github.com/spf13/afero"
)

const indent = "  "

type Store struct {
	fs  afero.Fs
	dir string
}

func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// Path is the cache file of a category, e.g. cache/items.json.
func (s *Store) Path(category catalog.Category) string {
	return filepath.Join(s.dir, category.String()+".json")
}

// Load returns the cached rows of category. A missing file is a miss, not an
// error; a file that cannot be parsed is an error.
func (s *Store) Load(category catalog.Category) ([]record.Record, bool, error) {
	path := s.Path(category)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache file %s: %w", path, err)
	}

	records, err := record.Decode(data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse cache file %s: %w", path, err)
	}
	return records, true, nil
}

// Save replaces the cache file of category.
func (s *Store) Save(category catalog.Category, records []record.Record) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := record.Encode(records, indent)
	if err != nil {
		return fmt.Errorf("failed to encode %s cache: %w", category, err)
	}

	path := s.Path(category)
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file %s: %w", path, err)
	}
	return nil
}
