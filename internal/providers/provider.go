package providers

import (
	"context"
	"fmt"

	"acnh_sheet_data/internal/cache"
	"acnh_sheet_data/internal/catalog"
	"acnh_sheet_data/internal/record"
	"acnh_sheet_data/internal/sheets"

	"github.com/rs/zerolog/log"
)

// Provider supplies the raw rows of a category, from the local cache when
// present and from the spreadsheet otherwise.
type Provider struct {
	reader        sheets.Reader
	cache         *cache.Store
	spreadsheetID string
}

func NewProvider(reader sheets.Reader, store *cache.Store, spreadsheetID string) *Provider {
	return &Provider{
		reader:        reader,
		cache:         store,
		spreadsheetID: spreadsheetID,
	}
}

// Load returns the raw rows of category. On a cache miss every tab of the
// category is fetched and the cache file is written before returning.
func (p *Provider) Load(ctx context.Context, category catalog.Category) ([]record.Record, error) {
	records, ok, err := p.cache.Load(category)
	if err != nil {
		return nil, err
	}
	if ok {
		log.Debug().
			Str("category", category.String()).
			Str("path", p.cache.Path(category)).
			Int("records", len(records)).
			Msg("Loaded raw rows from cache")
		return records, nil
	}

	log.Debug().
		Str("category", category.String()).
		Strs("sheets", category.Tabs()).
		Msg("Cache miss, fetching sheets")

	records, err = sheets.FetchTabs(ctx, p.reader, p.spreadsheetID, category.Tabs())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", category, err)
	}

	if err := p.cache.Save(category, records); err != nil {
		return nil, err
	}
	log.Debug().
		Str("category", category.String()).
		Int("records", len(records)).
		Msg("Cached raw rows")
	return records, nil
}
