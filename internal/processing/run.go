package processing

import (
	"context"
	"fmt"
	"time"

	"acnh_sheet_data/internal/catalog"
	"acnh_sheet_data/internal/normalize"
	"acnh_sheet_data/internal/output"
	"acnh_sheet_data/internal/record"

	"github.com/rs/zerolog/log"
)

// Loader supplies the raw rows of a category.
type Loader interface {
	Load(ctx context.Context, category catalog.Category) ([]record.Record, error)
}

// Exporter receives the normalized records of each category after they are
// written to disk.
type Exporter interface {
	Export(ctx context.Context, category catalog.Category, records []record.Record) error
}

// ProcessAll handles every category in order and stops at the first error;
// categories after a failing one are not touched.
func ProcessAll(ctx context.Context, loader Loader, writer *output.Writer, exporter Exporter, categories []catalog.Category) error {
	start := time.Now()
	for _, category := range categories {
		if err := ProcessCategory(ctx, loader, writer, exporter, category); err != nil {
			return err
		}
	}
	log.Info().
		Int("categories", len(categories)).
		Dur("elapsed", time.Since(start)).
		Msg("All categories finished")
	return nil
}

// ProcessCategory loads the raw rows of one category, dumps them, normalizes
// them and writes the result. exporter may be nil.
func ProcessCategory(ctx context.Context, loader Loader, writer *output.Writer, exporter Exporter, category catalog.Category) error {
	log.Info().Str("category", category.String()).Msg("Loading category")
	raws, err := loader.Load(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", category, err)
	}

	log.Info().
		Str("category", category.String()).
		Int("records", len(raws)).
		Msg("Writing raw file to disk")
	if err := writer.WriteRaw(category, raws); err != nil {
		return err
	}

	log.Info().Str("category", category.String()).Msg("Normalizing data")
	records, err := normalize.Batch(category, raws)
	if err != nil {
		return err
	}

	log.Info().Str("category", category.String()).Msg("Writing data to disk")
	if err := writer.WriteNormalized(category, records); err != nil {
		return err
	}

	if exporter != nil {
		if err := exporter.Export(ctx, category, records); err != nil {
			return fmt.Errorf("failed to export %s: %w", category, err)
		}
	}

	log.Info().
		Str("category", category.String()).
		Int("records", len(records)).
		Msg("Finished category")
	return nil
}
