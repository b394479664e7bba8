package main

import (
	"context"

	"acnh_sheet_data/internal/app"
	"acnh_sheet_data/internal/cache"
	"acnh_sheet_data/internal/catalog"
	"acnh_sheet_data/internal/output"
	"acnh_sheet_data/internal/processing"
	"acnh_sheet_data/internal/providers"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	app.SetupEnvironment()
	runID := uuid.NewString()
	app.WithRunID(runID)
	log.Debug().Msg("Starting application")

	cfg := app.LoadConfig()
	if err := run(context.Background(), cfg, runID); err != nil {
		log.Fatal().Err(err).Msg("Run failed")
	}
}

func run(ctx context.Context, cfg app.Config, runID string) error {
	fs := afero.NewOsFs()

	sheetsClient := app.InitializeSheetsClient(ctx, cfg)
	provider := providers.NewProvider(sheetsClient, cache.NewStore(fs, cfg.CacheDir), cfg.SpreadsheetID)
	writer := output.NewWriter(fs, cfg.OutDir)

	var exporter processing.Exporter
	if cfg.SQLitePath != "" {
		sqliteExporter, err := output.OpenSQLite(ctx, cfg.SQLitePath, runID)
		if err != nil {
			return err
		}
		defer sqliteExporter.Close()
		exporter = sqliteExporter
		log.Info().Str("path", cfg.SQLitePath).Msg("Exporting records to sqlite")
	}

	log.Info().
		Str("spreadsheet_id", cfg.SpreadsheetID).
		Str("cache_dir", cfg.CacheDir).
		Str("out_dir", cfg.OutDir).
		Msg("Generating data files")

	return processing.ProcessAll(ctx, provider, writer, exporter, catalog.All())
}
