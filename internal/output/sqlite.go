package output

import (
	"context"
	"database/sql"
	"fmt"

	"acnh_sheet_data/internal/catalog"
	"acnh_sheet_data/internal/record"

	"github.com/rs/zerolog/log"
	// Register modernc SQLite driver with database/sql.
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS records (
	run_id TEXT NOT NULL,
	category TEXT NOT NULL,
	position INTEGER NOT NULL,
	source_sheet TEXT,
	data TEXT NOT NULL,
	PRIMARY KEY (run_id, category, position)
)`

// SQLiteExporter stores normalized records as JSON documents, one row per
// record, tagged with the run that produced them.
type SQLiteExporter struct {
	db    *sql.DB
	runID string
}

func OpenSQLite(ctx context.Context, path, runID string) (*SQLiteExporter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create records table: %w", err)
	}
	return &SQLiteExporter{db: db, runID: runID}, nil
}

func (e *SQLiteExporter) Close() error {
	return e.db.Close()
}

// Export writes all records of one category in a single transaction.
func (e *SQLiteExporter) Export(ctx context.Context, category catalog.Category, records []record.Record) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (run_id, category, position, source_sheet, data) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		data, err := rec.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to encode %s record %d: %w", category, i, err)
		}
		if _, err := stmt.ExecContext(ctx, e.runID, category.String(), i, rec.SourceSheet(), string(data)); err != nil {
			return fmt.Errorf("failed to insert %s record %d: %w", category, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s records: %w", category, err)
	}
	log.Debug().
		Str("category", category.String()).
		Int("records", len(records)).
		Msg("Exported records to sqlite")
	return nil
}
