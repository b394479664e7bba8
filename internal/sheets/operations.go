package sheets

import (
	"context"
	"fmt"

	"acnh_sheet_data/internal/catalog"
	"acnh_sheet_data/internal/record"

	"github.com/rs/zerolog/log"
)

// Reader is the part of Client the tab fetch needs.
type Reader interface {
	ReadSheet(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error)
}

// FetchTabs reads every tab in order and returns their rows as raw records.
// Ignored tabs are skipped without a request.
func FetchTabs(ctx context.Context, reader Reader, spreadsheetID string, tabs []string) ([]record.Record, error) {
	var records []record.Record
	for _, tab := range tabs {
		if catalog.IsIgnored(tab) {
			log.Debug().Str("sheet", tab).Msg("Skipping ignored sheet")
			continue
		}

		log.Debug().Str("sheet", tab).Msg("Reading sheet")
		values, err := reader.ReadSheet(ctx, spreadsheetID, tab)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", tab, err)
		}

		rows, err := RowsToRecords(tab, values)
		if err != nil {
			return nil, fmt.Errorf("failed to parse sheet %q: %w", tab, err)
		}
		log.Debug().
			Str("sheet", tab).
			Int("rows", len(rows)).
			Msg("Retrieved sheet rows")

		records = append(records, rows...)
	}
	return records, nil
}

// RowsToRecords pairs the header row with each following row. Every record
// starts with the SourceSheet field. Cells past the end of a short row are
// left out; cells past the header width are dropped.
func RowsToRecords(tab string, values [][]interface{}) ([]record.Record, error) {
	if len(values) == 0 {
		return nil, nil
	}

	header := make([]string, len(values[0]))
	for i := range values[0] {
		header[i] = extractStringField(values[0], i)
	}

	records := make([]record.Record, 0, len(values)-1)
	for i, row := range values[1:] {
		rec := record.New(record.Field{Key: record.SourceSheetKey, Value: record.String(tab)})
		for col, cell := range row {
			if col >= len(header) {
				break
			}
			v, err := record.FromCell(cell)
			if err != nil {
				// +2: one for the header, one for 1-based sheet rows
				return nil, fmt.Errorf("row %d column %q: %w", i+2, header[col], err)
			}
			rec.Set(header[col], v)
		}
		records = append(records, rec)
	}
	return records, nil
}

// extractStringField safely extracts a string field from a row at the given index
func extractStringField(row []interface{}, index int) string {
	if len(row) > index && row[index] != nil {
		return fmt.Sprintf("%v", row[index])
	}
	return ""
}
