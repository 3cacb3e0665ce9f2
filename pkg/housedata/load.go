package housedata

import (
	"log/slog"

	"rumahcsv/pkg/housedata/models"
	"rumahcsv/pkg/housedata/parser"
)

// Load runs the full extraction pipeline on the workbook at path: sheet rows,
// header validation and numeric cleaning, then full-field deduplication.
func Load(path string, opts Options) ([]models.Listing, error) {
	rows, err := parser.SheetRows(path, opts.Sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	cleaned, err := Clean(rows)
	if err != nil {
		return nil, err
	}

	unique := Dedup(cleaned)
	slog.Debug("workbook cleaned",
		slog.String("path", path),
		slog.Int("rows", len(rows)-1),
		slog.Int("dropped", len(rows)-1-len(cleaned)),
		slog.Int("duplicates", len(cleaned)-len(unique)))

	return unique, nil
}
