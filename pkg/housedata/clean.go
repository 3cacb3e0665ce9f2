package housedata

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"rumahcsv/pkg/housedata/models"
)

// expectedHeader is the exact first row a listing workbook must carry.
var expectedHeader = []string{"NO", "NAMA RUMAH", "HARGA", "LB", "LT", "KT", "KM", "GRS"}

// Clean validates the header row and converts the data rows into listing
// records. Rows whose numeric columns do not hold plain digit text are
// dropped, not reported; a workbook with mixed-quality rows still yields the
// good ones. A header mismatch aborts the whole run.
func Clean(rows [][]string) ([]models.Listing, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	header, dataRows := rows[0], rows[1:]
	if !slices.Equal(header, expectedHeader) {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, header)
	}

	listings := make([]models.Listing, 0, len(dataRows))
	for _, row := range dataRows {
		if len(row) < len(expectedHeader) {
			padded := make([]string, len(expectedHeader))
			copy(padded, row)
			row = padded
		}

		listing, ok := toListing(row)
		if !ok {
			continue
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// toListing converts one padded row into a listing record. ok is false when
// any numeric column is empty or contains a non-digit character.
func toListing(row []string) (models.Listing, bool) {
	numbers := make([]int, 6)
	for i, raw := range row[2:8] {
		value, err := cleanNumeric(raw)
		if err != nil {
			return models.Listing{}, false
		}
		numbers[i] = value
	}

	return models.Listing{
		Name:         strings.TrimSpace(row[1]),
		Price:        numbers[0],
		BuildingArea: numbers[1],
		LandArea:     numbers[2],
		Bedrooms:     numbers[3],
		Bathrooms:    numbers[4],
		Garage:       numbers[5],
	}, true
}

// cleanNumeric parses a trimmed, digit-only cell value.
func cleanNumeric(value string) (int, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] < '0' || cleaned[i] > '9' {
			return 0, fmt.Errorf("unexpected numeric value %q", value)
		}
	}
	return strconv.Atoi(cleaned)
}

// Dedup removes listings whose every field matches an earlier listing,
// keeping first occurrences in encounter order.
func Dedup(listings []models.Listing) []models.Listing {
	seen := make(map[models.Listing]struct{}, len(listings))
	unique := make([]models.Listing, 0, len(listings))
	for _, listing := range listings {
		if _, ok := seen[listing]; ok {
			continue
		}
		seen[listing] = struct{}{}
		unique = append(unique, listing)
	}
	return unique
}
