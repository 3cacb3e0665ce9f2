// Package output serializes cleaned listings to delimited text.
package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"rumahcsv/pkg/housedata/models"
)

// ErrNoListings indicates an attempt to export an empty data set. An empty
// output file is never a useful artifact, so this is an error rather than a
// silent no-op.
var ErrNoListings = errors.New("no data available to write")

// Header is the fixed CSV column order.
var Header = []string{"name", "price", "building_area", "land_area", "bedrooms", "bathrooms", "garage"}

// WriteCSV writes the listings to dest as UTF-8 CSV, header line first.
func WriteCSV(listings []models.Listing, dest string) error {
	if len(listings) == 0 {
		return ErrNoListings
	}

	slog.Debug("writing csv",
		slog.String("dest", dest),
		slog.Int("record_count", len(listings)))

	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, listing := range listings {
		if err := writer.Write(record(listing)); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return nil
}

func record(l models.Listing) []string {
	return []string{
		l.Name,
		strconv.Itoa(l.Price),
		strconv.Itoa(l.BuildingArea),
		strconv.Itoa(l.LandArea),
		strconv.Itoa(l.Bedrooms),
		strconv.Itoa(l.Bathrooms),
		strconv.Itoa(l.Garage),
	}
}
