// Package housedata loads, cleans and deduplicates house-listing rows from
// an xlsx workbook.
package housedata

import "rumahcsv/pkg/housedata/parser"

// Options configures loading behavior.
type Options struct {
	// Sheet is the archive-internal sheet document to read.
	// Empty means the first sheet.
	Sheet string
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{Sheet: parser.DefaultSheetPath}
}
