// Package models defines data structures for house listing extraction.
package models

// Listing represents one cleaned, validated house-listing entry.
// All numeric fields are non-negative integers parsed from digit-only cells.
type Listing struct {
	// Name is the listing title, trimmed of surrounding whitespace.
	Name string
	// Price is the asking price.
	Price int
	// BuildingArea is the built surface (LB column).
	BuildingArea int
	// LandArea is the lot surface (LT column).
	LandArea int
	// Bedrooms is the bedroom count (KT column).
	Bedrooms int
	// Bathrooms is the bathroom count (KM column).
	Bathrooms int
	// Garage is the garage capacity (GRS column).
	Garage int
}
