package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidCellRef indicates a cell reference with no alphabetic column prefix.
var ErrInvalidCellRef = errors.New("invalid cell reference")

// ErrMissingSheet indicates the requested sheet document is not in the archive.
var ErrMissingSheet = errors.New("sheet document not found")

// ParseError represents a structural failure while parsing an archive document.
type ParseError struct {
	Doc string // archive-internal document path, e.g. "xl/worksheets/sheet1.xml"
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Doc, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
