package housedata

import "errors"

// ErrNoRows indicates the sheet document contained no rows at all.
var ErrNoRows = errors.New("no rows found in workbook")

// ErrBadHeader indicates the first row does not match the expected listing
// header. The workbook is not the expected shape, so nothing is salvaged.
var ErrBadHeader = errors.New("unexpected header row")
