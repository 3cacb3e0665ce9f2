package parser

import "fmt"

// ColumnIndex converts the alphabetic prefix of a cell reference (e.g. "C7",
// "AB12") to a zero-based column index. Letters are treated as a base-26
// number with digits 1-26, so "A" is 0, "Z" is 25 and "AA" is 26.
func ColumnIndex(ref string) (int, error) {
	letters := columnLetters(ref)
	if letters == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCellRef, ref)
	}

	index := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		index = index*26 + int(c-'A') + 1
	}
	return index - 1, nil
}

// columnLetters returns the leading alphabetic run of a cell reference.
// Empty when the reference has no column letters at all.
func columnLetters(ref string) string {
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return ref[:i]
		}
	}
	return ref
}
