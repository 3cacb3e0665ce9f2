package parser

import (
	"errors"
	"testing"
)

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		ref      string
		expected int
	}{
		{"A", 0},
		{"Z", 25},
		{"AA", 26},
		{"AB", 27},
		{"A1", 0},
		{"C7", 2},
		{"AB12", 27},
		{"ab12", 27}, // case-insensitive
	}

	for _, tt := range tests {
		result, err := ColumnIndex(tt.ref)
		if err != nil {
			t.Errorf("ColumnIndex(%q) failed: %v", tt.ref, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ColumnIndex(%q) = %d, expected %d", tt.ref, result, tt.expected)
		}
	}
}

func TestColumnIndexInvalid(t *testing.T) {
	for _, ref := range []string{"", "1", "123", "7A"} {
		if _, err := ColumnIndex(ref); !errors.Is(err, ErrInvalidCellRef) {
			t.Errorf("ColumnIndex(%q) error = %v, expected ErrInvalidCellRef", ref, err)
		}
	}
}

func TestColumnLetters(t *testing.T) {
	tests := []struct {
		ref      string
		expected string
	}{
		{"A1", "A"},
		{"AB12", "AB"},
		{"A", "A"},
		{"123", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if result := columnLetters(tt.ref); result != tt.expected {
			t.Errorf("columnLetters(%q) = %q, expected %q", tt.ref, result, tt.expected)
		}
	}
}
