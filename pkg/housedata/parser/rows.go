// Package parser extracts dense text rows from an xlsx workbook container by
// walking its internal OOXML documents directly.
package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// DefaultSheetPath is the archive-internal document holding the first sheet.
const DefaultSheetPath = "xl/worksheets/sheet1.xml"

// xlsxWorksheet maps the worksheet root element of a sheet document.
type xlsxWorksheet struct {
	XMLName   xml.Name      `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main worksheet"`
	SheetData xlsxSheetData `xml:"sheetData"`
}

type xlsxSheetData struct {
	Rows []xlsxRow `xml:"row"`
}

type xlsxRow struct {
	Cells []xlsxCell `xml:"c"`
}

// xlsxCell is a single c element. R is the cell reference ("A1"), T the cell
// type ("s" marks a shared-string index) and V the raw value text.
type xlsxCell struct {
	R string `xml:"r,attr"`
	T string `xml:"t,attr"`
	V string `xml:"v"`
}

// SheetRows reads the named sheet document from the workbook at path and
// returns its rows as dense string slices. Each row spans column 0 through
// the highest referenced column; positions without a cell are empty strings.
// Rows without any referenced cell are omitted entirely. Shared-string cells
// are resolved against the workbook's shared string table.
func SheetRows(path, sheet string) ([][]string, error) {
	if sheet == "" {
		sheet = DefaultSheetPath
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer zr.Close()

	shared, err := loadSharedStrings(&zr.Reader)
	if err != nil {
		return nil, err
	}

	data, err := readZipFile(&zr.Reader, sheet)
	if err != nil {
		return nil, &ParseError{Doc: sheet, Err: err}
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSheet, sheet)
	}

	var ws xlsxWorksheet
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, &ParseError{Doc: sheet, Err: err}
	}

	var rows [][]string
	for _, row := range ws.SheetData.Rows {
		cells := make(map[int]string, len(row.Cells))
		maxIndex := -1

		for _, cell := range row.Cells {
			if columnLetters(cell.R) == "" {
				continue
			}
			index, err := ColumnIndex(cell.R)
			if err != nil {
				return nil, &ParseError{Doc: sheet, Err: err}
			}
			if index > maxIndex {
				maxIndex = index
			}

			value := cell.V
			if cell.T == "s" && value != "" {
				value, err = resolveShared(shared, value)
				if err != nil {
					return nil, &ParseError{Doc: sheet, Err: err}
				}
			}
			cells[index] = value
		}

		if maxIndex < 0 {
			continue
		}
		dense := make([]string, maxIndex+1)
		for index, value := range cells {
			dense[index] = value
		}
		rows = append(rows, dense)
	}

	return rows, nil
}

// resolveShared looks up a raw shared-string index in the loaded table.
func resolveShared(shared []string, raw string) (string, error) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("shared string index %q: %w", raw, err)
	}
	if index < 0 || index >= len(shared) {
		return "", fmt.Errorf("shared string index %d out of range (table has %d entries)", index, len(shared))
	}
	return shared[index], nil
}

// readZipFile returns the contents of the named archive entry, or nil when
// the entry does not exist.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}
