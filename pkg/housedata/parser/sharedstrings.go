package parser

import (
	"archive/zip"
	"encoding/xml"
)

const sharedStringsPath = "xl/sharedStrings.xml"

// xlsxSST maps the sst root element of xl/sharedStrings.xml from the
// namespace http://schemas.openxmlformats.org/spreadsheetml/2006/main.
type xlsxSST struct {
	XMLName xml.Name `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main sst"`
	SI      []xlsxSI `xml:"si"`
}

// xlsxSI is a single string item. A string item stores its text either as a
// sequence of formatting runs (R) or as one direct text node (T); never both
// meaningfully, so the runs win when present.
type xlsxSI struct {
	T *string   `xml:"t"`
	R []xlsxRun `xml:"r"`
}

type xlsxRun struct {
	T string `xml:"t"`
}

// text flattens a string item into its literal value.
func (si xlsxSI) text() string {
	if len(si.R) > 0 {
		var s string
		for _, run := range si.R {
			s += run.T
		}
		return s
	}
	if si.T != nil {
		return *si.T
	}
	return ""
}

// loadSharedStrings reads the workbook's shared string table in document
// order. A workbook without a shared string table is valid (all strings
// inline) and yields an empty table, not an error.
func loadSharedStrings(r *zip.Reader) ([]string, error) {
	data, err := readZipFile(r, sharedStringsPath)
	if err != nil {
		return nil, &ParseError{Doc: sharedStringsPath, Err: err}
	}
	if data == nil {
		return nil, nil
	}

	var sst xlsxSST
	if err := xml.Unmarshal(data, &sst); err != nil {
		return nil, &ParseError{Doc: sharedStringsPath, Err: err}
	}

	strings := make([]string, 0, len(sst.SI))
	for _, si := range sst.SI {
		strings = append(strings, si.text())
	}
	return strings, nil
}
