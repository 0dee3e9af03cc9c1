// =============================================================================
// EA Modeler - Tabular Loader Module
// =============================================================================
//
// This module reads the tabular input files describing a canonical data
// model into in-memory row collections. It handles:
//   - CSV files in more than one text encoding (UTF-8 with a Windows-1252
//     fallback for legacy exports)
//   - XLSX workbooks (first sheet), so a model maintained in Excel needs no
//     CSV export step
//   - Header cleaning and empty-row skipping
//   - Required-column validation with exact, case-sensitive matching
//
// The loader operates strictly before the core pipeline: everything after
// it works on decoded, validated rows.
//
// =============================================================================

package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Table represents one parsed tabular input file.
type Table struct {
	// Headers contains the cleaned column headers.
	Headers []string

	// Rows contains the data rows as maps of header -> trimmed value.
	// Using maps allows field access by column name.
	Rows []map[string]string

	// SourceFile is the path of the file the table was read from.
	SourceFile string

	// RowCount is the number of data rows (excluding the header row).
	RowCount int
}

// HasColumn reports whether the table has a column with the exact name.
// Matching is case-sensitive: the required input schema names columns
// exactly, and a near-miss should surface as a schema error, not silently
// bind to the wrong column.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// =============================================================================
// READING
// =============================================================================

// ReadTable reads a tabular input file into a Table. The format is chosen
// by file extension: ".xlsx" is read as a workbook, everything else as CSV.
//
// RETURNS:
//   - The parsed table.
//   - An error if the file does not exist, cannot be decoded, or is empty.
func ReadTable(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

// readCSV reads and decodes a CSV file.
//
// ENCODING HANDLING:
//
//	Input files exported from legacy modeling tools arrive in more than one
//	encoding. The file is used as-is when it is valid UTF-8; otherwise it
//	is decoded as Windows-1252, which accepts any byte sequence, matches
//	Latin-1 for 0xA0-0xFF and additionally maps the 0x80-0x9F range to the
//	punctuation (curly quotes, dashes) the legacy exports actually contain.
func readCSV(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	configureReader(reader)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", path, err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("input file %s is empty", path)
	}

	return buildTable(path, allRows), nil
}

// configureReader applies the parsing settings shared by all model inputs.
func configureReader(reader *csv.Reader) {
	// Allow variable field counts; exports frequently have ragged rows.
	reader.FieldsPerRecord = -1

	// Allow quotes that do not follow strict CSV rules.
	reader.LazyQuotes = true

	reader.TrimLeadingSpace = true
}

// buildTable converts raw rows (header row first) into a Table. Cell values
// are trimmed and rows with no content are skipped.
func buildTable(path string, allRows [][]string) *Table {
	headers := cleanHeaders(allRows[0])

	rows := make([]map[string]string, 0, len(allRows)-1)
	for _, raw := range allRows[1:] {
		if isRowEmpty(raw) {
			continue
		}

		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(raw) {
				row[header] = strings.TrimSpace(raw[i])
			} else {
				// Column is missing in this row.
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{
		Headers:    headers,
		Rows:       rows,
		SourceFile: path,
		RowCount:   len(rows),
	}
}

// cleanHeaders trims header values and gives unnamed columns a positional
// placeholder so row maps never collide on the empty key.
func cleanHeaders(raw []string) []string {
	cleaned := make([]string, len(raw))
	for i, header := range raw {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}
	return cleaned
}

// isRowEmpty reports whether a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// COLUMN VALIDATION
// =============================================================================

// RequireColumns verifies that every named column is present in the table.
// The first missing column is reported as a MissingColumnError carrying the
// file name and the available headers, which is enough context to correct
// the input and re-run.
func RequireColumns(t *Table, columns ...string) error {
	for _, col := range columns {
		if !t.HasColumn(col) {
			return &MissingColumnError{
				File:      t.SourceFile,
				Column:    col,
				Available: append([]string(nil), t.Headers...),
			}
		}
	}
	return nil
}
