// =============================================================================
// EA Modeler - XLSX Input Support
// =============================================================================
//
// Canonical model exports are frequently maintained as Excel workbooks. This
// file reads an .xlsx input the same way the CSV path does: the first sheet
// is the table, the first row is the header row, every cell is trimmed.
//
// =============================================================================

package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX reads the first sheet of an XLSX workbook into a Table.
func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q in %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input file %s is empty", path)
	}

	return buildTable(path, rows), nil
}
