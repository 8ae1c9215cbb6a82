package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/charlespers/boardroom/internal/modules/bom"
)

// ParseXLSX reads an XLSX BOM export. Only the first sheet is read; the
// first row is the header.
func ParseXLSX(r io.Reader) ([]bom.PartRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	return recordsFromRows(rows)
}
