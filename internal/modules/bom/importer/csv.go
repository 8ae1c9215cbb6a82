package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/charlespers/boardroom/internal/modules/bom"
)

// ParseCSV reads a CSV BOM export. The first row is the header; delimiters
// other than comma are not auto-detected. Quoting is handled leniently since
// distributor exports are not always strict CSV.
func ParseCSV(r io.Reader) ([]bom.PartRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	return recordsFromRows(rows)
}
