// Package importer converts uploaded spreadsheet files (CSV or XLSX) into
// bill-of-materials part records. Column headers are matched leniently so
// exports from different EDA tools and distributors import without manual
// cleanup.
package importer

import (
	"fmt"
	"strings"

	"github.com/charlespers/boardroom/internal/modules/bom"
)

// headerAliases maps normalized column headers to part record fields. Keys
// are lowercased with spaces, underscores and dashes removed.
var headerAliases = map[string]string{
	"id":           "id",
	"designator":   "id",
	"refdes":       "id",
	"reference":    "id",
	"mpn":          "mpn",
	"partnumber":   "mpn",
	"mfrpart":      "mpn",
	"mfrpartno":    "mpn",
	"manufacturer": "manufacturer",
	"mfr":          "manufacturer",
	"vendor":       "manufacturer",
	"category":     "category",
	"type":         "category",
	"package":      "package",
	"footprint":    "package",
	"quantity":     "quantity",
	"qty":          "quantity",
	"count":        "quantity",
	"unitprice":    "price",
	"price":        "price",
	"unitcost":     "price",
	"cost":         "price",
}

// normalizeHeader folds a raw column header into its alias-table form.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	for _, cut := range []string{" ", "_", "-", "."} {
		h = strings.ReplaceAll(h, cut, "")
	}
	return h
}

// mapColumns resolves a header row to field names by position. Unrecognized
// columns map to the empty string and are ignored.
func mapColumns(headers []string) []string {
	fields := make([]string, len(headers))
	for i, h := range headers {
		fields[i] = headerAliases[normalizeHeader(h)]
	}
	return fields
}

// recordsFromRows converts raw rows (first row is the header) into part
// records. Rows that are entirely empty are skipped. A record without an ID
// column gets a positional one so every line item stays addressable.
func recordsFromRows(rows [][]string) ([]bom.PartRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file has no rows")
	}

	fields := mapColumns(rows[0])
	known := 0
	for _, f := range fields {
		if f != "" {
			known++
		}
	}
	if known == 0 {
		return nil, fmt.Errorf("no recognized columns in header row")
	}

	var records []bom.PartRecord
	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}

		var rec bom.PartRecord
		for i, field := range fields {
			if field == "" || i >= len(row) {
				continue
			}
			value := strings.TrimSpace(row[i])
			switch field {
			case "id":
				rec.ID = value
			case "mpn":
				rec.MPN = value
			case "manufacturer":
				rec.Manufacturer = value
			case "category":
				rec.Category = value
			case "package":
				rec.Package = value
			case "quantity":
				rec.Quantity = bom.TextValue(value)
			case "price":
				rec.UnitPrice = bom.TextValue(value)
			}
		}

		if rec.ID == "" {
			rec.ID = fmt.Sprintf("row-%d", len(records)+1)
		}
		records = append(records, rec)
	}

	return records, nil
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
