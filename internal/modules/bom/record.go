// Package bom provides the bill-of-materials core: part records, lenient
// numeric normalization, grouping and cost aggregation.
package bom

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TextValue is a loosely-typed scalar field. BOM data arrives from
// spreadsheets and hand-edited JSON, so a quantity may be a string, a number,
// or missing entirely. TextValue accepts all of those and stores the raw text.
type TextValue string

// UnmarshalJSON accepts a JSON string, number, null or bool and keeps its
// textual form. null becomes the empty value.
func (v *TextValue) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*v = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*v = TextValue(str)
		return nil
	}
	*v = TextValue(s)
	return nil
}

// MarshalJSON renders the value as a JSON string.
func (v TextValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

func (v TextValue) String() string {
	return string(v)
}

// PartRecord is one bill-of-materials line item. The grouping and aggregation
// functions only read records, they never mutate them.
type PartRecord struct {
	ID           string    `json:"id"`
	MPN          string    `json:"mpn"`
	Manufacturer string    `json:"manufacturer"`
	Category     string    `json:"category,omitempty"`
	Package      string    `json:"package,omitempty"`
	Quantity     TextValue `json:"quantity"`
	UnitPrice    TextValue `json:"unit_price"`
}

// Qty returns the normalized quantity. Missing or unparseable values default
// to 1 so a dirty dataset still produces a usable summary.
func (p PartRecord) Qty() float64 {
	return ParseQuantity(string(p.Quantity))
}

// UnitCost returns the normalized unit price. Missing or unparseable values
// default to 0.
func (p PartRecord) UnitCost() float64 {
	return ParsePrice(string(p.UnitPrice))
}

// LineCost returns the cost contribution of this record (unit price x quantity).
func (p PartRecord) LineCost() float64 {
	return p.UnitCost() * p.Qty()
}

// ParseQuantity parses a textual quantity, substituting 1 when the value is
// absent or malformed. Negative values pass through unchanged.
func ParseQuantity(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1
	}
	return n
}

// currencySymbols are stripped from the front of price values before parsing.
var currencySymbols = []string{"$", "€", "£", "¥", "USD", "EUR"}

// ParsePrice parses a textual unit price, substituting 0 when the value is
// absent or malformed. A leading currency symbol and thousands separators are
// stripped first ("$1,234.50" parses as 1234.50). Negative values pass
// through unchanged.
func ParsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	for _, sym := range currencySymbols {
		if strings.HasPrefix(s, sym) {
			s = strings.TrimSpace(strings.TrimPrefix(s, sym))
			break
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}
