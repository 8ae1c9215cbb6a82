package bom

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "plain integer", input: "2", expected: 2},
		{name: "decimal", input: "2.5", expected: 2.5},
		{name: "whitespace padded", input: "  10 ", expected: 10},
		{name: "empty defaults to 1", input: "", expected: 1},
		{name: "garbage defaults to 1", input: "a few", expected: 1},
		{name: "negative passes through", input: "-3", expected: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseQuantity(tt.input))
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "plain number", input: "1.50", expected: 1.5},
		{name: "dollar prefix", input: "$1.50", expected: 1.5},
		{name: "euro prefix", input: "€0.42", expected: 0.42},
		{name: "currency code prefix", input: "USD 3.20", expected: 3.2},
		{name: "thousands separators", input: "$1,234.56", expected: 1234.56},
		{name: "empty defaults to 0", input: "", expected: 0},
		{name: "garbage defaults to 0", input: "call for quote", expected: 0},
		{name: "bare symbol defaults to 0", input: "$", expected: 0},
		{name: "negative passes through", input: "-0.10", expected: -0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePrice(tt.input))
		})
	}
}

func TestTextValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected TextValue
	}{
		{name: "string", payload: `{"quantity": "2"}`, expected: "2"},
		{name: "number", payload: `{"quantity": 3}`, expected: "3"},
		{name: "float", payload: `{"quantity": 1.5}`, expected: "1.5"},
		{name: "null", payload: `{"quantity": null}`, expected: ""},
		{name: "absent", payload: `{}`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec PartRecord
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &rec))
			assert.Equal(t, tt.expected, rec.Quantity)
		})
	}
}

func TestPartRecord_LineCost(t *testing.T) {
	rec := PartRecord{Quantity: "2", UnitPrice: "$1.50"}
	assert.InDelta(t, 3.0, rec.LineCost(), 1e-9)

	// Missing quantity counts as a single unit.
	rec = PartRecord{UnitPrice: "3"}
	assert.InDelta(t, 3.0, rec.LineCost(), 1e-9)
}
