package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "single value",
			input:    "http://localhost:5173",
			expected: []string{"http://localhost:5173"},
		},
		{
			name:     "two values",
			input:    "http://localhost:5173, https://boardroom.dev",
			expected: []string{"http://localhost:5173", "https://boardroom.dev"},
		},
		{
			name:     "no spaces after comma",
			input:    "Resistors,Capacitors",
			expected: []string{"Resistors", "Capacitors"},
		},
		{
			name:     "trailing comma",
			input:    "Resistors,",
			expected: []string{"Resistors"},
		},
		{
			name:     "leading comma",
			input:    ",Capacitors",
			expected: []string{"Capacitors"},
		},
		{
			name:     "only spaces",
			input:    "   ",
			expected: nil,
		},
		{
			name:     "comma only",
			input:    ",",
			expected: nil,
		},
		{
			name:     "multiple commas",
			input:    ",,Resistors,,Capacitors,,",
			expected: []string{"Resistors", "Capacitors"},
		},
		{
			name:     "value with internal spaces preserved",
			input:    "Texas Instruments, Analog Devices",
			expected: []string{"Texas Instruments", "Analog Devices"},
		},
		{
			name:     "mixed spacing around values",
			input:    "  0603  ,  SOIC-8  ",
			expected: []string{"0603", "SOIC-8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseCSV(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseCSV_PreservesInput(t *testing.T) {
	// Verify that the function doesn't modify the input string
	input := "http://localhost:5173, https://boardroom.dev"
	originalInput := input

	_ = ParseCSV(input)

	assert.Equal(t, originalInput, input, "input should not be modified")
}
