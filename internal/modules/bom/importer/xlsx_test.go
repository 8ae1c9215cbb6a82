package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/charlespers/boardroom/internal/modules/bom"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseXLSX(t *testing.T) {
	buf := writeWorkbook(t, [][]interface{}{
		{"Designator", "MPN", "Manufacturer", "Category", "Qty", "Unit Price"},
		{"R1", "RC0603FR-0710KL", "Yageo", "Resistors", 2, "$0.10"},
		{"C1", "CL10A105KB8NNNC", "Samsung", "Capacitors", 6, 0.02},
	})

	records, err := ParseXLSX(buf)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "R1", records[0].ID)
	assert.Equal(t, "RC0603FR-0710KL", records[0].MPN)
	assert.Equal(t, "Yageo", records[0].Manufacturer)
	assert.Equal(t, bom.TextValue("2"), records[0].Quantity)
	assert.Equal(t, bom.TextValue("$0.10"), records[0].UnitPrice)

	// Numeric cells arrive as text and normalize at read time.
	assert.InDelta(t, 0.12, records[1].LineCost(), 1e-9)
}

func TestParseXLSX_Errors(t *testing.T) {
	t.Run("not an xlsx file", func(t *testing.T) {
		_, err := ParseXLSX(strings.NewReader("Designator,Qty\nR1,2"))
		assert.Error(t, err)
	})

	t.Run("no recognized columns", func(t *testing.T) {
		buf := writeWorkbook(t, [][]interface{}{
			{"Foo", "Bar"},
			{"1", "2"},
		})

		_, err := ParseXLSX(buf)
		assert.Error(t, err)
	})
}
