// Package schematic computes the grid layout for the schematic viewer
// canvas. The layout is a pure function of the part list, so the viewer can
// recompute it on every render.
package schematic

import (
	"github.com/charlespers/boardroom/internal/modules/bom"
)

// Cell dimensions in canvas units. The viewer scales these by the zoom
// factor at render time.
const (
	CellWidth  = 160.0
	CellHeight = 100.0
	CellGutter = 20.0
)

// DefaultColumns is used when the caller does not request a column count.
const DefaultColumns = 4

// Cell is one component's placement on the canvas.
type Cell struct {
	PartID string  `json:"part_id"`
	Label  string  `json:"label"`
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Layout is the computed canvas: cells in part-list order plus overall
// bounds.
type Layout struct {
	Cells  []Cell  `json:"cells"`
	Rows   int     `json:"rows"`
	Cols   int     `json:"cols"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Compute lays parts out left-to-right, top-to-bottom in input order.
// cols <= 0 falls back to DefaultColumns. An empty part list yields an empty
// zero-size layout.
func Compute(parts []bom.PartRecord, cols int) Layout {
	if cols <= 0 {
		cols = DefaultColumns
	}

	layout := Layout{Cells: make([]Cell, 0, len(parts)), Cols: cols}
	if len(parts) == 0 {
		return layout
	}

	for i, part := range parts {
		row := i / cols
		col := i % cols
		label := part.MPN
		if label == "" {
			label = part.ID
		}
		layout.Cells = append(layout.Cells, Cell{
			PartID: part.ID,
			Label:  label,
			Row:    row,
			Col:    col,
			X:      CellGutter + float64(col)*(CellWidth+CellGutter),
			Y:      CellGutter + float64(row)*(CellHeight+CellGutter),
		})
	}

	layout.Rows = (len(parts) + cols - 1) / cols
	usedCols := cols
	if len(parts) < cols {
		usedCols = len(parts)
	}
	layout.Width = CellGutter + float64(usedCols)*(CellWidth+CellGutter)
	layout.Height = CellGutter + float64(layout.Rows)*(CellHeight+CellGutter)
	return layout
}
