package air

import (
	"github.com/vybium/cairo-air/internal/cairoair/core"
	"github.com/vybium/cairo-air/internal/cairoair/trace"
)

// buildTestTable builds a numRows x numCols all-zero table for shape-only
// tests that don't care about cell values.
func buildTestTable(field *core.Field, numRows, numCols int) (*trace.Table, error) {
	columns := make([][]*core.FieldElement, numCols)
	zero := field.Zero()
	for c := 0; c < numCols; c++ {
		col := make([]*core.FieldElement, numRows)
		for r := range col {
			col[r] = zero
		}
		columns[c] = col
	}
	return trace.NewFromColumns(field, columns)
}
