package air

import (
	"sort"

	"github.com/vybium/cairo-air/internal/cairoair/core"
	"github.com/vybium/cairo-air/internal/cairoair/trace"
)

// FillOffsetsMissingValues implements the staged offset range-check
// filler. It extracts the given columns concatenated, biases every
// entry by 2^15, and produces a gap-filled sorted column alongside the
// original entries padded out with the values used to fill those gaps.
// No transition constraint consumes this output yet (first open
// question); it exists so a future range-check argument can be added
// without renumbering columns.
func FillOffsetsMissingValues(t *trace.Table, columnIndices []int) (offsetColumns []*core.FieldElement, newColumnPadded []*core.FieldElement, err error) {
	field := t.Field()
	b15 := field.NewElementFromUint64(2).ExpUint64(15)

	offsetColumns = t.GetColumns(columnIndices)
	for i := range offsetColumns {
		offsetColumns[i] = offsetColumns[i].Add(b15)
	}

	representatives := make([]uint64, len(offsetColumns))
	for i, e := range offsetColumns {
		representatives[i] = e.Big().Uint64()
	}
	sort.Slice(representatives, func(i, j int) bool { return representatives[i] < representatives[j] })

	newColumn := []*core.FieldElement{field.NewElementFromUint64(representatives[0])}
	var missingRanges [][]*core.FieldElement

	for i := 0; i+1 < len(representatives); i++ {
		lo, hi := representatives[i], representatives[i+1]
		if hi == lo {
			newColumn = append(newColumn, field.NewElementFromUint64(hi))
			continue
		}
		missingRange := make([]*core.FieldElement, 0, hi-lo-1)
		for v := lo + 1; v < hi; v++ {
			missingRange = append(missingRange, field.NewElementFromUint64(v))
		}
		newColumn = append(newColumn, missingRange...)
		newColumn = append(newColumn, field.NewElementFromUint64(hi))
		missingRanges = append(missingRanges, missingRange)
	}

	for _, missingRange := range missingRanges {
		offsetColumns = append(offsetColumns, missingRange...)
	}

	paddingLen := ((len(newColumn)+2)/3)*3 - len(newColumn)
	zero := field.Zero()
	for i := 0; i < paddingLen; i++ {
		offsetColumns = append(offsetColumns, zero)
	}

	newColumnPadded = make([]*core.FieldElement, 0, paddingLen+len(newColumn))
	for i := 0; i < paddingLen; i++ {
		newColumnPadded = append(newColumnPadded, zero)
	}
	newColumnPadded = append(newColumnPadded, newColumn...)

	return offsetColumns, newColumnPadded, nil
}
