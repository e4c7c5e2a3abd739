package air

import (
	"fmt"

	"github.com/vybium/cairo-air/internal/cairoair/core"
	"github.com/vybium/cairo-air/internal/cairoair/trace"
)

// Frame is a window of two consecutive main+aux rows used to evaluate
// transition identities: row 0 is the current step, row 1 the next.
type Frame struct {
	curr []*core.FieldElement
	next []*core.FieldElement
}

// NewFrame builds a Frame over rows r and r+1 of a combined main+aux
// table. On the final row, "next" aliases the current row instead of
// wrapping past the end of the table; this is harmless because every
// constraint referencing next is exempted on the final row.
func NewFrame(combined *trace.Table, row int) (*Frame, error) {
	if row < 0 || row >= combined.NumRows() {
		return nil, fmt.Errorf("frame row %d out of range [0, %d)", row, combined.NumRows())
	}
	nextRow := row + 1
	if nextRow >= combined.NumRows() {
		nextRow = row
	}
	return &Frame{curr: combined.Row(row), next: combined.Row(nextRow)}, nil
}

// Current returns row 0 of the frame.
func (f *Frame) Current() []*core.FieldElement { return f.curr }

// Next returns row 1 of the frame.
func (f *Frame) Next() []*core.FieldElement { return f.next }
