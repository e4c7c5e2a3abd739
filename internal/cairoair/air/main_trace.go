package air

import (
	"fmt"

	"github.com/vybium/cairo-air/internal/cairoair/trace"
)

// BuildMainTrace pads a non-padded 34-column execution trace (built by the
// VM-execution-trace builder, external to this package) up to traceLength
// rows (the Context's power-of-two trace_length). Padding rows are
// all-zero, including FRAME_SELECTOR, which disables instruction
// constraints on them.
func BuildMainTrace(nonPadded *trace.Table, traceLength int) (*trace.Table, error) {
	if nonPadded.NumCols() != NumMainColumns {
		return nil, fmt.Errorf("main trace must have %d columns, got %d", NumMainColumns, nonPadded.NumCols())
	}
	if traceLength < nonPadded.NumRows() {
		return nil, fmt.Errorf("trace_length %d is smaller than the non-padded trace's %d rows", traceLength, nonPadded.NumRows())
	}
	return nonPadded.WithAppendedRows(traceLength - nonPadded.NumRows()), nil
}
