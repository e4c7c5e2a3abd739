package air

import (
	"github.com/vybium/cairo-air/internal/cairoair/core"
)

// PublicInputs carries the claim a Cairo execution is proved against.
type PublicInputs struct {
	PcInit, ApInit, FpInit *core.FieldElement
	PcFinal, ApFinal       *core.FieldElement
	Program                []*core.FieldElement
	NumSteps               int
	LastRowRangeChecks     *int
}

// Context publishes the shape the AIR expects of a trace: its length,
// column count, and per-constraint degree/exemption/offset metadata.
type Context struct {
	TraceLength              int
	TraceColumns             int
	TransitionDegrees        [NumTransitionConstraints]int
	TransitionExemptions     [NumTransitionConstraints]int
	TransitionOffsets        [2]int
	NumTransitionConstraints int
}

// NewContext computes trace_length from program_size/number_steps
// and fills in the fixed degree/exemption tables.
func NewContext(programSize, numberSteps int) *Context {
	l0 := numberSteps + (programSize >> 2) + 1
	traceLength := 1
	for traceLength < l0 {
		traceLength <<= 1
	}

	ctx := &Context{
		TraceLength:              traceLength,
		TraceColumns:             NumTotalColumns,
		TransitionOffsets:        [2]int{0, 1},
		NumTransitionConstraints: NumTransitionConstraints,
	}

	for i := 0; i < NumTransitionConstraints; i++ {
		switch {
		case i >= 0 && i <= 14:
			ctx.TransitionDegrees[i] = 2
		case i == FlagZero:
			ctx.TransitionDegrees[i] = 1
		default:
			ctx.TransitionDegrees[i] = 2
		}
	}

	// Exemptions: 1 for constraints 0-30; for the memory/permutation block
	// (31-42) only the three constraints that reference the next row (34,
	// 38, 42) are exempt on the final row.
	for i := 0; i <= 30; i++ {
		ctx.TransitionExemptions[i] = 1
	}
	nextRowReferencing := map[int]bool{34: true, 38: true, 42: true}
	for i := 31; i < NumTransitionConstraints; i++ {
		if nextRowReferencing[i] {
			ctx.TransitionExemptions[i] = 1
		} else {
			ctx.TransitionExemptions[i] = 0
		}
	}

	return ctx
}

// NumberAuxiliaryRAPColumns reports the width of the auxiliary trace.
func NumberAuxiliaryRAPColumns() int { return NumAuxiliaryRAPColumns }
