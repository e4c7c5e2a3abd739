package cairoair

import (
	"errors"

	"github.com/vybium/cairo-air/internal/cairoair/air"
	"github.com/vybium/cairo-air/internal/cairoair/trace"
)

// CairoAIR is the public facade over the Cairo AIR: trace_length and the
// per-constraint degree/exemption tables are fixed once from the
// program size and step count, then every other method is a pure
// function of its arguments.
type CairoAIR struct {
	context     *Context
	numberSteps int
}

// New builds a CairoAIR for a program of the given size executed over
// numberSteps steps.
func New(programSize, numberSteps int) *CairoAIR {
	return &CairoAIR{
		context:     air.NewContext(programSize, numberSteps),
		numberSteps: numberSteps,
	}
}

// Context returns the AIR's published trace shape and constraint metadata.
func (c *CairoAIR) Context() *Context {
	return c.context
}

// NumberAuxiliaryRAPColumns reports the width of the auxiliary trace (12).
func (c *CairoAIR) NumberAuxiliaryRAPColumns() int {
	return air.NumberAuxiliaryRAPColumns()
}

// BuildMainTrace pads a non-padded 34-column execution trace up to
// trace_length (c.Context().TraceLength).
func (c *CairoAIR) BuildMainTrace(nonPadded *TraceTable) (*TraceTable, error) {
	built, err := air.BuildMainTrace(nonPadded, c.context.TraceLength)
	if err != nil {
		return nil, newAirError(ErrShapeMismatch, "failed to build main trace", err)
	}
	return built, nil
}

// BuildRAPChallenges draws alpha then z from the transcript.
func (c *CairoAIR) BuildRAPChallenges(transcript Transcript) *RAPChallenges {
	return air.BuildRAPChallenges(transcript)
}

// BuildAuxiliaryTrace builds the 12-column permutation trace. A program
// that does not fit the memory stream it is spliced into is a caller
// bug (ErrProgramTooLarge, abort); a zero grand-product denominator is
// a probabilistic failure (ErrDegenerateChallenge, safe to re-sample).
func (c *CairoAIR) BuildAuxiliaryTrace(main *TraceTable, challenges *RAPChallenges, public *PublicInputs) (*TraceTable, error) {
	built, err := air.BuildAuxiliaryTrace(main, challenges, public)
	if err != nil {
		if errors.Is(err, air.ErrProgramTooLarge) {
			return nil, newAirError(ErrProgramTooLarge, "failed to build auxiliary trace", err)
		}
		return nil, newAirError(ErrDegenerateChallenge, "failed to build auxiliary trace", err)
	}
	return built, nil
}

// ComputeTransition evaluates all 43 transition identities over a frame.
func (c *CairoAIR) ComputeTransition(frame *Frame, challenges *RAPChallenges) []*FieldElement {
	return air.ComputeTransition(frame, challenges)
}

// BoundaryConstraints computes the 5 boundary constraints.
func (c *CairoAIR) BoundaryConstraints(challenges *RAPChallenges, public *PublicInputs) *BoundaryConstraints {
	return air.BuildBoundaryConstraints(c.context, challenges, public)
}

// FillOffsetsMissingValues is the staged offset range-check filler; no
// transition constraint consumes its output yet.
func (c *CairoAIR) FillOffsetsMissingValues(t *TraceTable, columnIndices []int) ([]*FieldElement, []*FieldElement, error) {
	offsets, padded, err := air.FillOffsetsMissingValues(t, columnIndices)
	if err != nil {
		return nil, nil, newAirError(ErrUnknown, "failed to fill offsets", err)
	}
	return offsets, padded, nil
}

// NewFrame builds a Frame over rows row and row+1 of a combined main+aux
// table.
func NewFrame(combined *TraceTable, row int) (*Frame, error) {
	f, err := air.NewFrame(combined, row)
	if err != nil {
		return nil, newAirError(ErrShapeMismatch, "failed to build frame", err)
	}
	return f, nil
}

// NewTraceTableFromColumns builds a TraceTable from column-major data.
func NewTraceTableFromColumns(field *Field, columns [][]*FieldElement) (*TraceTable, error) {
	return trace.NewFromColumns(field, columns)
}
