package air

import "github.com/vybium/cairo-air/internal/cairoair/core"

// BoundaryConstraint pins trace[Column][Row] = Value.
type BoundaryConstraint struct {
	Column int
	Row    int
	Value  *core.FieldElement
}

// BoundaryConstraints is the fixed-size set of boundary constraints this
// AIR publishes: initial/final pc and ap, plus the final
// permutation accumulator.
type BoundaryConstraints struct {
	Constraints []BoundaryConstraint
}

// BuildBoundaryConstraints computes the 5 boundary constraints from the
// public inputs and RAP challenges.
func BuildBoundaryConstraints(ctx *Context, challenges *RAPChallenges, public *PublicInputs) *BoundaryConstraints {
	field := public.PcInit.Field()

	initialPc := BoundaryConstraint{Column: MemATraceOffset, Row: 0, Value: public.PcInit}
	initialAp := BoundaryConstraint{Column: MemPTraceOffset, Row: 0, Value: public.ApInit}
	finalPc := BoundaryConstraint{Column: MemATraceOffset, Row: public.NumSteps - 1, Value: public.PcFinal}
	finalAp := BoundaryConstraint{Column: MemPTraceOffset, Row: public.NumSteps - 1, Value: public.ApFinal}

	finalIndex := ctx.TraceLength - 1
	cumulativeProduct := field.One()
	for i, value := range public.Program {
		index := field.NewElementFromUint64(uint64(i + 1))
		term := index.Add(challenges.Alpha.Mul(value))
		cumulativeProduct = cumulativeProduct.Mul(challenges.Z.Sub(term))
	}
	zPowP := challenges.Z.ExpUint64(uint64(len(public.Program)))
	permutationFinal, err := zPowP.Div(cumulativeProduct)
	if err != nil {
		// Only possible with a degenerate challenge; the caller is
		// expected to treat this the same way as a failed grand product.
		panic(err)
	}

	permutationFinalConstraint := BoundaryConstraint{
		Column: PermutationArgumentCol3,
		Row:    finalIndex,
		Value:  permutationFinal,
	}

	return &BoundaryConstraints{
		Constraints: []BoundaryConstraint{initialPc, initialAp, finalPc, finalAp, permutationFinalConstraint},
	}
}
