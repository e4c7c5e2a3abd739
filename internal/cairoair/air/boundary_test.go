package air

import (
	"testing"

	"github.com/vybium/cairo-air/internal/cairoair/core"
)

func TestBuildBoundaryConstraintsPinsInitialAndFinalRegisters(t *testing.T) {
	field := core.DefaultPrimeField
	public := &PublicInputs{
		PcInit:   field.NewElementFromInt64(1),
		ApInit:   field.NewElementFromInt64(2),
		PcFinal:  field.NewElementFromInt64(9),
		ApFinal:  field.NewElementFromInt64(12),
		Program:  elems(field, 10, 20, 30),
		NumSteps: 4,
	}
	ctx := NewContext(len(public.Program), public.NumSteps)
	challenges := &RAPChallenges{Alpha: field.NewElementFromInt64(3), Z: field.NewElementFromInt64(17)}

	boundary := BuildBoundaryConstraints(ctx, challenges, public)
	if len(boundary.Constraints) != 5 {
		t.Fatalf("len(Constraints) = %d, want 5", len(boundary.Constraints))
	}

	initialPc := boundary.Constraints[0]
	if initialPc.Column != MemATraceOffset || initialPc.Row != 0 || !initialPc.Value.Equal(public.PcInit) {
		t.Errorf("initial pc constraint = %+v", initialPc)
	}
	initialAp := boundary.Constraints[1]
	if initialAp.Column != MemPTraceOffset || initialAp.Row != 0 || !initialAp.Value.Equal(public.ApInit) {
		t.Errorf("initial ap constraint = %+v", initialAp)
	}
	finalPc := boundary.Constraints[2]
	if finalPc.Column != MemATraceOffset || finalPc.Row != public.NumSteps-1 || !finalPc.Value.Equal(public.PcFinal) {
		t.Errorf("final pc constraint = %+v", finalPc)
	}
	finalAp := boundary.Constraints[3]
	if finalAp.Column != MemPTraceOffset || finalAp.Row != public.NumSteps-1 || !finalAp.Value.Equal(public.ApFinal) {
		t.Errorf("final ap constraint = %+v", finalAp)
	}

	permutationFinal := boundary.Constraints[4]
	if permutationFinal.Column != PermutationArgumentCol3 || permutationFinal.Row != ctx.TraceLength-1 {
		t.Errorf("permutation-final constraint location = column %d row %d, want column %d row %d",
			permutationFinal.Column, permutationFinal.Row, PermutationArgumentCol3, ctx.TraceLength-1)
	}

	// z^len(program) = cumulativeProduct * permutationFinal.
	cumulativeProduct := field.One()
	for i, value := range public.Program {
		index := field.NewElementFromUint64(uint64(i + 1))
		term := index.Add(challenges.Alpha.Mul(value))
		cumulativeProduct = cumulativeProduct.Mul(challenges.Z.Sub(term))
	}
	zPowP := challenges.Z.ExpUint64(uint64(len(public.Program)))
	if !zPowP.Equal(cumulativeProduct.Mul(permutationFinal.Value)) {
		t.Error("permutation-final boundary value does not satisfy z^len(program) = cumulativeProduct * value")
	}
}

func TestBuildBoundaryConstraintsPanicsOnDegenerateChallenge(t *testing.T) {
	field := core.DefaultPrimeField
	program := elems(field, 5)
	public := &PublicInputs{
		PcInit:   field.Zero(),
		ApInit:   field.Zero(),
		PcFinal:  field.Zero(),
		ApFinal:  field.Zero(),
		Program:  program,
		NumSteps: 1,
	}
	ctx := NewContext(len(program), public.NumSteps)
	// alpha = 0, z = 5 forces cumulativeProduct = (5 - (1 + 0*5)) = 4, so
	// not degenerate; pick z so the term matches index+alpha*value exactly.
	challenges := &RAPChallenges{Alpha: field.Zero(), Z: field.NewElementFromInt64(1)}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic for a degenerate challenge (zero cumulative product)")
		}
	}()
	BuildBoundaryConstraints(ctx, challenges, public)
}
