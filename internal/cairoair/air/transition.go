package air

import "github.com/vybium/cairo-air/internal/cairoair/core"

// Transition-constraint identifiers. The ordering is load-bearing: proof
// transcripts commit to constraint evaluations by index.
const (
	cInst    = 16
	cDstAddr = 17
	cOp0Addr = 18
	cOp1Addr = 19
	cNextAp  = 20
	cNextFp  = 21
	cNextPc1 = 22
	cNextPc2 = 23
	cT0      = 24
	cT1      = 25
	cMul1    = 26
	cMul2    = 27
	cCall1   = 28
	cCall2   = 29
	cAssertEq = 30

	cMemoryIncreasing0 = 31
	cMemoryIncreasing1 = 32
	cMemoryIncreasing2 = 33
	cMemoryIncreasing3 = 34

	cMemoryConsistency0 = 35
	cMemoryConsistency1 = 36
	cMemoryConsistency2 = 37
	cMemoryConsistency3 = 38

	cPermutationArgument0 = 39
	cPermutationArgument1 = 40
	cPermutationArgument2 = 41
	cPermutationArgument3 = 42
)

// ComputeTransition evaluates all 43 transition identities over a frame.
// Every identity is a pure function of the frame and the RAP challenges;
// it returns field elements that are zero iff the identity holds.
func ComputeTransition(frame *Frame, challenges *RAPChallenges) []*core.FieldElement {
	field := frame.Current()[0].Field()
	constraints := make([]*core.FieldElement, NumTransitionConstraints)

	computeInstrConstraints(constraints, frame, field)
	computeOperandConstraints(constraints, frame, field)
	computeRegisterConstraints(constraints, frame, field)
	computeOpcodeConstraints(constraints, frame, field)
	enforceSelector(constraints, frame)
	memoryIsIncreasing(constraints, frame, field)
	permutationArgument(constraints, frame, challenges)

	return constraints
}

func frameInstSize(row []*core.FieldElement, field *core.Field) *core.FieldElement {
	return row[FOp1Val].Add(field.One())
}

// computeInstrConstraints evaluates the flag-bit constraints (0-15) and
// the instruction-unpacking constraint (16), per the Cairo whitepaper's
// section on instruction decoding.
func computeInstrConstraints(constraints []*core.FieldElement, frame *Frame, field *core.Field) {
	curr := frame.Current()
	one := field.One()

	for i := 0; i <= 14; i++ {
		flag := curr[i]
		constraints[i] = flag.Mul(flag.Sub(one))
	}
	constraints[FlagZero] = curr[FlagZero]

	two := field.NewElementFromUint64(2)
	b16 := two.ExpUint64(16)
	b32 := two.ExpUint64(32)
	b48 := two.ExpUint64(48)

	f0Squiggle := field.Zero()
	for i := 14; i >= 0; i-- {
		f0Squiggle = curr[i].Add(two.Mul(f0Squiggle))
	}

	constraints[cInst] = curr[OffDst].
		Add(b16.Mul(curr[OffOp0])).
		Add(b32.Mul(curr[OffOp1])).
		Add(b48.Mul(f0Squiggle)).
		Sub(curr[FrameInst])
}

// computeOperandConstraints evaluates the operand-address constraints
// (17-19): dst and op0 resolve to ap/fp-relative offsets; op1 resolves
// to a pc-, ap-, fp- or op0-relative offset.
func computeOperandConstraints(constraints []*core.FieldElement, frame *Frame, field *core.Field) {
	curr := frame.Current()
	ap := curr[FrameAp]
	fp := curr[FrameFp]
	pc := curr[FramePc]

	one := field.One()
	b15 := field.NewElementFromUint64(2).ExpUint64(15)

	constraints[cDstAddr] = curr[FDstFp].Mul(fp).
		Add(one.Sub(curr[FDstFp]).Mul(ap)).
		Add(curr[OffDst].Sub(b15)).
		Sub(curr[FrameDstAddr])

	constraints[cOp0Addr] = curr[FOp0Fp].Mul(fp).
		Add(one.Sub(curr[FOp0Fp]).Mul(ap)).
		Add(curr[OffOp0].Sub(b15)).
		Sub(curr[FrameOp0Addr])

	notValApFp := one.Sub(curr[FOp1Val]).Sub(curr[FOp1Ap]).Sub(curr[FOp1Fp])
	constraints[cOp1Addr] = curr[FOp1Val].Mul(pc).
		Add(curr[FOp1Ap].Mul(ap)).
		Add(curr[FOp1Fp].Mul(fp)).
		Add(notValApFp.Mul(curr[FrameOp0])).
		Add(curr[OffOp1].Sub(b15)).
		Sub(curr[FrameOp1Addr])
}

// computeRegisterConstraints evaluates the ap/fp/pc evolution constraints
// (20-25).
func computeRegisterConstraints(constraints []*core.FieldElement, frame *Frame, field *core.Field) {
	curr := frame.Current()
	next := frame.Next()

	one := field.One()
	two := field.NewElementFromUint64(2)
	instSize := frameInstSize(curr, field)

	constraints[cNextAp] = curr[FrameAp].
		Add(curr[FApAdd].Mul(curr[FrameRes])).
		Add(curr[FApOne]).
		Add(curr[FOpcCall].Mul(two)).
		Sub(next[FrameAp])

	constraints[cNextFp] = curr[FOpcRet].Mul(curr[FrameDst]).
		Add(curr[FOpcCall].Mul(curr[FrameAp].Add(two))).
		Add(one.Sub(curr[FOpcRet]).Sub(curr[FOpcCall]).Mul(curr[FrameFp])).
		Sub(next[FrameFp])

	constraints[cNextPc1] = curr[FrameT1].Sub(curr[FPcJnz]).
		Mul(next[FramePc].Sub(curr[FramePc].Add(instSize)))

	notAbsRelJnz := one.Sub(curr[FPcAbs]).Sub(curr[FPcRel]).Sub(curr[FPcJnz])
	constraints[cNextPc2] = curr[FrameT0].
		Mul(next[FramePc].Sub(curr[FramePc].Add(curr[FrameOp1]))).
		Add(one.Sub(curr[FPcJnz]).Mul(next[FramePc])).
		Sub(
			notAbsRelJnz.Mul(curr[FramePc].Add(instSize)).
				Add(curr[FPcAbs].Mul(curr[FrameRes])).
				Add(curr[FPcRel].Mul(curr[FramePc].Add(curr[FrameRes]))),
		)

	constraints[cT0] = curr[FPcJnz].Mul(curr[FrameDst]).Sub(curr[FrameT0])
	constraints[cT1] = curr[FrameT0].Mul(curr[FrameRes]).Sub(curr[FrameT1])
}

// computeOpcodeConstraints evaluates the opcode-semantics constraints
// (26-30): mul, res selection, call, assert-equal.
func computeOpcodeConstraints(constraints []*core.FieldElement, frame *Frame, field *core.Field) {
	curr := frame.Current()
	one := field.One()
	instSize := frameInstSize(curr, field)

	constraints[cMul1] = curr[FrameMul].Sub(curr[FrameOp0].Mul(curr[FrameOp1]))

	notAddMulJnz := one.Sub(curr[FResAdd]).Sub(curr[FResMul]).Sub(curr[FPcJnz])
	constraints[cMul2] = curr[FResAdd].Mul(curr[FrameOp0].Add(curr[FrameOp1])).
		Add(curr[FResMul].Mul(curr[FrameMul])).
		Add(notAddMulJnz.Mul(curr[FrameOp1])).
		Sub(one.Sub(curr[FPcJnz]).Mul(curr[FrameRes]))

	constraints[cCall1] = curr[FOpcCall].Mul(curr[FrameDst].Sub(curr[FrameFp]))
	constraints[cCall2] = curr[FOpcCall].Mul(curr[FrameOp0].Sub(curr[FramePc].Add(instSize)))
	constraints[cAssertEq] = curr[FOpcAeq].Mul(curr[FrameDst].Sub(curr[FrameRes]))
}

// enforceSelector gates instruction-semantics constraints (16-30) by
// FRAME_SELECTOR so padding rows vacuously satisfy them.
func enforceSelector(constraints []*core.FieldElement, frame *Frame) {
	selector := frame.Current()[FrameSelector]
	for i := cInst; i <= cAssertEq; i++ {
		constraints[i] = constraints[i].Mul(selector)
	}
}

// memoryIsIncreasing evaluates the memory-sort and memory-consistency
// constraints (31-38).
func memoryIsIncreasing(constraints []*core.FieldElement, frame *Frame, field *core.Field) {
	curr := frame.Current()
	next := frame.Next()
	one := field.One()

	constraints[cMemoryIncreasing0] = curr[MemoryAddrSorted0].Sub(curr[MemoryAddrSorted1]).
		Mul(curr[MemoryAddrSorted1].Sub(curr[MemoryAddrSorted0]).Sub(one))
	constraints[cMemoryIncreasing1] = curr[MemoryAddrSorted1].Sub(curr[MemoryAddrSorted2]).
		Mul(curr[MemoryAddrSorted2].Sub(curr[MemoryAddrSorted1]).Sub(one))
	constraints[cMemoryIncreasing2] = curr[MemoryAddrSorted2].Sub(curr[MemoryAddrSorted3]).
		Mul(curr[MemoryAddrSorted3].Sub(curr[MemoryAddrSorted2]).Sub(one))
	constraints[cMemoryIncreasing3] = curr[MemoryAddrSorted3].Sub(next[MemoryAddrSorted0]).
		Mul(next[MemoryAddrSorted0].Sub(curr[MemoryAddrSorted3]).Sub(one))

	constraints[cMemoryConsistency0] = curr[MemoryValuesSorted0].Sub(curr[MemoryValuesSorted1]).
		Mul(curr[MemoryAddrSorted1].Sub(curr[MemoryAddrSorted0]).Sub(one))
	constraints[cMemoryConsistency1] = curr[MemoryValuesSorted1].Sub(curr[MemoryValuesSorted2]).
		Mul(curr[MemoryAddrSorted2].Sub(curr[MemoryAddrSorted1]).Sub(one))
	constraints[cMemoryConsistency2] = curr[MemoryValuesSorted2].Sub(curr[MemoryValuesSorted3]).
		Mul(curr[MemoryAddrSorted3].Sub(curr[MemoryAddrSorted2]).Sub(one))
	constraints[cMemoryConsistency3] = curr[MemoryValuesSorted3].Sub(next[MemoryValuesSorted0]).
		Mul(next[MemoryAddrSorted0].Sub(curr[MemoryAddrSorted3]).Sub(one))
}

// permutationArgument evaluates the grand-product propagation constraints
// (39-42): the running product on the sorted stream must match the
// running product on the original stream.
func permutationArgument(constraints []*core.FieldElement, frame *Frame, challenges *RAPChallenges) {
	curr := frame.Current()
	next := frame.Next()
	z := challenges.Z
	alpha := challenges.Alpha

	p0 := curr[PermutationArgumentCol0]
	p0Next := next[PermutationArgumentCol0]
	p1 := curr[PermutationArgumentCol1]
	p2 := curr[PermutationArgumentCol2]
	p3 := curr[PermutationArgumentCol3]

	ap0Next := next[MemoryAddrSorted0]
	ap1 := curr[MemoryAddrSorted1]
	ap2 := curr[MemoryAddrSorted2]
	ap3 := curr[MemoryAddrSorted3]

	vp0Next := next[MemoryValuesSorted0]
	vp1 := curr[MemoryValuesSorted1]
	vp2 := curr[MemoryValuesSorted2]
	vp3 := curr[MemoryValuesSorted3]

	a0Next := next[FramePc]
	a1 := curr[FrameDstAddr]
	a2 := curr[FrameOp0Addr]
	a3 := curr[FrameOp1Addr]

	v0Next := next[FrameInst]
	v1 := curr[FrameDst]
	v2 := curr[FrameOp0]
	v3 := curr[FrameOp1]

	constraints[cPermutationArgument0] = z.Sub(ap1.Add(alpha.Mul(vp1))).Mul(p1).
		Sub(z.Sub(a1.Add(alpha.Mul(v1))).Mul(p0))
	constraints[cPermutationArgument1] = z.Sub(ap2.Add(alpha.Mul(vp2))).Mul(p2).
		Sub(z.Sub(a2.Add(alpha.Mul(v2))).Mul(p1))
	constraints[cPermutationArgument2] = z.Sub(ap3.Add(alpha.Mul(vp3))).Mul(p3).
		Sub(z.Sub(a3.Add(alpha.Mul(v3))).Mul(p2))
	constraints[cPermutationArgument3] = z.Sub(ap0Next.Add(alpha.Mul(vp0Next))).Mul(p0Next).
		Sub(z.Sub(a0Next.Add(alpha.Mul(v0Next))).Mul(p3))
}
