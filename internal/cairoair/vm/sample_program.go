package vm

import "github.com/vybium/cairo-air/internal/cairoair/core"

// SampleProgram builds a tiny, hand-assembled Cairo program used by tests
// and examples: it calls forward to a trivial assert-equal check, then
// halts with the standard "jmp rel 0" idiom. It exists so the AIR has a
// realistic, internally consistent trace to exercise end-to-end without
// depending on an external Cairo compiler.
//
// Layout (word addresses 1-6, one-indexed):
//
//	1: call abs 3        (2 words: opcode, target)
//	3: assert_eq [fp-1] = 3   (2 words: opcode, immediate 3)
//	5: jmp rel 0         (2 words: opcode, immediate 0; halts)
func SampleProgram(field *core.Field) []*core.FieldElement {
	callInst := EncodeInstruction(field, &DecodedInstruction{
		Flags:  flagSet(BitOpcCall, BitPcAbs, BitOp1Val),
		OffDst: offsetBias + 0,
		OffOp0: offsetBias + 1,
		OffOp1: offsetBias + 1,
	})
	callTarget := field.NewElementFromUint64(3)

	assertInst := EncodeInstruction(field, &DecodedInstruction{
		Flags:  flagSet(BitOpcAeq, BitDstFp, BitOp0Fp, BitOp1Val),
		OffDst: offsetBias - 1,
		OffOp0: offsetBias - 2,
		OffOp1: offsetBias + 1,
	})
	assertImmediate := field.NewElementFromUint64(3)

	haltInst := EncodeInstruction(field, &DecodedInstruction{
		Flags:  flagSet(BitPcRel, BitDstFp, BitOp0Fp, BitOp1Val),
		OffDst: offsetBias - 1,
		OffOp0: offsetBias - 2,
		OffOp1: offsetBias + 1,
	})
	haltImmediate := field.Zero()

	return []*core.FieldElement{
		callInst, callTarget,
		assertInst, assertImmediate,
		haltInst, haltImmediate,
	}
}

// JnzProgram builds a tiny call/branch/halt program exercising a taken
// jnz: the call seeds a nonzero return-address cell, the jnz instruction
// branches on it and jumps over two dead words, and execution halts with
// the same "jmp rel 0" idiom as SampleProgram.
//
// Layout (word addresses 1-8, one-indexed):
//
//	1: call abs 3              (2 words: opcode, target)
//	3: jnz rel 4 if [fp-1] != 0   (2 words: opcode, jump distance 4)
//	5: (dead, never executed)  (2 words)
//	7: jmp rel 0               (2 words: opcode, immediate 0; halts)
func JnzProgram(field *core.Field) []*core.FieldElement {
	callInst := EncodeInstruction(field, &DecodedInstruction{
		Flags:  flagSet(BitOpcCall, BitPcAbs, BitOp1Val),
		OffDst: offsetBias + 0,
		OffOp0: offsetBias + 1,
		OffOp1: offsetBias + 1,
	})
	callTarget := field.NewElementFromUint64(3)

	jnzInst := EncodeInstruction(field, &DecodedInstruction{
		Flags:  flagSet(BitPcJnz, BitDstFp, BitOp0Fp, BitOp1Val),
		OffDst: offsetBias - 1,
		OffOp0: offsetBias - 1,
		OffOp1: offsetBias + 1,
	})
	jnzDistance := field.NewElementFromUint64(4)

	haltInst := EncodeInstruction(field, &DecodedInstruction{
		Flags:  flagSet(BitPcRel, BitDstFp, BitOp0Fp, BitOp1Val),
		OffDst: offsetBias - 1,
		OffOp0: offsetBias - 2,
		OffOp1: offsetBias + 1,
	})
	haltImmediate := field.Zero()

	return []*core.FieldElement{
		callInst, callTarget,
		jnzInst, jnzDistance,
		field.Zero(), field.Zero(),
		haltInst, haltImmediate,
	}
}

func flagSet(bits ...int) [15]bool {
	var flags [15]bool
	for _, b := range bits {
		flags[b] = true
	}
	return flags
}
