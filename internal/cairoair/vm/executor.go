package vm

import (
	"fmt"

	"github.com/vybium/cairo-air/internal/cairoair/core"
)

// Run interprets a Cairo program against a fresh memory image and
// returns the register-state trace and the final memory, stopping after
// at most maxSteps or when the program jumps to itself (the standard
// Cairo "jmp rel 0" halt idiom). It exists purely to produce realistic,
// internally-consistent (Trace, Memory) pairs for tests and examples; a
// production prover receives both from an actual Cairo VM and never
// calls this.
func Run(field *core.Field, program []*core.FieldElement, maxSteps int) (Trace, Memory, error) {
	memory := make(Memory, len(program)*2)
	memory.LoadProgram(program)

	pcInit := field.NewElementFromUint64(1)
	apInit := field.NewElementFromUint64(uint64(len(program) + 1))
	fpInit := apInit

	regTrace := make(Trace, 0, maxSteps)
	pc, ap, fp := pcInit, apInit, fpInit

	for step := 0; step < maxSteps; step++ {
		regTrace = append(regTrace, RegisterState{Pc: pc, Ap: ap, Fp: fp})

		nextPc, nextAp, nextFp, halted, err := executeStep(field, memory, pc, ap, fp)
		if err != nil {
			return nil, nil, fmt.Errorf("step %d: %w", step, err)
		}
		if halted {
			break
		}
		pc, ap, fp = nextPc, nextAp, nextFp
	}

	return regTrace, memory, nil
}

func executeStep(field *core.Field, memory Memory, pc, ap, fp *core.FieldElement) (nextPc, nextAp, nextFp *core.FieldElement, halted bool, err error) {
	pcAddr := pc.Big().Uint64()
	apAddr := ap.Big().Uint64()
	fpAddr := fp.Big().Uint64()

	instWord, err := memory.Get(pcAddr)
	if err != nil {
		return nil, nil, nil, false, fmt.Errorf("failed to fetch instruction at pc=%d: %w", pcAddr, err)
	}
	decoded, err := DecodeInstruction(instWord)
	if err != nil {
		return nil, nil, nil, false, err
	}

	dstAddr := resolveAddress(decoded.Flags[BitDstFp], apAddr, fpAddr, decoded.OffDst)
	op0Addr := resolveAddress(decoded.Flags[BitOp0Fp], apAddr, fpAddr, decoded.OffOp0)
	instSize := uint64(1)
	if decoded.Flags[BitOp1Val] {
		instSize = 2
	}

	// op0: read if present, else deduce (only CALL deduces op0).
	op0Val, op0Known := memory[op0Addr]
	if !op0Known {
		if !decoded.Flags[BitOpcCall] {
			return nil, nil, nil, false, fmt.Errorf("op0 at %d has no value and is not deducible", op0Addr)
		}
		op0Val = pc.Add(field.NewElementFromUint64(instSize))
		if err := memory.Set(op0Addr, op0Val); err != nil {
			return nil, nil, nil, false, err
		}
	}

	var op1Base uint64
	switch {
	case decoded.Flags[BitOp1Val]:
		op1Base = pcAddr
	case decoded.Flags[BitOp1Ap]:
		op1Base = apAddr
	case decoded.Flags[BitOp1Fp]:
		op1Base = fpAddr
	default:
		op1Base = op0Val.Big().Uint64()
	}
	op1Addr := resolveAddress(false, op1Base, op1Base, decoded.OffOp1)
	op1Val, err := memory.Get(op1Addr)
	if err != nil {
		return nil, nil, nil, false, fmt.Errorf("op1 at %d has no value: %w", op1Addr, err)
	}

	mul := op0Val.Mul(op1Val)

	var res *core.FieldElement
	switch {
	case decoded.Flags[BitPcJnz]:
		// jnz is the one opcode where res is not a function of op0/op1:
		// the transition constraints only pin res via t0=dst, t1=t0*res,
		// so when the branch is taken (dst != 0) res must be dst's
		// inverse for cNextPc1 to hold; when dst == 0, t0 (and so t1) is
		// zero regardless of res, leaving it unconstrained.
		dstForJnz, ok := memory[dstAddr]
		if !ok {
			return nil, nil, nil, false, fmt.Errorf("jnz dst at %d has no value and is not deducible", dstAddr)
		}
		if dstForJnz.IsZero() {
			res = field.Zero()
		} else {
			res, err = dstForJnz.Inv()
			if err != nil {
				return nil, nil, nil, false, fmt.Errorf("jnz requires an invertible dst: %w", err)
			}
		}
	case decoded.Flags[BitResAdd]:
		res = op0Val.Add(op1Val)
	case decoded.Flags[BitResMul]:
		res = mul
	default:
		res = op1Val
	}

	// dst: read if present, else deduce (CALL writes fp, ASSERT_EQ writes res).
	dstVal, dstKnown := memory[dstAddr]
	if !dstKnown {
		switch {
		case decoded.Flags[BitOpcCall]:
			dstVal = fp
		case decoded.Flags[BitOpcAeq]:
			dstVal = res
		default:
			return nil, nil, nil, false, fmt.Errorf("dst at %d has no value and is not deducible", dstAddr)
		}
		if err := memory.Set(dstAddr, dstVal); err != nil {
			return nil, nil, nil, false, err
		}
	}

	if decoded.Flags[BitOpcAeq] && !dstVal.Equal(res) {
		return nil, nil, nil, false, fmt.Errorf("assert_eq failed at pc=%d: dst=%s res=%s", pcAddr, dstVal, res)
	}

	// Halt idiom: an unconditional relative jump to itself (jmp rel 0).
	if decoded.Flags[BitPcRel] && !decoded.Flags[BitPcJnz] && !decoded.Flags[BitPcAbs] && op1Val.IsZero() {
		return nil, nil, nil, true, nil
	}

	switch {
	case decoded.Flags[BitPcJnz]:
		if dstVal.IsZero() {
			nextPc = pc.Add(field.NewElementFromUint64(instSize))
		} else {
			nextPc = pc.Add(op1Val)
		}
	case decoded.Flags[BitPcAbs]:
		nextPc = res
	case decoded.Flags[BitPcRel]:
		nextPc = pc.Add(res)
	default:
		nextPc = pc.Add(field.NewElementFromUint64(instSize))
	}

	switch {
	case decoded.Flags[BitOpcCall]:
		nextAp = ap.Add(field.NewElementFromUint64(2))
	case decoded.Flags[BitApAdd]:
		nextAp = ap.Add(res)
	case decoded.Flags[BitApOne]:
		nextAp = ap.Add(field.NewElementFromUint64(1))
	default:
		nextAp = ap
	}

	switch {
	case decoded.Flags[BitOpcRet]:
		nextFp = dstVal
	case decoded.Flags[BitOpcCall]:
		nextFp = ap.Add(field.NewElementFromUint64(2))
	default:
		nextFp = fp
	}

	return nextPc, nextAp, nextFp, false, nil
}
