package vm

import (
	"fmt"

	"github.com/vybium/cairo-air/internal/cairoair/air"
	"github.com/vybium/cairo-air/internal/cairoair/core"
	"github.com/vybium/cairo-air/internal/cairoair/trace"
)

const offsetBias = 1 << 15

// BuildExecutionTrace replays a Cairo register-state trace against its
// memory image and produces the non-padded 34-column main trace the AIR
// expects as input to BuildMainTrace. Each row resolves one step's
// instruction, operand addresses, operand values, and the res/t0/t1/mul
// helper values the transition constraints check.
func BuildExecutionTrace(field *core.Field, regTrace Trace, memory Memory) (*trace.Table, error) {
	if len(regTrace) == 0 {
		return nil, fmt.Errorf("cannot build execution trace from an empty register trace")
	}

	rows := make([][]*core.FieldElement, len(regTrace))
	zero := field.Zero()
	one := field.One()

	for i, state := range regTrace {
		row := make([]*core.FieldElement, air.NumMainColumns)
		for c := range row {
			row[c] = zero
		}

		pcAddr := state.Pc.Big().Uint64()
		apAddr := state.Ap.Big().Uint64()
		fpAddr := state.Fp.Big().Uint64()

		instWord, err := memory.Get(pcAddr)
		if err != nil {
			return nil, fmt.Errorf("step %d: failed to fetch instruction at pc=%d: %w", i, pcAddr, err)
		}
		decoded, err := DecodeInstruction(instWord)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		setFlag := func(col int, set bool) {
			if set {
				row[col] = one
			}
		}
		setFlag(air.FDstFp, decoded.Flags[BitDstFp])
		setFlag(air.FOp0Fp, decoded.Flags[BitOp0Fp])
		setFlag(air.FOp1Val, decoded.Flags[BitOp1Val])
		setFlag(air.FOp1Fp, decoded.Flags[BitOp1Fp])
		setFlag(air.FOp1Ap, decoded.Flags[BitOp1Ap])
		setFlag(air.FResAdd, decoded.Flags[BitResAdd])
		setFlag(air.FResMul, decoded.Flags[BitResMul])
		setFlag(air.FPcAbs, decoded.Flags[BitPcAbs])
		setFlag(air.FPcRel, decoded.Flags[BitPcRel])
		setFlag(air.FPcJnz, decoded.Flags[BitPcJnz])
		setFlag(air.FApAdd, decoded.Flags[BitApAdd])
		setFlag(air.FApOne, decoded.Flags[BitApOne])
		setFlag(air.FOpcCall, decoded.Flags[BitOpcCall])
		setFlag(air.FOpcRet, decoded.Flags[BitOpcRet])
		setFlag(air.FOpcAeq, decoded.Flags[BitOpcAeq])

		dstAddr := resolveAddress(decoded.Flags[BitDstFp], apAddr, fpAddr, decoded.OffDst)
		op0Addr := resolveAddress(decoded.Flags[BitOp0Fp], apAddr, fpAddr, decoded.OffOp0)

		dstVal, err := memory.Get(dstAddr)
		if err != nil {
			return nil, fmt.Errorf("step %d: failed to fetch dst at %d: %w", i, dstAddr, err)
		}
		op0Val, err := memory.Get(op0Addr)
		if err != nil {
			return nil, fmt.Errorf("step %d: failed to fetch op0 at %d: %w", i, op0Addr, err)
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
			return nil, fmt.Errorf("step %d: failed to fetch op1 at %d: %w", i, op1Addr, err)
		}

		mul := op0Val.Mul(op1Val)

		var res *core.FieldElement
		switch {
		case decoded.Flags[BitPcJnz]:
			// t1 = t0*res = dst*res must equal 1 whenever the branch is
			// taken (dst != 0), per cNextPc1; res is unconstrained when
			// dst == 0, since t0 is already zero there.
			if dstVal.IsZero() {
				res = zero
			} else {
				res, err = dstVal.Inv()
				if err != nil {
					return nil, fmt.Errorf("step %d: jnz requires an invertible dst: %w", i, err)
				}
			}
		case decoded.Flags[BitResAdd]:
			res = op0Val.Add(op1Val)
		case decoded.Flags[BitResMul]:
			res = mul
		default:
			res = op1Val
		}

		t0 := zero
		if decoded.Flags[BitPcJnz] {
			t0 = dstVal
		}
		t1 := t0.Mul(res)

		row[air.FrameRes] = res
		row[air.FrameAp] = state.Ap
		row[air.FrameFp] = state.Fp
		row[air.FramePc] = state.Pc
		row[air.FrameDstAddr] = field.NewElementFromUint64(dstAddr)
		row[air.FrameOp0Addr] = field.NewElementFromUint64(op0Addr)
		row[air.FrameOp1Addr] = field.NewElementFromUint64(op1Addr)
		row[air.FrameInst] = instWord
		row[air.FrameDst] = dstVal
		row[air.FrameOp0] = op0Val
		row[air.FrameOp1] = op1Val
		row[air.OffDst] = field.NewElementFromUint64(uint64(decoded.OffDst))
		row[air.OffOp0] = field.NewElementFromUint64(uint64(decoded.OffOp0))
		row[air.OffOp1] = field.NewElementFromUint64(uint64(decoded.OffOp1))
		row[air.FrameT0] = t0
		row[air.FrameT1] = t1
		row[air.FrameMul] = mul
		row[air.FrameSelector] = one

		rows[i] = row
	}

	columns := make([][]*core.FieldElement, air.NumMainColumns)
	for c := 0; c < air.NumMainColumns; c++ {
		columns[c] = make([]*core.FieldElement, len(rows))
		for r, row := range rows {
			columns[c][r] = row[c]
		}
	}

	return trace.NewFromColumns(field, columns)
}

// resolveAddress computes base + (offset - offsetBias) as a plain
// integer: fp when useFp is true, otherwise ap. Addresses in this toy
// executor are always small enough to fit in a uint64.
func resolveAddress(useFp bool, ap, fp uint64, offset uint16) uint64 {
	base := ap
	if useFp {
		base = fp
	}
	return uint64(int64(base) + int64(offset) - offsetBias)
}
