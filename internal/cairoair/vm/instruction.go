package vm

import (
	"fmt"
	"math/big"

	"github.com/vybium/cairo-air/internal/cairoair/core"
)

// DecodedInstruction is a Cairo instruction word split into its 15 flag
// bits and its three 16-bit biased offsets, matching the packing
// computed by the instruction-unpacking transition constraint
// (OFF_DST + b16*OFF_OP0 + b32*OFF_OP1 + b48*flags = FRAME_INST).
type DecodedInstruction struct {
	Flags  [15]bool
	OffDst uint16
	OffOp0 uint16
	OffOp1 uint16
}

// Flag bit positions, in the order the AIR's flag columns expect them.
const (
	BitDstFp = iota
	BitOp0Fp
	BitOp1Val
	BitOp1Fp
	BitOp1Ap
	BitResAdd
	BitResMul
	BitPcAbs
	BitPcRel
	BitPcJnz
	BitApAdd
	BitApOne
	BitOpcCall
	BitOpcRet
	BitOpcAeq
)

const (
	b16Shift = 16
	b32Shift = 32
	b48Shift = 48
	offsetMask = 0xFFFF
)

// DecodeInstruction unpacks a single instruction word.
func DecodeInstruction(word *core.FieldElement) (*DecodedInstruction, error) {
	value := word.Big()
	if value.Sign() < 0 || value.BitLen() > 63 {
		return nil, fmt.Errorf("instruction word %s does not fit in 63 bits", value.String())
	}

	u := value.Uint64()
	decoded := &DecodedInstruction{
		OffDst: uint16(u & offsetMask),
		OffOp0: uint16((u >> b16Shift) & offsetMask),
		OffOp1: uint16((u >> b32Shift) & offsetMask),
	}
	flagBits := (u >> b48Shift) & 0x7FFF
	for i := 0; i < 15; i++ {
		decoded.Flags[i] = (flagBits>>uint(i))&1 == 1
	}
	return decoded, nil
}

// EncodeInstruction packs a decoded instruction back into a field
// element, the inverse of DecodeInstruction.
func EncodeInstruction(field *core.Field, decoded *DecodedInstruction) *core.FieldElement {
	value := new(big.Int)
	value.Or(value, big.NewInt(int64(decoded.OffDst)))
	value.Or(value, new(big.Int).Lsh(big.NewInt(int64(decoded.OffOp0)), b16Shift))
	value.Or(value, new(big.Int).Lsh(big.NewInt(int64(decoded.OffOp1)), b32Shift))

	var flagBits uint64
	for i := 0; i < 15; i++ {
		if decoded.Flags[i] {
			flagBits |= 1 << uint(i)
		}
	}
	value.Or(value, new(big.Int).Lsh(new(big.Int).SetUint64(flagBits), b48Shift))

	return field.NewElement(value)
}
