// Package air implements the Cairo AIR: the 34-column main trace, the
// 12-column auxiliary permutation trace, the 43 transition constraints and
// 5 boundary constraints that together certify a Cairo execution.
package air

// Main trace column indices (0-33). Flags 0-14 are boolean, column 15 is
// an always-zero placeholder, and the rest carry resolved register and
// memory values for the current step.
const (
	FDstFp  = 0
	FOp0Fp  = 1
	FOp1Val = 2
	FOp1Fp  = 3
	FOp1Ap  = 4
	FResAdd = 5
	FResMul = 6
	FPcAbs  = 7
	FPcRel  = 8
	FPcJnz  = 9
	FApAdd  = 10
	FApOne  = 11
	FOpcCall = 12
	FOpcRet  = 13
	FOpcAeq  = 14

	FlagZero = 15 // always 0; reserved placeholder

	FrameRes = 16
	FrameAp  = 17
	FrameFp  = 18
	FramePc  = 19

	FrameDstAddr = 20
	FrameOp0Addr = 21
	FrameOp1Addr = 22

	FrameInst = 23
	FrameDst  = 24
	FrameOp0  = 25
	FrameOp1  = 26

	OffDst = 27
	OffOp0 = 28
	OffOp1 = 29

	FrameT0       = 30
	FrameT1       = 31
	FrameMul      = 32
	FrameSelector = 33

	// NumMainColumns is the width of the main trace.
	NumMainColumns = 34
)

// Auxiliary trace column indices (34-45), relative to a full main+aux row.
const (
	MemoryAddrSorted0 = 34
	MemoryAddrSorted1 = 35
	MemoryAddrSorted2 = 36
	MemoryAddrSorted3 = 37

	MemoryValuesSorted0 = 38
	MemoryValuesSorted1 = 39
	MemoryValuesSorted2 = 40
	MemoryValuesSorted3 = 41

	PermutationArgumentCol0 = 42
	PermutationArgumentCol1 = 43
	PermutationArgumentCol2 = 44
	PermutationArgumentCol3 = 45

	// NumAuxColumns is the width of the auxiliary trace.
	NumAuxColumns = 12

	// NumTotalColumns is the width of a main+aux row, as seen by a Frame.
	NumTotalColumns = NumMainColumns + NumAuxColumns
)

// MemPTraceOffset and MemATraceOffset are the boundary-constraint column
// aliases for the ap and pc columns.
const (
	MemPTraceOffset = FrameAp
	MemATraceOffset = FramePc
)

// MemoryAddressColumns and MemoryValueColumns list the 8 columns whose
// row-major flattening produces
// the original (unsorted) address/value streams consumed by the
// auxiliary-trace builder.
var MemoryAddressColumns = [4]int{FramePc, FrameDstAddr, FrameOp0Addr, FrameOp1Addr}
var MemoryValueColumns = [4]int{FrameInst, FrameDst, FrameOp0, FrameOp1}

// NumTransitionConstraints is the number of transition identities per frame.
const NumTransitionConstraints = 43

// NumAuxiliaryRAPColumns is the width of the RAP auxiliary trace.
const NumAuxiliaryRAPColumns = 12
