package air

import "testing"

func TestColumnLayoutConstants(t *testing.T) {
	if NumMainColumns != 34 {
		t.Errorf("NumMainColumns = %d, want 34", NumMainColumns)
	}
	if NumAuxColumns != 12 {
		t.Errorf("NumAuxColumns = %d, want 12", NumAuxColumns)
	}
	if NumTotalColumns != NumMainColumns+NumAuxColumns {
		t.Errorf("NumTotalColumns = %d, want %d", NumTotalColumns, NumMainColumns+NumAuxColumns)
	}
	if NumTransitionConstraints != 43 {
		t.Errorf("NumTransitionConstraints = %d, want 43", NumTransitionConstraints)
	}
	if NumAuxiliaryRAPColumns != NumAuxColumns {
		t.Errorf("NumAuxiliaryRAPColumns = %d, want %d", NumAuxiliaryRAPColumns, NumAuxColumns)
	}
}

func TestBoundaryConstraintColumnAliases(t *testing.T) {
	if MemPTraceOffset != FrameAp {
		t.Errorf("MemPTraceOffset = %d, want FrameAp (%d)", MemPTraceOffset, FrameAp)
	}
	if MemATraceOffset != FramePc {
		t.Errorf("MemATraceOffset = %d, want FramePc (%d)", MemATraceOffset, FramePc)
	}
}

func TestMemoryColumnGroupsAreDisjointAndInRange(t *testing.T) {
	seen := map[int]string{}
	for _, c := range MemoryAddressColumns {
		if c < 0 || c >= NumMainColumns {
			t.Errorf("address column %d out of main-trace range", c)
		}
		seen[c] = "address"
	}
	for _, c := range MemoryValueColumns {
		if c < 0 || c >= NumMainColumns {
			t.Errorf("value column %d out of main-trace range", c)
		}
		if group, ok := seen[c]; ok {
			t.Errorf("value column %d also used as %s column", c, group)
		}
	}
}

func TestFlagColumnsAreDistinctAndBeforeFlagZero(t *testing.T) {
	flags := []int{
		FDstFp, FOp0Fp, FOp1Val, FOp1Fp, FOp1Ap,
		FResAdd, FResMul, FPcAbs, FPcRel, FPcJnz,
		FApAdd, FApOne, FOpcCall, FOpcRet, FOpcAeq,
	}
	if len(flags) != 15 {
		t.Fatalf("expected 15 flag columns, found %d", len(flags))
	}
	seen := map[int]bool{}
	for _, f := range flags {
		if seen[f] {
			t.Errorf("duplicate flag column index %d", f)
		}
		seen[f] = true
		if f >= FlagZero {
			t.Errorf("flag column %d should precede FlagZero (%d)", f, FlagZero)
		}
	}
}
