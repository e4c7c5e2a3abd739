package air

import (
	"testing"

	"github.com/vybium/cairo-air/internal/cairoair/core"
	"github.com/vybium/cairo-air/internal/cairoair/trace"
)

func buildNonPaddedMainTrace(t *testing.T, field *core.Field, numRows int) *trace.Table {
	t.Helper()
	cols := make([][]*core.FieldElement, NumMainColumns)
	for c := 0; c < NumMainColumns; c++ {
		col := make([]*core.FieldElement, numRows)
		for r := 0; r < numRows; r++ {
			col[r] = field.NewElementFromInt64(1)
		}
		cols[c] = col
	}
	table, err := trace.NewFromColumns(field, cols)
	if err != nil {
		t.Fatalf("failed to build non-padded trace: %v", err)
	}
	return table
}

func TestBuildMainTracePadsToTraceLength(t *testing.T) {
	field := core.DefaultPrimeField
	nonPadded := buildNonPaddedMainTrace(t, field, 5)

	padded, err := BuildMainTrace(nonPadded, 8)
	if err != nil {
		t.Fatalf("BuildMainTrace failed: %v", err)
	}
	if padded.NumRows() != 8 {
		t.Fatalf("NumRows() = %d, want 8", padded.NumRows())
	}
	if padded.NumCols() != NumMainColumns {
		t.Fatalf("NumCols() = %d, want %d", padded.NumCols(), NumMainColumns)
	}

	for r := 0; r < 5; r++ {
		row := padded.Row(r)
		for c, v := range row {
			if !v.Equal(field.NewElementFromInt64(1)) {
				t.Errorf("row %d col %d = %v, want original value 1", r, c, v.Big())
			}
		}
	}
	for r := 5; r < 8; r++ {
		row := padded.Row(r)
		for c, v := range row {
			if !v.IsZero() {
				t.Errorf("padding row %d col %d = %v, want 0", r, c, v.Big())
			}
		}
	}
	for r := 5; r < 8; r++ {
		if !padded.Get(r, FrameSelector).IsZero() {
			t.Errorf("padding row %d: FrameSelector = %v, want 0", r, padded.Get(r, FrameSelector).Big())
		}
	}
}

func TestBuildMainTraceNoOpWhenAlreadyAtTraceLength(t *testing.T) {
	field := core.DefaultPrimeField
	nonPadded := buildNonPaddedMainTrace(t, field, 8)

	padded, err := BuildMainTrace(nonPadded, 8)
	if err != nil {
		t.Fatalf("BuildMainTrace failed: %v", err)
	}
	if padded.NumRows() != 8 {
		t.Fatalf("NumRows() = %d, want 8", padded.NumRows())
	}
	for r := 0; r < 8; r++ {
		for c, v := range padded.Row(r) {
			if !v.Equal(field.NewElementFromInt64(1)) {
				t.Errorf("row %d col %d = %v, want original value 1", r, c, v.Big())
			}
		}
	}
}

func TestBuildMainTraceRejectsTraceLengthShorterThanInput(t *testing.T) {
	field := core.DefaultPrimeField
	nonPadded := buildNonPaddedMainTrace(t, field, 8)

	if _, err := BuildMainTrace(nonPadded, 5); err == nil {
		t.Error("expected an error when trace_length is smaller than the non-padded row count")
	}
}

func TestBuildMainTraceRejectsWrongColumnCount(t *testing.T) {
	field := core.DefaultPrimeField
	col := elems(field, 1, 2, 3)
	table, err := trace.NewFromColumns(field, [][]*core.FieldElement{col})
	if err != nil {
		t.Fatalf("failed to build test table: %v", err)
	}

	if _, err := BuildMainTrace(table, 8); err == nil {
		t.Error("expected an error for a table with the wrong column count")
	}
}
