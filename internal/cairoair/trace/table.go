// Package trace holds the rectangular column store the Cairo AIR builds
// its main and auxiliary traces into: a matrix of field elements that
// supports column-subset extraction (returning a long vector, row by
// row) as well as column-wise construction.
package trace

import (
	"fmt"

	"github.com/vybium/cairo-air/internal/cairoair/core"
)

// Table is a row-major matrix of field elements with a fixed column
// count. Once built it is never mutated in place — callers construct a
// new Table for each stage of the pipeline (main, then auxiliary).
type Table struct {
	field   *core.Field
	numRows int
	numCols int
	rows    [][]*core.FieldElement
}

// NewFromColumns builds a Table from column-major data (one slice per
// column, every column the same length).
func NewFromColumns(field *core.Field, columns [][]*core.FieldElement) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("trace table must have at least one column")
	}

	numRows := len(columns[0])
	for i, col := range columns {
		if len(col) != numRows {
			return nil, fmt.Errorf("column %d has %d rows, expected %d", i, len(col), numRows)
		}
	}

	rows := make([][]*core.FieldElement, numRows)
	for r := 0; r < numRows; r++ {
		row := make([]*core.FieldElement, len(columns))
		for c, col := range columns {
			row[c] = col[r]
		}
		rows[r] = row
	}

	return &Table{field: field, numRows: numRows, numCols: len(columns), rows: rows}, nil
}

// NewZero builds a numRows x numCols table of zeros.
func NewZero(field *core.Field, numRows, numCols int) *Table {
	rows := make([][]*core.FieldElement, numRows)
	zero := field.Zero()
	for r := 0; r < numRows; r++ {
		row := make([]*core.FieldElement, numCols)
		for c := range row {
			row[c] = zero
		}
		rows[r] = row
	}
	return &Table{field: field, numRows: numRows, numCols: numCols, rows: rows}
}

// Field returns the field the table's entries belong to.
func (t *Table) Field() *core.Field { return t.field }

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.numRows }

// NumCols returns the column count.
func (t *Table) NumCols() int { return t.numCols }

// Row returns row r (0-indexed). The returned slice must not be mutated.
func (t *Table) Row(r int) []*core.FieldElement {
	return t.rows[r]
}

// Get returns the entry at (row, col).
func (t *Table) Get(row, col int) *core.FieldElement {
	return t.rows[row][col]
}

// Column extracts a single column top to bottom.
func (t *Table) Column(col int) []*core.FieldElement {
	out := make([]*core.FieldElement, t.numRows)
	for r := 0; r < t.numRows; r++ {
		out[r] = t.rows[r][col]
	}
	return out
}

// GetColumns extracts the given columns and concatenates them row-major
// into a single long vector: row 0's selected columns, then row 1's, and
// so on. The auxiliary-trace builder uses this to flatten the address
// columns (pc, dst_addr, op0_addr, op1_addr) and the value columns
// (inst, dst, op0, op1) into 4N-long address/value streams.
func (t *Table) GetColumns(cols []int) []*core.FieldElement {
	out := make([]*core.FieldElement, 0, t.numRows*len(cols))
	for r := 0; r < t.numRows; r++ {
		for _, c := range cols {
			out = append(out, t.rows[r][c])
		}
	}
	return out
}

// WithAppendedRows returns a new table with extra zero rows appended,
// leaving the receiver unmodified. Used by the main-trace builder to pad
// to trace_length.
func (t *Table) WithAppendedRows(count int) *Table {
	zero := t.field.Zero()
	rows := make([][]*core.FieldElement, t.numRows+count)
	copy(rows, t.rows)
	for i := 0; i < count; i++ {
		row := make([]*core.FieldElement, t.numCols)
		for c := range row {
			row[c] = zero
		}
		rows[t.numRows+i] = row
	}
	return &Table{field: t.field, numRows: t.numRows + count, numCols: t.numCols, rows: rows}
}

// MerkleCommit hashes every entry of the table, row-major, into a Merkle
// tree and returns its root. Convenience only; the AIR core never calls
// this itself (see package doc).
func (t *Table) MerkleCommit() ([]byte, error) {
	leaves := make([][]byte, 0, t.numRows*t.numCols)
	for r := 0; r < t.numRows; r++ {
		for c := 0; c < t.numCols; c++ {
			leaves = append(leaves, t.rows[r][c].Bytes())
		}
	}
	tree, err := core.NewMerkleTree(leaves)
	if err != nil {
		return nil, fmt.Errorf("failed to commit trace table: %w", err)
	}
	return tree.Root(), nil
}
