// Package vm is a minimal Cairo-like executor used to produce test and
// example traces for the AIR in internal/cairoair/air. It is not part of
// the AIR core: the AIR consumes whatever (Trace, Memory) a real Cairo VM
// interpreter hands it, and this package exists only so tests can build
// one honestly rather than hand-crafting trace rows.
package vm

import (
	"fmt"

	"github.com/vybium/cairo-air/internal/cairoair/core"
)

// RegisterState is the (pc, ap, fp) triple at the start of one VM step.
type RegisterState struct {
	Pc *core.FieldElement
	Ap *core.FieldElement
	Fp *core.FieldElement
}

// Trace is the register-state sequence a Cairo run produces, one entry
// per executed step (not including the implicit halt state).
type Trace []RegisterState

// Memory is a sparse Cairo memory: field-valued addresses to field-valued
// contents. Cairo memory is write-once; Set enforces that.
type Memory map[uint64]*core.FieldElement

// Get reads the value at address, erroring if the cell was never written.
func (m Memory) Get(address uint64) (*core.FieldElement, error) {
	value, ok := m[address]
	if !ok {
		return nil, fmt.Errorf("memory address %d was never written", address)
	}
	return value, nil
}

// Set writes value at address. Cairo memory is write-once: writing a
// different value to an already-written address is a caller bug.
func (m Memory) Set(address uint64, value *core.FieldElement) error {
	if existing, ok := m[address]; ok && !existing.Equal(value) {
		return fmt.Errorf("memory address %d already holds a different value", address)
	}
	m[address] = value
	return nil
}

// LoadProgram writes a program's words starting at address 1, the
// convention Cairo uses so address 0 is never a valid program counter.
func (m Memory) LoadProgram(program []*core.FieldElement) {
	for i, word := range program {
		m[uint64(i+1)] = word
	}
}
