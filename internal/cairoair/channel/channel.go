// Package channel implements the Fiat-Shamir transcript the AIR draws its
// RAP challenges from. The AIR core only ever calls Challenge() twice per
// proof; the AppendBytes surface exists because a real
// transcript needs to absorb the main-trace commitment first so that
// prover and verifier draw identical challenges.
package channel

import (
	"golang.org/x/crypto/sha3"

	"github.com/vybium/cairo-air/internal/cairoair/core"
)

// Channel is a sha3-based Fiat-Shamir transcript.
type Channel struct {
	state []byte
	log   []string
	field *core.Field
}

// New creates a channel that draws challenges from the given field.
func New(field *core.Field) *Channel {
	return &Channel{
		state: []byte{0},
		log:   make([]string, 0, 16),
		field: field,
	}
}

// AppendBytes absorbs data into the transcript state.
func (c *Channel) AppendBytes(data []byte) {
	c.log = append(c.log, "send")
	c.state = hash(append(append([]byte(nil), c.state...), data...))
}

// Challenge draws one field element from the transcript state. Each call
// also advances the internal state so two consecutive draws (alpha then
// z) never repeat.
func (c *Channel) Challenge() *core.FieldElement {
	c.log = append(c.log, "draw")
	value := c.field.NewElement(bytesToBigInt(c.state))
	c.state = hash(c.state)
	return value
}

// State returns a copy of the current transcript state.
func (c *Channel) State() []byte {
	return append([]byte(nil), c.state...)
}

func hash(data []byte) []byte {
	h := sha3.Sum256(data)
	return h[:]
}
