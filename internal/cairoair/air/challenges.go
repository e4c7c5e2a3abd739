package air

import (
	"github.com/vybium/cairo-air/internal/cairoair/core"
)

// Transcript is the Fiat-Shamir device the AIR draws challenges from. The
// core only ever calls Challenge, twice per proof; AppendBytes is
// part of the interface so a caller can absorb trace commitments on the
// same transcript before challenges are drawn.
type Transcript interface {
	AppendBytes(data []byte)
	Challenge() *core.FieldElement
}

// RAPChallenges holds the two challenges the auxiliary trace and its
// constraints depend on.
type RAPChallenges struct {
	Alpha *core.FieldElement
	Z     *core.FieldElement
}

// BuildRAPChallenges draws alpha then z from the transcript, in that
// order. Prover and verifier must call this against transcripts
// in identical states to agree on the same challenges.
func BuildRAPChallenges(transcript Transcript) *RAPChallenges {
	alpha := transcript.Challenge()
	z := transcript.Challenge()
	return &RAPChallenges{Alpha: alpha, Z: z}
}
