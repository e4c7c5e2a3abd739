package cairoair

import (
	"github.com/vybium/cairo-air/internal/cairoair/air"
	"github.com/vybium/cairo-air/internal/cairoair/core"
	"github.com/vybium/cairo-air/internal/cairoair/trace"
)

// Field and FieldElement are the prime-field types every public
// signature in this package traffics in.
type Field = core.Field
type FieldElement = core.FieldElement

// TraceTable is the rectangular column store the AIR builds its main and
// auxiliary traces into.
type TraceTable = trace.Table

// PublicInputs is the claim a Cairo execution is proved against.
type PublicInputs = air.PublicInputs

// Frame is a window of two consecutive trace rows used to evaluate
// transition identities.
type Frame = air.Frame

// RAPChallenges holds the two challenges (alpha, z) the auxiliary trace
// and its constraints depend on.
type RAPChallenges = air.RAPChallenges

// Transcript is the Fiat-Shamir device RAP challenges are drawn from.
type Transcript = air.Transcript

// BoundaryConstraint pins trace[Column][Row] = Value.
type BoundaryConstraint = air.BoundaryConstraint

// BoundaryConstraints is the fixed-size set of boundary constraints this
// AIR publishes.
type BoundaryConstraints = air.BoundaryConstraints

// Context publishes trace-column count, per-constraint transition
// degrees, exemptions, and offsets.
type Context = air.Context
