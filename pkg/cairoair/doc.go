// Package cairoair exposes the Cairo AIR contract: the set of functions
// a STARK prover calls to turn a Cairo execution into a padded main
// trace, an auxiliary permutation trace, transition constraint
// evaluations, and boundary constraints. See internal/cairoair/air for
// the implementation; this package is a thin, stable facade over it.
package cairoair
