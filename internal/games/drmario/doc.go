// Package drmario implements the rules of a Dr. Mario style falling-capsule
// puzzle: a field seeded with viruses, a two-segment faller that moves,
// rotates and drops, and a resolver that marks and clears same-colored runs
// and lets the rest of the field fall.
//
// The package is UI-agnostic and deterministic. Drivers call the exported
// operations one at a time and render a Snapshot after each.
package drmario
