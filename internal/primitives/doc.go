// Package primitives defines the wire forms of puzzle states and moves.
//
// StateConfig mirrors the shape the browser game reports: a list of names
// per bank, the boat position and the boat's passengers. Names may be
// English, Chinese or emoji and tolerate small typos. MoveConfig describes
// one atomic action as a character going from one place to another.
// PuzzleConfig pairs a start with an optional goal.
//
// Every type converts to and from the value types of the root package, which
// remain the only representation the solver sees.
package primitives
