package rivercrossing

import (
	"fmt"
	"strings"
)

// StateBuilder provides a fluent API for assembling a State from the
// positions of individual characters, the way a UI reports them.
type StateBuilder struct {
	state  State
	placed Set
	errs   []string
}

// NewStateBuilder creates an empty builder with the boat on the left.
func NewStateBuilder() *StateBuilder {
	return &StateBuilder{state: State{Boat: Left}}
}

// OnLeft places characters on the left bank.
func (b *StateBuilder) OnLeft(cs ...Character) *StateBuilder {
	for _, c := range cs {
		if b.place(c) {
			b.state.Left = b.state.Left.With(c)
		}
	}
	return b
}

// OnRight places characters on the right bank.
func (b *StateBuilder) OnRight(cs ...Character) *StateBuilder {
	for _, c := range cs {
		if b.place(c) {
			b.state.Right = b.state.Right.With(c)
		}
	}
	return b
}

// Aboard places characters in the boat.
func (b *StateBuilder) Aboard(cs ...Character) *StateBuilder {
	for _, c := range cs {
		if b.place(c) {
			b.state.Passengers = b.state.Passengers.With(c)
		}
	}
	return b
}

// BoatAt moors the boat at side.
func (b *StateBuilder) BoatAt(side Side) *StateBuilder {
	b.state.Boat = side
	return b
}

// Build validates the assembled configuration and returns it.
// Placement mistakes and rule violations are reported together.
func (b *StateBuilder) Build() (State, error) {
	if len(b.errs) > 0 {
		return State{}, fmt.Errorf("%w: %s", ErrInvalidState, strings.Join(b.errs, "; "))
	}
	if err := b.state.Validate(); err != nil {
		return State{}, err
	}
	return b.state, nil
}

// MustBuild is like Build but panics on error. Intended for fixtures.
func (b *StateBuilder) MustBuild() State {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// place records c as placed, noting unknown or repeated characters.
func (b *StateBuilder) place(c Character) bool {
	if !c.Valid() {
		b.errs = append(b.errs, fmt.Sprintf("unknown character %d", c))
		return false
	}
	if b.placed.Has(c) {
		b.errs = append(b.errs, fmt.Sprintf("%s placed twice", c))
		return false
	}
	b.placed = b.placed.With(c)
	return true
}
