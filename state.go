package rivercrossing

import (
	"fmt"
	"strings"
)

// Side names a shore. The boat is always moored at one of them.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Opposite returns the other shore.
func (s Side) Opposite() Side {
	if s == Right {
		return Left
	}
	return Right
}

// Capacity is the number of characters the boat can hold.
const Capacity = 2

// State is one puzzle configuration. It is a comparable value: two states
// are equal exactly when their banks, boat side and passengers are equal,
// so a State can be used directly as a map key.
//
// States are never mutated. Moves produce new values.
type State struct {
	Left       Set
	Right      Set
	Boat       Side
	Passengers Set
}

// Start returns the opening configuration: everyone on the left bank and
// the empty boat moored there.
func Start() State {
	return State{Left: Everyone, Boat: Left}
}

// Goal returns the winning configuration: everyone on the right bank and
// the empty boat moored there.
func Goal() State {
	return State{Right: Everyone, Boat: Right}
}

// Equal reports whether a and b describe the same configuration.
func Equal(a, b State) bool {
	return a == b
}

// Equal reports whether s and o describe the same configuration.
func (s State) Equal(o State) bool {
	return s == o
}

// Bank returns the characters standing on the given shore.
func (s State) Bank(side Side) Set {
	if side == Right {
		return s.Right
	}
	return s.Left
}

// withBank returns a copy of s whose bank at side is replaced by b.
func (s State) withBank(side Side, b Set) State {
	if side == Right {
		s.Right = b
	} else {
		s.Left = b
	}
	return s
}

// Where reports the location of c: on a bank, or aboard the boat.
func (s State) Where(c Character) (side Side, aboard bool) {
	switch {
	case s.Passengers.Has(c):
		return s.Boat, true
	case s.Right.Has(c):
		return Right, false
	default:
		return Left, false
	}
}

// IsLegal reports whether s satisfies the partition, capacity and safety
// rules.
func IsLegal(s State) bool {
	return s.legal()
}

// legal is the allocation-free form of Validate used on the search path.
func (s State) legal() bool {
	return (s.Boat == Left || s.Boat == Right) &&
		(s.Left|s.Right|s.Passengers) == Everyone &&
		!s.Left.Intersects(s.Right) &&
		!s.Left.Intersects(s.Passengers) &&
		!s.Right.Intersects(s.Passengers) &&
		s.Passengers.Len() <= Capacity &&
		s.Left.safe() && s.Right.safe()
}

// Validate returns nil for a legal state and otherwise an error wrapping
// ErrInvalidState naming the first rule s breaks.
//
// The boat is exempt from the safety rule: nothing happens aboard while
// characters are in transit.
func (s State) Validate() error {
	if s.Boat != Left && s.Boat != Right {
		return fmt.Errorf("%w: unknown boat side %d", ErrInvalidState, s.Boat)
	}
	if (s.Left|s.Right|s.Passengers)&^Everyone != 0 {
		return fmt.Errorf("%w: unknown character bits", ErrInvalidState)
	}
	if s.Left.Intersects(s.Right) || s.Left.Intersects(s.Passengers) || s.Right.Intersects(s.Passengers) {
		return fmt.Errorf("%w: a character appears in more than one place", ErrInvalidState)
	}
	if s.Left|s.Right|s.Passengers != Everyone {
		missing := Everyone &^ (s.Left | s.Right | s.Passengers)
		return fmt.Errorf("%w: missing %s", ErrInvalidState, missing)
	}
	if s.Passengers.Len() > Capacity {
		return fmt.Errorf("%w: %d passengers aboard, capacity is %d", ErrInvalidState, s.Passengers.Len(), Capacity)
	}
	if !s.Left.safe() {
		return fmt.Errorf("%w: left bank %s is unsupervised", ErrInvalidState, s.Left)
	}
	if !s.Right.safe() {
		return fmt.Errorf("%w: right bank %s is unsupervised", ErrInvalidState, s.Right)
	}
	return nil
}

// Key returns the canonical serialization of s: member names in
// enumeration order per bank and boat, plus the boat side.
func (s State) Key() string {
	var b strings.Builder
	b.WriteString("L:")
	b.WriteString(s.Left.String())
	b.WriteString("|R:")
	b.WriteString(s.Right.String())
	b.WriteString("|B:")
	b.WriteString(s.Boat.String())
	b.WriteString(":")
	b.WriteString(s.Passengers.String())
	return b.String()
}

func (s State) String() string {
	return fmt.Sprintf("left[%s] right[%s] boat@%s[%s]", s.Left, s.Right, s.Boat, s.Passengers)
}
