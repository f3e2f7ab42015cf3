package rivercrossing

import "fmt"

// MoveKind is one of the three atomic player actions.
type MoveKind uint8

const (
	// Board moves one character from the bank at the boat's side into the
	// boat.
	Board MoveKind = iota + 1
	// Disembark moves one passenger onto the bank at the boat's side.
	Disembark
	// Cross rows the boat, with all its passengers, to the other shore.
	// Only the Farmer can row.
	Cross
)

func (k MoveKind) String() string {
	switch k {
	case Board:
		return "board"
	case Disembark:
		return "disembark"
	case Cross:
		return "cross"
	}
	return "unknown"
}

// Move is one atomic action. Character is zero for Cross. Side is the shore
// the boat is moored at before the move; for Cross the boat leaves it.
type Move struct {
	Kind      MoveKind
	Character Character
	Side      Side
}

func (m Move) String() string {
	switch m.Kind {
	case Board:
		return fmt.Sprintf("%s boards at %s bank", m.Character, m.Side)
	case Disembark:
		return fmt.Sprintf("%s disembarks onto %s bank", m.Character, m.Side)
	case Cross:
		return fmt.Sprintf("boat crosses %s to %s", m.Side, m.Side.Opposite())
	}
	return "unknown move"
}

// Transition pairs a move with the state it produces.
type Transition struct {
	Move Move
	Next State
}

// Successors returns the legal states one atomic action away from s.
//
// Order is fixed and determines solver tie-breaks: every Board (Farmer,
// Wolf, Sheep, Cabbage), then every Disembark in the same character order,
// then Cross. Candidates that would leave either bank unsafe are dropped.
// Cross is only generated when the Farmer is aboard.
func Successors(s State) []Transition {
	out := make([]Transition, 0, 9)
	bank := s.Bank(s.Boat)

	if s.Passengers.Len() < Capacity {
		for _, c := range Characters {
			if !bank.Has(c) {
				continue
			}
			next := s.withBank(s.Boat, bank.Without(c))
			next.Passengers = s.Passengers.With(c)
			if next.legal() {
				out = append(out, Transition{Move: Move{Kind: Board, Character: c, Side: s.Boat}, Next: next})
			}
		}
	}

	for _, c := range Characters {
		if !s.Passengers.Has(c) {
			continue
		}
		next := s.withBank(s.Boat, bank.With(c))
		next.Passengers = s.Passengers.Without(c)
		if next.legal() {
			out = append(out, Transition{Move: Move{Kind: Disembark, Character: c, Side: s.Boat}, Next: next})
		}
	}

	if s.Passengers.Has(Farmer) {
		next := s
		next.Boat = s.Boat.Opposite()
		if next.legal() {
			out = append(out, Transition{Move: Move{Kind: Cross, Side: s.Boat}, Next: next})
		}
	}

	return out
}

// Apply performs m on s. It fails with ErrIllegalMove when m does not start
// from s's boat side, its preconditions do not hold, or the result breaks a
// rule.
func (s State) Apply(m Move) (State, error) {
	if m.Side != s.Boat {
		return s, fmt.Errorf("%w: boat is at %s bank, move expects %s", ErrIllegalMove, s.Boat, m.Side)
	}
	bank := s.Bank(s.Boat)
	next := s

	switch m.Kind {
	case Board:
		if !m.Character.Valid() || !bank.Has(m.Character) {
			return s, fmt.Errorf("%w: %s is not on the %s bank", ErrIllegalMove, m.Character, s.Boat)
		}
		if s.Passengers.Len() >= Capacity {
			return s, fmt.Errorf("%w: boat is full", ErrIllegalMove)
		}
		next = s.withBank(s.Boat, bank.Without(m.Character))
		next.Passengers = s.Passengers.With(m.Character)
	case Disembark:
		if !m.Character.Valid() || !s.Passengers.Has(m.Character) {
			return s, fmt.Errorf("%w: %s is not aboard", ErrIllegalMove, m.Character)
		}
		next = s.withBank(s.Boat, bank.With(m.Character))
		next.Passengers = s.Passengers.Without(m.Character)
	case Cross:
		if !s.Passengers.Has(Farmer) {
			return s, fmt.Errorf("%w: only the Farmer can row", ErrIllegalMove)
		}
		next.Boat = s.Boat.Opposite()
	default:
		return s, fmt.Errorf("%w: unknown move kind %d", ErrIllegalMove, m.Kind)
	}

	if err := next.Validate(); err != nil {
		return s, fmt.Errorf("%w: %s leads to %v", ErrIllegalMove, m, err)
	}
	return next, nil
}

// Diff recovers the single atomic action that turns a into b. It returns
// ErrNotAdjacent if no legal move from a produces b.
func Diff(a, b State) (Move, error) {
	for _, t := range Successors(a) {
		if t.Next == b {
			return t.Move, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %s -> %s", ErrNotAdjacent, a, b)
}
