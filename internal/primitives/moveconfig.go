package primitives

import (
	"fmt"

	rc "github.com/comalice/rivercrossing"
)

// Place names used by MoveConfig.
const (
	PlaceLeft  = "left"
	PlaceRight = "right"
	PlaceBoat  = "boat"
)

// MoveConfig is the wire form of a move: a character going From one place
// To another, or the boat crossing.
type MoveConfig struct {
	Type      string `json:"type" yaml:"type" validate:"required,oneof=board disembark cross"`
	Character string `json:"character,omitempty" yaml:"character,omitempty" validate:"omitempty,character"`
	From      string `json:"from" yaml:"from" validate:"required,oneof=left right boat"`
	To        string `json:"to" yaml:"to" validate:"required,oneof=left right boat"`
}

// FromMove converts m to its wire form.
func FromMove(m rc.Move) MoveConfig {
	side := m.Side.String()
	switch m.Kind {
	case rc.Board:
		return MoveConfig{Type: m.Kind.String(), Character: m.Character.String(), From: side, To: PlaceBoat}
	case rc.Disembark:
		return MoveConfig{Type: m.Kind.String(), Character: m.Character.String(), From: PlaceBoat, To: side}
	default:
		return MoveConfig{Type: m.Kind.String(), From: side, To: m.Side.Opposite().String()}
	}
}

// Validate checks the structure of the config.
func (m *MoveConfig) Validate() error {
	return structError(validate.Struct(m))
}

// ToMove validates the config and converts it. From and To must agree with
// Type: boarding goes from a bank to the boat, disembarking the reverse, and
// crossing goes from one bank to the other.
func (m *MoveConfig) ToMove() (rc.Move, error) {
	if err := m.Validate(); err != nil {
		return rc.Move{}, err
	}

	switch m.Type {
	case "board":
		c, err := ParseCharacter(m.Character)
		if err != nil {
			return rc.Move{}, err
		}
		if m.To != PlaceBoat || m.From == PlaceBoat {
			return rc.Move{}, fmt.Errorf("%w: board goes from a bank to the boat", ErrMalformed)
		}
		side, _ := ParseSide(m.From)
		return rc.Move{Kind: rc.Board, Character: c, Side: side}, nil
	case "disembark":
		c, err := ParseCharacter(m.Character)
		if err != nil {
			return rc.Move{}, err
		}
		if m.From != PlaceBoat || m.To == PlaceBoat {
			return rc.Move{}, fmt.Errorf("%w: disembark goes from the boat to a bank", ErrMalformed)
		}
		side, _ := ParseSide(m.To)
		return rc.Move{Kind: rc.Disembark, Character: c, Side: side}, nil
	default:
		if m.From == PlaceBoat || m.To == PlaceBoat || m.From == m.To {
			return rc.Move{}, fmt.Errorf("%w: cross goes from one bank to the other", ErrMalformed)
		}
		side, _ := ParseSide(m.From)
		return rc.Move{Kind: rc.Cross, Side: side}, nil
	}
}

// FromMoves converts a move list.
func FromMoves(moves []rc.Move) []MoveConfig {
	out := make([]MoveConfig, len(moves))
	for i, m := range moves {
		out[i] = FromMove(m)
	}
	return out
}
