package primitives

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	rc "github.com/comalice/rivercrossing"
)

// ErrMalformed is returned when a wire value is structurally wrong: a
// missing field, an unknown name, too many entries.
var ErrMalformed = errors.New("malformed input")

// validate is the validator instance for wire types. Initialized in init()
// with the character name check.
var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("character", validateCharacter); err != nil {
		panic(fmt.Sprintf("primitives: register character validation: %v", err))
	}
}

// validateCharacter accepts any name ParseCharacter resolves.
func validateCharacter(fl validator.FieldLevel) bool {
	_, err := ParseCharacter(fl.Field().String())
	return err == nil
}

// StateConfig is the wire form of a puzzle state.
type StateConfig struct {
	LeftBank       []string `json:"leftBank" yaml:"left_bank" validate:"max=4,dive,character"`
	RightBank      []string `json:"rightBank" yaml:"right_bank" validate:"max=4,dive,character"`
	BoatPosition   string   `json:"boatPosition" yaml:"boat_position" validate:"required,oneof=left right"`
	BoatPassengers []string `json:"boatPassengers" yaml:"boat_passengers" validate:"max=2,dive,character"`
}

// Validate checks the structure of the config. Puzzle rules are checked by
// ToState.
func (s *StateConfig) Validate() error {
	return structError(validate.Struct(s))
}

// ToState validates the config and converts it. Structural problems wrap
// ErrMalformed; rule violations wrap rivercrossing.ErrInvalidState.
func (s *StateConfig) ToState() (rc.State, error) {
	if err := s.Validate(); err != nil {
		return rc.State{}, err
	}
	left, err := ParseCharacters(s.LeftBank)
	if err != nil {
		return rc.State{}, err
	}
	right, err := ParseCharacters(s.RightBank)
	if err != nil {
		return rc.State{}, err
	}
	aboard, err := ParseCharacters(s.BoatPassengers)
	if err != nil {
		return rc.State{}, err
	}
	side, err := ParseSide(s.BoatPosition)
	if err != nil {
		return rc.State{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return rc.NewStateBuilder().
		OnLeft(left...).
		OnRight(right...).
		Aboard(aboard...).
		BoatAt(side).
		Build()
}

// FromState converts s to its wire form with names in enumeration order.
func FromState(s rc.State) StateConfig {
	return StateConfig{
		LeftBank:       Names(s.Left),
		RightBank:      Names(s.Right),
		BoatPosition:   s.Boat.String(),
		BoatPassengers: Names(s.Passengers),
	}
}

// FromPath converts every state of a path.
func FromPath(path []rc.State) []StateConfig {
	out := make([]StateConfig, len(path))
	for i, s := range path {
		out[i] = FromState(s)
	}
	return out
}

// structError flattens validator errors into one ErrMalformed error.
func structError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrMalformed, strings.Join(msgs, "; "))
}
