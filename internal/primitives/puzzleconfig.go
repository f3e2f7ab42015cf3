package primitives

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	rc "github.com/comalice/rivercrossing"
)

// PuzzleConfig pairs a start state with an optional goal. A nil Goal means
// the standard goal.
type PuzzleConfig struct {
	Start StateConfig  `json:"start" yaml:"start" validate:"required"`
	Goal  *StateConfig `json:"goal,omitempty" yaml:"goal,omitempty"`
}

// DefaultPuzzle returns the standard start and goal.
func DefaultPuzzle() PuzzleConfig {
	goal := FromState(rc.Goal())
	return PuzzleConfig{Start: FromState(rc.Start()), Goal: &goal}
}

// Resolve converts both endpoints.
func (p *PuzzleConfig) Resolve() (start, goal rc.State, err error) {
	start, err = p.Start.ToState()
	if err != nil {
		return rc.State{}, rc.State{}, fmt.Errorf("start: %w", err)
	}
	if p.Goal == nil {
		return start, rc.Goal(), nil
	}
	goal, err = p.Goal.ToState()
	if err != nil {
		return rc.State{}, rc.State{}, fmt.Errorf("goal: %w", err)
	}
	return start, goal, nil
}

// ParsePuzzle decodes a puzzle from YAML.
func ParsePuzzle(data []byte) (PuzzleConfig, error) {
	var p PuzzleConfig
	if err := yaml.Unmarshal(data, &p); err != nil {
		return PuzzleConfig{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return p, nil
}

// LoadPuzzle reads and decodes a puzzle file.
func LoadPuzzle(path string) (PuzzleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PuzzleConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParsePuzzle(data)
}
