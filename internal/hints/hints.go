// Package hints turns a solution into a list of human-readable steps: a
// header with the step count, then one entry per move with the action and
// the contents of both banks and the boat afterwards.
package hints

import (
	"errors"
	"fmt"
	"strings"

	rc "github.com/comalice/rivercrossing"
)

// ErrInconsistent is returned when a solution's moves and path disagree.
var ErrInconsistent = errors.New("inconsistent solution")

// Kind classifies a hint.
type Kind string

const (
	KindHeader     Kind = "header"
	KindStep       Kind = "step"
	KindNoSolution Kind = "no_solution"
)

// Hint is one rendered line.
type Hint struct {
	Kind Kind   `json:"type"`
	Step int    `json:"stepNumber,omitempty"`
	Text string `json:"text,omitempty"`

	Action    string `json:"action,omitempty"`
	LeftBank  string `json:"leftBank,omitempty"`
	RightBank string `json:"rightBank,omitempty"`
	Boat      string `json:"boat,omitempty"`
}

func (h Hint) String() string {
	if h.Kind != KindStep {
		return h.Text
	}
	return fmt.Sprintf("%d. %s | %s | %s | %s", h.Step, h.Action, h.LeftBank, h.RightBank, h.Boat)
}

// Formatter chooses the wording of hints.
type Formatter interface {
	Header(steps int) string
	Action(m rc.Move) string
	Place(side rc.Side, s rc.Set) string
	Boat(s rc.Set) string
	NoSolution() string
}

// Render formats sol. An unsolvable solution renders as a single
// KindNoSolution hint.
func Render(sol rc.Solution, f Formatter) ([]Hint, error) {
	if !sol.Solvable {
		return []Hint{{Kind: KindNoSolution, Text: f.NoSolution()}}, nil
	}
	if len(sol.Path) == 0 || len(sol.Moves) != len(sol.Path)-1 {
		return nil, fmt.Errorf("%w: %d states, %d moves", ErrInconsistent, len(sol.Path), len(sol.Moves))
	}

	out := make([]Hint, 0, len(sol.Moves)+1)
	out = append(out, Hint{Kind: KindHeader, Text: f.Header(len(sol.Moves))})
	for i, m := range sol.Moves {
		next := sol.Path[i+1]
		out = append(out, Hint{
			Kind:      KindStep,
			Step:      i + 1,
			Action:    f.Action(m),
			LeftBank:  f.Place(rc.Left, next.Left),
			RightBank: f.Place(rc.Right, next.Right),
			Boat:      f.Boat(next.Passengers),
		})
	}
	return out, nil
}

// Lines renders sol to plain strings.
func Lines(sol rc.Solution, f Formatter) ([]string, error) {
	hs, err := Render(sol, f)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.String()
	}
	return out, nil
}

// ByName returns the formatter for "plain" or "icons".
func ByName(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "plain", "text":
		return PlainFormatter{}, nil
	case "icons", "icon", "emoji":
		return IconFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown hint format %q", name)
}
