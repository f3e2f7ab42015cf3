package production

import (
	"fmt"
	"time"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/core"
	"github.com/comalice/rivercrossing/internal/primitives"
)

// ReportDocument is the serialized form of a core.Report. States and moves
// use their wire forms so files stay readable and stable.
type ReportDocument struct {
	ID          string                   `json:"id" yaml:"id"`
	Start       primitives.StateConfig   `json:"start" yaml:"start"`
	Goal        primitives.StateConfig   `json:"goal" yaml:"goal"`
	Solvable    bool                     `json:"solvable" yaml:"solvable"`
	Steps       int                      `json:"steps" yaml:"steps"`
	Crossings   int                      `json:"crossings" yaml:"crossings"`
	Explored    int                      `json:"explored" yaml:"explored"`
	Path        []primitives.StateConfig `json:"path,omitempty" yaml:"path,omitempty"`
	Moves       []primitives.MoveConfig  `json:"moves,omitempty" yaml:"moves,omitempty"`
	Fingerprint string                   `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	SolvedAt    time.Time                `json:"solvedAt" yaml:"solved_at"`
}

// NewReportDocument converts r.
func NewReportDocument(r core.Report) ReportDocument {
	doc := ReportDocument{
		ID:          r.ID,
		Start:       primitives.FromState(r.Start),
		Goal:        primitives.FromState(r.Goal),
		Solvable:    r.Solution.Solvable,
		Steps:       r.Solution.NumMoves(),
		Crossings:   r.Solution.Crossings(),
		Explored:    r.Solution.Explored,
		Fingerprint: r.Fingerprint,
		SolvedAt:    r.SolvedAt,
	}
	if r.Solution.Solvable {
		doc.Path = primitives.FromPath(r.Solution.Path)
		doc.Moves = primitives.FromMoves(r.Solution.Moves)
	}
	return doc
}

// Report converts the document back, checking that the stored path is
// valid and matches its fingerprint.
func (d ReportDocument) Report() (core.Report, error) {
	start, err := d.Start.ToState()
	if err != nil {
		return core.Report{}, fmt.Errorf("start: %w", err)
	}
	goal, err := d.Goal.ToState()
	if err != nil {
		return core.Report{}, fmt.Errorf("goal: %w", err)
	}

	r := core.Report{
		ID:          d.ID,
		Start:       start,
		Goal:        goal,
		Fingerprint: d.Fingerprint,
		SolvedAt:    d.SolvedAt,
		Solution:    rc.Solution{Solvable: d.Solvable, Explored: d.Explored},
	}
	if !d.Solvable {
		return r, nil
	}

	path := make([]rc.State, 0, len(d.Path))
	for i, sc := range d.Path {
		s, err := sc.ToState()
		if err != nil {
			return core.Report{}, fmt.Errorf("path[%d]: %w", i, err)
		}
		path = append(path, s)
	}
	moves := make([]rc.Move, 0, len(d.Moves))
	for i, mc := range d.Moves {
		m, err := mc.ToMove()
		if err != nil {
			return core.Report{}, fmt.Errorf("moves[%d]: %w", i, err)
		}
		moves = append(moves, m)
	}
	if len(path) == 0 || path[0] != start || path[len(path)-1] != goal || len(moves) != len(path)-1 {
		return core.Report{}, fmt.Errorf("report %s: path does not connect start to goal", d.ID)
	}
	for i, m := range moves {
		next, err := path[i].Apply(m)
		if err != nil || next != path[i+1] {
			return core.Report{}, fmt.Errorf("report %s: step %d does not follow", d.ID, i+1)
		}
	}
	if fp := primitives.Fingerprint(path); d.Fingerprint != "" && fp != d.Fingerprint {
		return core.Report{}, fmt.Errorf("report %s: fingerprint mismatch", d.ID)
	}

	r.Solution.Path = path
	r.Solution.Moves = moves
	return r, nil
}
