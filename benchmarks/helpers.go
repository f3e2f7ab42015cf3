// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"time"

	"gopkg.in/yaml.v3"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/core"
	"github.com/comalice/rivercrossing/internal/production"
)

// Reachable returns every state reachable from the standard start, in BFS
// order.
func Reachable() []rc.State {
	g, err := rc.Explore(rc.Start())
	if err != nil {
		panic(err)
	}
	return g.States
}

// Pair is a start and goal.
type Pair struct {
	Start rc.State
	Goal  rc.State
}

// GenPairs returns n solvable pairs cycling through the reachable graph. The
// same n always yields the same pairs.
func GenPairs(n int) []Pair {
	if n < 1 {
		n = 1
	}
	states := Reachable()
	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{
			Start: states[i%len(states)],
			Goal:  states[(i*7+3)%len(states)],
		}
	}
	return pairs
}

// CanonicalReport solves the standard puzzle into a report.
func CanonicalReport() core.Report {
	sol, err := rc.FindSolution(rc.Start(), rc.Goal())
	if err != nil {
		panic(err)
	}
	return core.Report{
		ID:       "bench-report",
		Start:    rc.Start(),
		Goal:     rc.Goal(),
		Solution: sol,
		SolvedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// GenReportYAML returns the YAML document of the canonical report.
func GenReportYAML() []byte {
	data, err := yaml.Marshal(production.NewReportDocument(CanonicalReport()))
	if err != nil {
		panic(err)
	}
	return data
}
