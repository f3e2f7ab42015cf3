package rivercrossing

import (
	"fmt"
	"slices"
)

// DefaultMaxIterations bounds how many states one search may dequeue. The
// reachable graph holds well under a hundred states.
const DefaultMaxIterations = 10_000

// Solution is the outcome of one search.
//
// When Solvable is false the goal cannot be reached from the start; Path
// and Moves are nil. This is a normal result, not an error. When start
// equals goal, Path holds that single state and Moves is empty.
type Solution struct {
	Solvable bool
	// Path runs from start (index 0) to goal (last index) inclusive.
	Path []State
	// Moves[i] turns Path[i] into Path[i+1].
	Moves []Move
	// Explored counts the states dequeued during the search.
	Explored int
}

// NumMoves returns the number of atomic actions in the solution, or -1 if
// there is none.
func (s Solution) NumMoves() int {
	if !s.Solvable {
		return -1
	}
	return len(s.Moves)
}

// Crossings counts the Cross moves in the solution.
func (s Solution) Crossings() int {
	n := 0
	for _, m := range s.Moves {
		if m.Kind == Cross {
			n++
		}
	}
	return n
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithMaxIterations overrides the dequeue cap. Non-positive values keep the
// default.
func WithMaxIterations(n int) SolverOption {
	return func(s *Solver) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

// Solver runs breadth-first searches over the legal state graph. It holds
// only configuration, so one Solver may serve concurrent calls.
type Solver struct {
	maxIterations int
}

// NewSolver creates a Solver.
func NewSolver(opts ...SolverOption) *Solver {
	s := &Solver{maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxIterations returns the configured dequeue cap.
func (s *Solver) MaxIterations() int {
	return s.maxIterations
}

var defaultSolver = NewSolver()

// FindSolution searches with the default solver.
func FindSolution(start, goal State) (Solution, error) {
	return defaultSolver.FindSolution(start, goal)
}

// FindSolution returns a shortest path from start to goal.
//
// Both states must be legal; otherwise the error wraps ErrInvalidState and
// no search runs. Among equally short paths the one found first under the
// Successors order is returned, so results are deterministic.
func (s *Solver) FindSolution(start, goal State) (Solution, error) {
	if err := start.Validate(); err != nil {
		return Solution{}, fmt.Errorf("start: %w", err)
	}
	if err := goal.Validate(); err != nil {
		return Solution{}, fmt.Errorf("goal: %w", err)
	}

	// States are canonical bitmasks, so they key the maps directly.
	parent := map[State]step{}
	visited := map[State]bool{start: true}
	queue := []State{start}
	explored := 0

	for len(queue) > 0 {
		if explored >= s.maxIterations {
			return Solution{Explored: explored}, fmt.Errorf("%w: %d states dequeued", ErrSearchExhausted, explored)
		}

		current := queue[0]
		queue = queue[1:]
		explored++

		if current == goal {
			sol := reconstruct(start, goal, parent)
			sol.Explored = explored
			return sol, nil
		}

		for _, t := range Successors(current) {
			if visited[t.Next] {
				continue
			}
			visited[t.Next] = true
			parent[t.Next] = step{from: current, move: t.Move}
			queue = append(queue, t.Next)
		}
	}

	return Solution{Explored: explored}, nil
}

// step is a parent pointer: the state a search node was reached from and
// the move that reached it.
type step struct {
	from State
	move Move
}

// reconstruct walks parent pointers from goal back to start.
func reconstruct(start, goal State, parent map[State]step) Solution {
	path := []State{goal}
	var moves []Move
	for cur := goal; cur != start; {
		p := parent[cur]
		moves = append(moves, p.move)
		path = append(path, p.from)
		cur = p.from
	}
	slices.Reverse(path)
	slices.Reverse(moves)
	if moves == nil {
		moves = []Move{}
	}
	return Solution{Solvable: true, Path: path, Moves: moves}
}
