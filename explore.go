package rivercrossing

import "fmt"

// Edge is one legal atomic action between two states.
type Edge struct {
	From State
	To   State
	Move Move
}

// StateGraph is the part of the legal state graph reachable from Root.
type StateGraph struct {
	Root State
	// States are listed in breadth-first discovery order.
	States []State
	// Depth maps each state to its distance in moves from Root.
	Depth map[State]int
	// Edges holds every legal transition between listed states, in
	// discovery order of the source state and Successors order within it.
	Edges []Edge
}

// Contains reports whether s is reachable from the root.
func (g StateGraph) Contains(s State) bool {
	_, ok := g.Depth[s]
	return ok
}

// Diameter returns the largest depth in the graph.
func (g StateGraph) Diameter() int {
	max := 0
	for _, d := range g.Depth {
		if d > max {
			max = d
		}
	}
	return max
}

// Explore enumerates every legal state reachable from root.
func Explore(root State) (StateGraph, error) {
	if err := root.Validate(); err != nil {
		return StateGraph{}, fmt.Errorf("root: %w", err)
	}

	g := StateGraph{
		Root:   root,
		States: []State{root},
		Depth:  map[State]int{root: 0},
	}
	for i := 0; i < len(g.States); i++ {
		cur := g.States[i]
		for _, t := range Successors(cur) {
			g.Edges = append(g.Edges, Edge{From: cur, To: t.Next, Move: t.Move})
			if _, seen := g.Depth[t.Next]; seen {
				continue
			}
			g.Depth[t.Next] = g.Depth[cur] + 1
			g.States = append(g.States, t.Next)
		}
	}
	return g, nil
}
