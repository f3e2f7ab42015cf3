// Package rivercrossing models the farmer, wolf, sheep and cabbage puzzle
// and solves it.
//
// A State records who stands on each bank, where the boat is moored and
// who is aboard. Characters move one atomic action at a time: Board,
// Disembark, or Cross (the Farmer rows, taking every passenger along). A
// bank left without the Farmer must not hold the Sheep together with the
// Wolf or the Cabbage; the boat itself is exempt.
//
// FindSolution runs a breadth-first search and returns a shortest sequence
// of states from a start to a goal:
//
//	sol, err := rivercrossing.FindSolution(rivercrossing.Start(), rivercrossing.Goal())
//	if err != nil {
//		// start or goal broke a rule
//	}
//	if !sol.Solvable {
//		// goal unreachable from start
//	}
//	for i, m := range sol.Moves {
//		fmt.Println(i+1, m)
//	}
//
// The package holds no global mutable state and is safe for concurrent use.
package rivercrossing
