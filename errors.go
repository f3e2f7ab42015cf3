package rivercrossing

import "errors"

var (
	// ErrInvalidState is returned when a state breaks the partition,
	// capacity or safety rules. It signals a caller programming error and
	// is distinct from an unsolvable puzzle, which is a normal result.
	ErrInvalidState = errors.New("invalid puzzle state")

	// ErrIllegalMove is returned by State.Apply when a move's preconditions
	// do not hold or its result would be illegal.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNotAdjacent is returned by Diff when two states are not one atomic
	// action apart.
	ErrNotAdjacent = errors.New("states are not one move apart")

	// ErrSearchExhausted is returned when the solver hits its iteration cap.
	// The legal state graph is tiny, so this only fires on a broken model.
	ErrSearchExhausted = errors.New("search iteration limit exceeded")
)
