package cli

import (
	"errors"

	"github.com/spf13/cobra"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/hints"
	"github.com/comalice/rivercrossing/internal/primitives"
)

// stateOptions holds the flags that describe a start state and goal.
type stateOptions struct {
	left   []string
	right  []string
	aboard []string
	boat   string
	puzzle string
}

var stateFlags = []string{"left", "right", "aboard", "boat"}

func (o *stateOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&o.left, "left", nil, "Characters on the left bank")
	cmd.Flags().StringSliceVar(&o.right, "right", nil, "Characters on the right bank")
	cmd.Flags().StringSliceVar(&o.aboard, "aboard", nil, "Characters in the boat")
	cmd.Flags().StringVar(&o.boat, "boat", "left", "Bank the boat is moored at")
	cmd.Flags().StringVarP(&o.puzzle, "puzzle", "p", "", "YAML file with start and optional goal")
}

// resolve returns the start and goal described by the flags. Without any
// state flags it returns the standard puzzle.
func (o *stateOptions) resolve(cmd *cobra.Command) (start, goal rc.State, err error) {
	custom := false
	for _, name := range stateFlags {
		if cmd.Flags().Changed(name) {
			custom = true
		}
	}

	if o.puzzle != "" {
		if custom {
			return rc.State{}, rc.State{}, errors.New("--puzzle cannot be combined with --left, --right, --aboard or --boat")
		}
		p, err := primitives.LoadPuzzle(o.puzzle)
		if err != nil {
			return rc.State{}, rc.State{}, err
		}
		return p.Resolve()
	}

	if !custom {
		return rc.Start(), rc.Goal(), nil
	}
	sc := primitives.StateConfig{
		LeftBank:       o.left,
		RightBank:      o.right,
		BoatPosition:   o.boat,
		BoatPassengers: o.aboard,
	}
	start, err = sc.ToState()
	if err != nil {
		return rc.State{}, rc.State{}, err
	}
	return start, rc.Goal(), nil
}

// formatOptions picks the hint wording.
type formatOptions struct {
	format string
	icons  bool
}

func (o *formatOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.format, "format", "plain", "Hint format, plain or icons")
	cmd.Flags().BoolVar(&o.icons, "icons", false, "Shorthand for --format icons")
}

func (o *formatOptions) formatter() (hints.Formatter, error) {
	if o.icons {
		return hints.IconFormatter{}, nil
	}
	return hints.ByName(o.format)
}
