package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/core"
	"github.com/comalice/rivercrossing/internal/hints"
)

// solveOptions holds options for the solve command.
type solveOptions struct {
	state      stateOptions
	format     formatOptions
	jsonOutput bool
	export     bool
}

// newSolveCmd creates the solve command.
func (a *App) newSolveCmd() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the shortest solution from a state to the goal",
		Long: `Find the shortest sequence of actions from a start state to the goal and
print it as numbered hints.

Without state flags the standard puzzle is solved: everyone on the left bank,
the boat empty on the left. Characters may be named in English, Chinese or
with their emoji, and small typos are tolerated.

Examples:
  # Solve the standard puzzle
  rivercrossing solve

  # Solve from a custom state
  rivercrossing solve --left wolf,cabbage --right sheep --aboard farmer --boat right

  # Solve a puzzle file with its own goal
  rivercrossing solve --puzzle puzzle.yaml

  # Print emoji hints and save the report
  rivercrossing solve --icons --export`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, goal, err := opts.state.resolve(cmd)
			if err != nil {
				return err
			}
			return a.runSolve(cmd.Context(), opts, start, goal)
		},
	}

	opts.state.register(cmd)
	opts.format.register(cmd)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&opts.export, "export", false, "Save the report to the export directory")

	return cmd
}

func (a *App) runSolve(ctx context.Context, opts *solveOptions, start, goal rc.State) error {
	f, err := opts.format.formatter()
	if err != nil {
		return err
	}

	svc, done, err := a.newService(opts.export)
	if err != nil {
		return err
	}
	defer done()

	report, err := svc.Solve(ctx, start, goal)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	if opts.export {
		if err := svc.Export(ctx, report); err != nil {
			return err
		}
	}

	if opts.jsonOutput {
		return a.printJSON(svc, report)
	}
	if err := a.printHints(report, f); err != nil {
		return err
	}
	if opts.export {
		fmt.Fprintf(a.stdout, "report %s saved to %s\n", report.ID, a.cfg.Export.Dir)
	}
	return nil
}

func (a *App) printHints(report core.Report, f hints.Formatter) error {
	lines, err := hints.Lines(report.Solution, f)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(a.stdout, line)
	}
	return nil
}

func (a *App) printJSON(svc *core.Service, report core.Report) error {
	data, err := svc.ExportJSON(report)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, string(data))
	return nil
}
