package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rc "github.com/comalice/rivercrossing"
)

// newMovesCmd creates the moves command.
func (a *App) newMovesCmd() *cobra.Command {
	var (
		state  stateOptions
		format formatOptions
	)

	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List the legal actions from a state",
		Long: `List every action that is legal from a state, in the order the solver
tries them, with the state each one leads to.

Examples:
  # Actions from the standard start
  rivercrossing moves

  # Actions with the farmer and sheep in the boat
  rivercrossing moves --right wolf,cabbage --aboard farmer,sheep`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _, err := state.resolve(cmd)
			if err != nil {
				return err
			}
			f, err := format.formatter()
			if err != nil {
				return err
			}

			ts := rc.Successors(start)
			if len(ts) == 0 {
				fmt.Fprintln(a.stdout, "no legal moves")
				return nil
			}
			for i, tr := range ts {
				fmt.Fprintf(a.stdout, "%d. %s -> %s\n", i+1, f.Action(tr.Move), tr.Next.Key())
			}
			return nil
		},
	}

	state.register(cmd)
	format.register(cmd)
	return cmd
}

// newGraphCmd creates the graph command.
func (a *App) newGraphCmd() *cobra.Command {
	var (
		state  stateOptions
		output string
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the reachable state graph as Graphviz DOT",
		Long: `Export every state reachable from the start as a Graphviz DOT graph, with
the shortest solution highlighted.

Examples:
  # Render the standard puzzle
  rivercrossing graph | dot -Tsvg > puzzle.svg

  # Write to a file
  rivercrossing graph -o puzzle.dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, goal, err := state.resolve(cmd)
			if err != nil {
				return err
			}

			svc, done, err := a.newService(false)
			if err != nil {
				return err
			}
			defer done()

			dot, err := svc.Graph(cmd.Context(), start, goal)
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Fprint(a.stdout, dot)
				return nil
			}
			if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(a.stdout, "graph written to %s\n", output)
			return nil
		},
	}

	state.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the graph to a file instead of stdout")
	return cmd
}
