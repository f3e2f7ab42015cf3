package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newReportCmd creates the report command group.
func (a *App) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Work with saved reports",
	}
	cmd.AddCommand(a.newReportShowCmd())
	return cmd
}

func (a *App) newReportShowCmd() *cobra.Command {
	var (
		format     formatOptions
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a report saved with solve --export",
		Long: `Load a report from the export directory, check its path and fingerprint,
and print it.

Examples:
  rivercrossing report show 0b6f3c1e-2d4a-4c8e-9d55-1f0a7e3b9c21
  rivercrossing report show 0b6f3c1e-2d4a-4c8e-9d55-1f0a7e3b9c21 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.formatter()
			if err != nil {
				return err
			}

			svc, done, err := a.newService(true)
			if err != nil {
				return err
			}
			defer done()

			report, err := svc.Report(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("report %s: %w", args[0], err)
			}
			if jsonOutput {
				return a.printJSON(svc, report)
			}
			fmt.Fprintf(a.stdout, "report %s (%s)\n", report.ID, report.SolvedAt.Format("2006-01-02 15:04:05 MST"))
			if report.Fingerprint != "" {
				fmt.Fprintf(a.stdout, "fingerprint %s\n", report.Fingerprint)
			}
			return a.printHints(report, f)
		},
	}

	format.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	return cmd
}
