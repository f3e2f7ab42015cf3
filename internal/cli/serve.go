package cli

import (
	"github.com/spf13/cobra"

	"github.com/comalice/rivercrossing/internal/server"
)

// newServeCmd creates the serve command.
func (a *App) newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the solver over HTTP until interrupted.

Routes live under /v1 (health, puzzle, solve, moves, graph, reports/:id).
Prometheus metrics are served on /metrics.

Examples:
  rivercrossing serve
  rivercrossing serve --addr :9090 -c rivercrossing.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			svc, done, err := a.newService(true)
			if err != nil {
				return err
			}
			defer done()

			srv := server.New(svc, server.Config{
				ServiceName: "rivercrossing",
				RateLimit:   a.cfg.Server.RateLimit,
				Burst:       a.cfg.Server.Burst,
				Logger:      a.logger,
			})
			return srv.Run(cmd.Context(), addr, a.cfg.Server.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}
