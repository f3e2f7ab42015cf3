// Package cli provides the rivercrossing command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/spf13/cobra"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/config"
	"github.com/comalice/rivercrossing/internal/core"
	"github.com/comalice/rivercrossing/internal/logging"
	"github.com/comalice/rivercrossing/internal/production"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// eventBuffer is the size of the solve event channel drained into the log.
const eventBuffer = 64

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *bolt.Logger
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
		cfg:    config.Default(),
	}

	app.root = &cobra.Command{
		Use:   "rivercrossing",
		Short: "Solve the farmer, wolf, sheep and cabbage puzzle",
		Long: `rivercrossing finds the shortest sequence of boat actions that takes the
farmer, the wolf, the sheep and the cabbage across the river without anyone
getting eaten.

Every boarding, disembarking and crossing is one action. The boat holds two
and only the farmer rows.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
	}

	app.root.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "Path to configuration file")
	app.root.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "Log level (overrides config)")
	app.root.PersistentFlags().StringVar(&app.logFormat, "log-format", "", "Log format, json or console (overrides config)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newSolveCmd(),
		app.newMovesCmd(),
		app.newGraphCmd(),
		app.newReportCmd(),
		app.newServeCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *App) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lc := cfg.Logging()
	lc.Output = a.stderr
	a.logger = logging.New(lc)
	return nil
}

// newService wires a core.Service from the loaded configuration. The export
// directory is only created when persist is set. The returned function closes
// the service and waits for pending events to be logged.
func (a *App) newService(persist bool) (*core.Service, func(), error) {
	opts := []core.Option{
		core.WithSolver(rc.NewSolver(rc.WithMaxIterations(a.cfg.Solver.MaxIterations))),
		core.WithVisualizer(&production.DefaultVisualizer{}),
		core.WithLogger(a.logger),
	}
	if persist {
		persister, err := production.NewPersister(a.cfg.Export.Format, a.cfg.Export.Dir)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, core.WithPersister(persister))
	}
	if a.cfg.Cache.Size > 0 {
		opts = append(opts, core.WithRegistry(core.NewMemoryRegistry(a.cfg.Cache.Size)))
	}

	events := make(chan core.SolveEvent, eventBuffer)
	publisher := production.NewChannelPublisher(events)
	drained := make(chan struct{})
	go a.logEvents(events, drained)

	opts = append(opts, core.WithPublisher(publisher))

	svc := core.NewService(opts...)
	return svc, func() {
		_ = svc.Close()
		<-drained
		if n := publisher.Dropped(); n > 0 {
			logging.NewEvent(a.logger.Warn()).
				Add(logging.Component("cli")).
				Add(logging.Int("dropped", int(n))).
				Msg("solve events dropped")
		}
	}, nil
}

func (a *App) logEvents(events <-chan core.SolveEvent, done chan<- struct{}) {
	defer close(done)
	for ev := range events {
		e := logging.NewEvent(a.logger.Debug()).
			Add(logging.Component("events")).
			Add(logging.Steps(ev.Steps)).
			Add(logging.Int("explored", ev.Explored)).
			Add(logging.Cached(ev.Cached)).
			Add(logging.Duration(ev.Duration))
		if ev.ReportID != "" {
			e.Add(logging.ReportID(ev.ReportID))
		}
		if ev.Err != "" {
			e.Add(logging.Str("error", ev.Err))
		}
		e.Msg("solve event")
	}
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "rivercrossing version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
