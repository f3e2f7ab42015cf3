package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/core"
	"github.com/comalice/rivercrossing/internal/hints"
	"github.com/comalice/rivercrossing/internal/production"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dir, err := os.MkdirTemp("", "rivercrossing-demo")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	persister, err := production.NewJSONPersister(dir)
	if err != nil {
		panic(err)
	}

	publishChan := make(chan core.SolveEvent, 100)
	publisher := production.NewChannelPublisher(publishChan)

	svc := core.NewService(
		core.WithRegistry(core.NewMemoryRegistry(core.DefaultRegistrySize)),
		core.WithPersister(persister),
		core.WithPublisher(publisher),
		core.WithVisualizer(&production.DefaultVisualizer{}),
	)
	defer svc.Close()

	// Solve every state on the canonical path, twice, so the second round
	// is served from the registry.
	sol, err := rc.FindSolution(rc.Start(), rc.Goal())
	if err != nil {
		panic(err)
	}
	for round := 1; round <= 2; round++ {
		fmt.Printf("\n--- Round %d ---\n", round)
		for i, s := range sol.Path {
			if ctx.Err() != nil {
				fmt.Println("\nShutting down gracefully...")
				return
			}
			report, err := svc.Solve(ctx, s, rc.Goal())
			if err != nil {
				fmt.Printf("Solve error: %v\n", err)
				continue
			}
			select {
			case ev := <-publishChan:
				fmt.Printf("%2d. %-44s %2d steps, explored %2d, cached=%v\n",
					i, s.Key(), ev.Steps, ev.Explored, ev.Cached)
			default:
			}
			if i == 0 && round == 1 {
				if err := svc.Export(ctx, report); err != nil {
					panic(err)
				}
				fmt.Printf("    exported %s\n", report.ID)
			}
		}
	}

	// Reload the first report from disk and print it.
	ids, err := os.ReadDir(dir)
	if err != nil || len(ids) == 0 {
		return
	}
	id := ids[0].Name()[:len(ids[0].Name())-len(".json")]
	loaded, err := svc.Load(ctx, id)
	if err != nil {
		panic(err)
	}
	lines, err := hints.Lines(loaded.Solution, hints.IconFormatter{})
	if err != nil {
		panic(err)
	}
	fmt.Printf("\n--- Report %s ---\n", loaded.ID)
	for _, line := range lines {
		fmt.Println(line)
	}
}
