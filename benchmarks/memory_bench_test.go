// Package benchmarks provides memory footprint benchmarks.
package benchmarks

import (
	"context"
	"runtime"
	"testing"

	"gopkg.in/yaml.v3"

	rc "github.com/comalice/rivercrossing"
	"github.com/comalice/rivercrossing/internal/core"
	"github.com/comalice/rivercrossing/internal/production"
)

func BenchmarkMemorySolution(b *testing.B) {
	numSolutions := 1000
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	solutions := make([]rc.Solution, numSolutions)
	for i := range solutions {
		sol, err := rc.FindSolution(rc.Start(), rc.Goal())
		if err != nil {
			b.Fatal(err)
		}
		solutions[i] = sol
	}
	runtime.GC()
	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	bytesPerSolve := (after.TotalAlloc - before.TotalAlloc) / uint64(numSolutions)
	b.ReportMetric(float64(bytesPerSolve)/1024, "KB/solve")
	runtime.KeepAlive(solutions)
}

func BenchmarkMemoryRegistry(b *testing.B) {
	pairs := GenPairs(core.DefaultRegistrySize)
	ctx := context.Background()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	svc := core.NewService(core.WithRegistry(core.NewMemoryRegistry(core.DefaultRegistrySize)))
	for _, p := range pairs {
		if _, err := svc.Solve(ctx, p.Start, p.Goal); err != nil {
			b.Fatal(err)
		}
	}
	runtime.GC()
	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	b.ReportMetric(float64(after.TotalAlloc-before.TotalAlloc)/1024, "KB/registry")
	runtime.KeepAlive(svc)
}

func BenchmarkReportYAMLDecode(b *testing.B) {
	data := GenReportYAML()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var doc production.ReportDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			b.Fatal(err)
		}
		if _, err := doc.Report(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPersisterSave(b *testing.B) {
	report := CanonicalReport()
	ctx := context.Background()
	for _, format := range []string{"json", "yaml"} {
		b.Run(format, func(b *testing.B) {
			p, err := production.NewPersister(format, b.TempDir())
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := p.Save(ctx, report); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
