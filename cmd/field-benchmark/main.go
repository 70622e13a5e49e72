// Command field-benchmark compares sequential and parallel field evaluation.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/radfield/grid"
	"github.com/lixenwraith/radfield/parameter"
	"github.com/lixenwraith/radfield/physics"
)

var sizes = []int{10, 20, 40, 60, 80}

func buildGrid(num int) *grid.Grid {
	g, err := grid.Build(
		grid.Range{Min: parameter.GridRangeX[0], Max: parameter.GridRangeX[1]},
		grid.Range{Min: parameter.GridRangeY[0], Max: parameter.GridRangeY[1]},
		grid.Range{Min: parameter.GridRangeZ[0], Max: parameter.GridRangeZ[1]},
		num,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return g
}

// maxDelta returns the largest component difference relative to the peak
func maxDelta(a, b *physics.Field) float64 {
	peak := a.Peak()
	if peak == 0 {
		return 0
	}
	worst := 0.0
	for i := range a.X {
		d := math.Max(math.Abs(a.X[i]-b.X[i]), math.Max(math.Abs(a.Y[i]-b.Y[i]), math.Abs(a.Z[i]-b.Z[i])))
		worst = math.Max(worst, d)
	}
	return worst / peak
}

func verifyAccuracy(workers int) {
	fmt.Println("=== Parallel Accuracy ===")
	fmt.Println()
	fmt.Printf("%-8s %10s %14s\n", "Grid", "Points", "Max rel delta")
	fmt.Println(strings.Repeat("-", 34))

	c, k := physics.DefaultConstants(), physics.DefaultKinematics()
	for _, n := range sizes {
		g := buildGrid(n)
		seq := physics.Evaluate(2.5, g, c, k)
		par := physics.EvaluateParallel(2.5, g, c, k, workers)
		fmt.Printf("%-8s %10d %14.3e\n", fmt.Sprintf("%d³", n), g.Len(), maxDelta(seq, par))
	}
	fmt.Println()
}

func timeFrames(g *grid.Grid, frames, workers int) time.Duration {
	c, k := physics.DefaultConstants(), physics.DefaultKinematics()
	var f physics.Field
	start := time.Now()
	for i := 0; i < frames; i++ {
		t := float64(i) * parameter.AnimationDt
		if workers > 1 {
			physics.EvaluateParallelInto(&f, t, g, c, k, workers)
		} else {
			physics.EvaluateInto(&f, t, g, c, k)
		}
	}
	return time.Since(start)
}

func main() {
	frames := flag.Int("frames", parameter.AnimationFrames, "Frames per measurement")
	workers := flag.Int("workers", runtime.NumCPU(), "Parallel evaluation goroutines")
	flag.Parse()

	fmt.Println("radfield Field Evaluation Benchmark")
	fmt.Println("===================================")
	fmt.Println()

	verifyAccuracy(*workers)

	fmt.Println("=== Frame Timing ===")
	fmt.Println("Run with: go test -bench=. -benchmem ./physics/")
	fmt.Println()
	fmt.Printf("%-8s %14s %14s %9s\n", "Grid", "Sequential", "Parallel", "Speedup")
	fmt.Println(strings.Repeat("-", 48))

	speedups := make([]float64, 0, len(sizes))
	for _, n := range sizes {
		g := buildGrid(n)
		seq := timeFrames(g, *frames, 1)
		par := timeFrames(g, *frames, *workers)
		speedup := float64(seq) / float64(max(par, 1))
		speedups = append(speedups, speedup)
		fmt.Printf("%-8s %14v %14v %8.2fx\n", fmt.Sprintf("%d³", n), seq/time.Duration(*frames), par/time.Duration(*frames), speedup)
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(speedups,
		asciigraph.Height(8),
		asciigraph.Caption(fmt.Sprintf("speedup with %d workers, grid %v³", *workers, sizes)),
	))
}
