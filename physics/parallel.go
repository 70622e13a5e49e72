package physics

import (
	"runtime"
	"sync"

	"github.com/lixenwraith/radfield/grid"
)

// minPointsPerWorker keeps goroutine overhead below the per-point cost on small grids
const minPointsPerWorker = 256

// EvaluateParallel is Evaluate with the point range split across workers
// workers <= 0 uses runtime.NumCPU(); results are identical to Evaluate
func EvaluateParallel(t float64, g *grid.Grid, c Constants, k Kinematics, workers int) *Field {
	f := &Field{}
	EvaluateParallelInto(f, t, g, c, k, workers)
	return f
}

// EvaluateParallelInto is EvaluateParallel writing into dst
func EvaluateParallelInto(dst *Field, t float64, g *grid.Grid, c Constants, k Kinematics, workers int) {
	n := g.Len()
	dst.resize(n, shapeOf(g))
	dst.Time = t
	dst.Charge = ChargePosition(t, k)

	workers = workerCount(n, workers)
	if workers == 1 {
		evaluateRange(dst, g, c, k, 0, n)
		return
	}

	// Even split, remainder spread over the first workers
	per, rem := n/workers, n%workers

	var wg sync.WaitGroup
	wg.Add(workers)

	lo := 0
	for w := 0; w < workers; w++ {
		size := per
		if w < rem {
			size++
		}
		hi := lo + size
		go func(lo, hi int) {
			defer wg.Done()
			evaluateRange(dst, g, c, k, lo, hi)
		}(lo, hi)
		lo = hi
	}

	wg.Wait()
}

// workerCount clamps the requested worker count to the work available
func workerCount(n, requested int) int {
	workers := requested
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if limit := n / minPointsPerWorker; workers > limit {
		workers = limit
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
