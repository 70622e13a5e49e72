package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/radfield/parameter"
	"github.com/lixenwraith/radfield/vmath"
)

// Trace keeps a ring of probe magnitudes and plots them
type Trace struct {
	values []float64
	head   int
	full   bool
}

// NewTrace creates a trace holding ProbeHistory samples
func NewTrace() *Trace {
	return &Trace{values: make([]float64, parameter.ProbeHistory)}
}

// Push records one probe sample
func (t *Trace) Push(e vmath.Vec3F) {
	t.values[t.head] = vmath.V3FMag(e)
	t.head++
	if t.head == len(t.values) {
		t.head = 0
		t.full = true
	}
}

// Len returns the number of recorded samples
func (t *Trace) Len() int {
	if t.full {
		return len(t.values)
	}
	return t.head
}

// Values returns samples oldest first
func (t *Trace) Values() []float64 {
	if !t.full {
		return append([]float64(nil), t.values[:t.head]...)
	}
	out := make([]float64, 0, len(t.values))
	out = append(out, t.values[t.head:]...)
	return append(out, t.values[:t.head]...)
}

// Render plots the trace in at most width columns, nil with fewer than two samples
// Values are rescaled by a power of ten so axis labels stay readable
func (t *Trace) Render(width int) []string {
	data := t.Values()
	if len(data) < 2 || width < 10 {
		return nil
	}

	exp := scaleExponent(data)
	scale := math.Pow(10, -float64(exp))
	for i := range data {
		if math.IsInf(data[i], 0) {
			data[i] = math.NaN()
			continue
		}
		data[i] *= scale
	}

	plot := asciigraph.Plot(data,
		asciigraph.Height(parameter.ProbeTraceHeight),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("probe |E| x1e%d", exp)),
	)
	return strings.Split(plot, "\n")
}

// scaleExponent returns the decade of the largest finite value, zero if none
func scaleExponent(data []float64) int {
	peak := 0.0
	for _, v := range data {
		if v > peak && !math.IsInf(v, 0) {
			peak = v
		}
	}
	if peak == 0 {
		return 0
	}
	return int(math.Floor(math.Log10(peak)))
}
