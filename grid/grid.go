// Package grid builds the fixed 3D lattice of field sample points.
//
// Coordinates are stored as three flat slices in "ij" order: axis 0 varies
// slowest, so lattice position (i, j, k) lives at (i*ny + j)*nz + k.
package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/lixenwraith/radfield/core"
	"github.com/lixenwraith/radfield/vmath"
)

// Range is a closed coordinate interval
type Range struct {
	Min, Max float64
}

// Span returns Max - Min
func (r Range) Span() float64 { return r.Max - r.Min }

func (r Range) validate(axis string) error {
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) || math.IsNaN(r.Max) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: %s range [%g, %g] is not finite", core.ErrInvalidConfiguration, axis, r.Min, r.Max)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: %s range [%g, %g] is degenerate", core.ErrInvalidConfiguration, axis, r.Min, r.Max)
	}
	return nil
}

// Grid is an immutable lattice of sample points
// X, Y, Z hold the per-point coordinates, all of length Len()
type Grid struct {
	X, Y, Z []float64
	Shape   [3]int
	Ranges  [3]Range

	axes [3][]float64
}

// Build constructs a lattice with num points on every axis
func Build(x, y, z Range, num int) (*Grid, error) {
	return BuildAxes(x, y, z, num, num, num)
}

// BuildAxes constructs a lattice with independent per-axis point counts
// A count of 1 places the single coordinate at the range minimum
func BuildAxes(x, y, z Range, nx, ny, nz int) (*Grid, error) {
	ranges := [3]Range{x, y, z}
	counts := [3]int{nx, ny, nz}
	names := [3]string{"x", "y", "z"}

	for i := range ranges {
		if err := ranges[i].validate(names[i]); err != nil {
			return nil, err
		}
		if counts[i] < 1 {
			return nil, fmt.Errorf("%w: %s point count %d must be at least 1", core.ErrInvalidConfiguration, names[i], counts[i])
		}
	}

	g := &Grid{
		Shape:  counts,
		Ranges: ranges,
	}
	for i := range ranges {
		g.axes[i] = linspace(ranges[i], counts[i])
	}

	n := nx * ny * nz
	g.X = make([]float64, n)
	g.Y = make([]float64, n)
	g.Z = make([]float64, n)

	idx := 0
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				g.X[idx] = g.axes[0][i]
				g.Y[idx] = g.axes[1][j]
				g.Z[idx] = g.axes[2][k]
				idx++
			}
		}
	}

	return g, nil
}

// linspace returns n evenly spaced values with exact endpoints
func linspace(r Range, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = r.Min
		return out
	}
	floats.Span(out, r.Min, r.Max)
	// Pin endpoints so configured bounds survive step rounding
	out[0], out[n-1] = r.Min, r.Max
	return out
}

// Len returns the number of lattice points
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.X)
}

// Index maps lattice position (i, j, k) to the flat slice index
func (g *Grid) Index(i, j, k int) int {
	return (i*g.Shape[1]+j)*g.Shape[2] + k
}

// Point returns the coordinate of the flat index
func (g *Grid) Point(idx int) vmath.Vec3F {
	return vmath.Vec3F{X: g.X[idx], Y: g.Y[idx], Z: g.Z[idx]}
}

// Axis returns the 1D coordinates along axis 0, 1 or 2
// The returned slice is shared and must not be modified, nil for FromPoints grids
func (g *Grid) Axis(n int) []float64 {
	return g.axes[n]
}

// FromPoints wraps an explicit point list as a flat Nx1x1 grid
// Used for probes and single-point scenarios that do not need a lattice
func FromPoints(points ...vmath.Vec3F) *Grid {
	g := &Grid{
		X:     make([]float64, len(points)),
		Y:     make([]float64, len(points)),
		Z:     make([]float64, len(points)),
		Shape: [3]int{len(points), 1, 1},
	}
	for i, p := range points {
		g.X[i], g.Y[i], g.Z[i] = p.X, p.Y, p.Z
	}
	if len(points) > 0 {
		g.Ranges = [3]Range{
			{floats.Min(g.X), floats.Max(g.X)},
			{floats.Min(g.Y), floats.Max(g.Y)},
			{floats.Min(g.Z), floats.Max(g.Z)},
		}
	}
	return g
}
