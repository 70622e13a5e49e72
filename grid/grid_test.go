package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/radfield/core"
	"github.com/lixenwraith/radfield/vmath"
)

func TestBuild_DefaultScenario(t *testing.T) {
	g, err := Build(Range{-1, 4}, Range{-1, 4}, Range{-2, 4}, 10)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if g.Shape != [3]int{10, 10, 10} {
		t.Fatalf("Expected shape (10,10,10), got %v", g.Shape)
	}
	if g.Len() != 1000 || len(g.X) != 1000 || len(g.Y) != 1000 || len(g.Z) != 1000 {
		t.Fatalf("Expected 1000 points per coordinate array, got %d/%d/%d", len(g.X), len(g.Y), len(g.Z))
	}

	ranges := [3]Range{{-1, 4}, {-1, 4}, {-2, 4}}
	coords := [3][]float64{g.X, g.Y, g.Z}

	for axis := 0; axis < 3; axis++ {
		line := g.Axis(axis)
		if line[0] != ranges[axis].Min {
			t.Errorf("axis %d: first coordinate %v, want %v", axis, line[0], ranges[axis].Min)
		}
		if line[len(line)-1] != ranges[axis].Max {
			t.Errorf("axis %d: last coordinate %v, want %v", axis, line[len(line)-1], ranges[axis].Max)
		}
		for i := 1; i < len(line); i++ {
			if line[i] <= line[i-1] {
				t.Errorf("axis %d: coordinates not strictly increasing at %d (%v <= %v)", axis, i, line[i], line[i-1])
			}
		}

		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range coords[axis] {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if lo != ranges[axis].Min || hi != ranges[axis].Max {
			t.Errorf("axis %d: coordinate array spans [%v,%v], want [%v,%v]", axis, lo, hi, ranges[axis].Min, ranges[axis].Max)
		}
	}
}

func TestBuild_OuterIndexing(t *testing.T) {
	g, err := BuildAxes(Range{0, 1}, Range{0, 2}, Range{0, 3}, 2, 3, 4)
	if err != nil {
		t.Fatalf("BuildAxes failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				p := g.Point(g.Index(i, j, k))
				want := vmath.Vec3F{X: g.Axis(0)[i], Y: g.Axis(1)[j], Z: g.Axis(2)[k]}
				if p != want {
					t.Fatalf("Point(%d,%d,%d) = %+v, want %+v", i, j, k, p, want)
				}
			}
		}
	}

	// Axis 2 varies fastest
	if g.Z[0] == g.Z[1] || g.X[0] != g.X[1] {
		t.Errorf("Expected z to vary fastest: first points %+v %+v", g.Point(0), g.Point(1))
	}
}

func TestBuild_SinglePoint(t *testing.T) {
	g, err := Build(Range{-1, 4}, Range{-1, 4}, Range{-2, 4}, 1)
	if err != nil {
		t.Fatalf("single-point grid should not be an error: %v", err)
	}
	if g.Len() != 1 {
		t.Fatalf("Expected 1 point, got %d", g.Len())
	}
	if p := g.Point(0); p != (vmath.Vec3F{X: -1, Y: -1, Z: -2}) {
		t.Errorf("Expected single point at range minimum, got %+v", p)
	}
}

func TestBuild_InvalidConfiguration(t *testing.T) {
	ok := Range{0, 1}
	tests := []struct {
		name       string
		x, y, z    Range
		nx, ny, nz int
	}{
		{"degenerate x", Range{1, 1}, ok, ok, 2, 2, 2},
		{"inverted y", ok, Range{2, 1}, ok, 2, 2, 2},
		{"nan z", ok, ok, Range{math.NaN(), 1}, 2, 2, 2},
		{"inf x", Range{0, math.Inf(1)}, ok, ok, 2, 2, 2},
		{"zero count", ok, ok, ok, 0, 2, 2},
		{"negative count", ok, ok, ok, 2, 2, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildAxes(tt.x, tt.y, tt.z, tt.nx, tt.ny, tt.nz)
			if err == nil {
				t.Fatalf("Expected error, got grid with %d points", g.Len())
			}
			if !errors.Is(err, core.ErrInvalidConfiguration) {
				t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestFromPoints(t *testing.T) {
	g := FromPoints(vmath.Vec3F{X: 1, Y: 1, Z: 1}, vmath.Vec3F{X: -2, Y: 3, Z: 0})
	if g.Len() != 2 || g.Shape != [3]int{2, 1, 1} {
		t.Fatalf("Expected 2x1x1 grid, got len %d shape %v", g.Len(), g.Shape)
	}
	if g.Point(1) != (vmath.Vec3F{X: -2, Y: 3, Z: 0}) {
		t.Errorf("Point(1) = %+v", g.Point(1))
	}
	if g.Ranges[0] != (Range{-2, 1}) {
		t.Errorf("x range = %+v, want [-2,1]", g.Ranges[0])
	}

	empty := FromPoints()
	if empty.Len() != 0 {
		t.Errorf("Expected empty grid, got %d points", empty.Len())
	}
}
