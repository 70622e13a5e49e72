package render

import (
	"math"

	"github.com/lixenwraith/radfield/grid"
	"github.com/lixenwraith/radfield/parameter"
	"github.com/lixenwraith/radfield/vmath"
)

// Point2 is a projected point in view space
// X grows right, Y grows up, the plotted box spans roughly [-1, 1] on both
type Point2 struct {
	X, Y float64
}

// Camera is a fixed oblique perspective view of the plotted limits
// Each axis is scaled to the unit box first, so unequal extents fill the view
type Camera struct {
	Limits    [3]grid.Range
	Azimuth   float64 // radians, rotation about +z
	Elevation float64 // radians above the xy plane
	Focal     float64 // eye distance from box centre, box units

	center, half   vmath.Vec3F
	eye, right, up vmath.Vec3F
}

// NewCamera creates a camera with the default view angles
func NewCamera(limits [3]grid.Range) *Camera {
	return NewCameraAt(limits, parameter.CameraAzimuth, parameter.CameraElevation, parameter.CameraFocal)
}

// NewCameraAt creates a camera with explicit view angles
func NewCameraAt(limits [3]grid.Range, azimuth, elevation, focal float64) *Camera {
	c := &Camera{
		Limits:    limits,
		Azimuth:   azimuth,
		Elevation: elevation,
		Focal:     focal,
	}

	c.center = vmath.Vec3F{
		X: (limits[0].Min + limits[0].Max) / 2,
		Y: (limits[1].Min + limits[1].Max) / 2,
		Z: (limits[2].Min + limits[2].Max) / 2,
	}
	c.half = vmath.Vec3F{
		X: limits[0].Span() / 2,
		Y: limits[1].Span() / 2,
		Z: limits[2].Span() / 2,
	}

	// Orthonormal basis, (right, up, eye) is right-handed
	ce, se := math.Cos(elevation), math.Sin(elevation)
	ca, sa := math.Cos(azimuth), math.Sin(azimuth)
	c.eye = vmath.Vec3F{X: ce * ca, Y: ce * sa, Z: se}
	c.right = vmath.Vec3F{X: -sa, Y: ca}
	c.up = vmath.V3FCross(c.eye, c.right)

	return c
}

// normalize maps world coordinates into the unit box, degenerate axes collapse to 0
func (c *Camera) normalize(p vmath.Vec3F) vmath.Vec3F {
	n := vmath.V3FSub(p, c.center)
	if c.half.X > 0 {
		n.X /= c.half.X
	}
	if c.half.Y > 0 {
		n.Y /= c.half.Y
	}
	if c.half.Z > 0 {
		n.Z /= c.half.Z
	}
	return n
}

// Project maps a world point to view space and its distance from the eye
func (c *Camera) Project(p vmath.Vec3F) (Point2, float64) {
	n := c.normalize(p)

	depth := c.Focal - vmath.V3FDot(n, c.eye)
	denom := depth
	if denom < parameter.CameraMinDepth {
		denom = parameter.CameraMinDepth
	}
	persp := c.Focal / denom / parameter.CameraSpan

	return Point2{
		X: vmath.V3FDot(n, c.right) * persp,
		Y: vmath.V3FDot(n, c.up) * persp,
	}, depth
}

// Corners returns the 8 corners of the plotted box
// Bit 0 selects x max, bit 1 y max, bit 2 z max
func (c *Camera) Corners() [8]vmath.Vec3F {
	var out [8]vmath.Vec3F
	for i := range out {
		pick := func(r grid.Range, bit int) float64 {
			if i&(1<<bit) != 0 {
				return r.Max
			}
			return r.Min
		}
		out[i] = vmath.Vec3F{X: pick(c.Limits[0], 0), Y: pick(c.Limits[1], 1), Z: pick(c.Limits[2], 2)}
	}
	return out
}

// boxEdges lists corner index pairs differing in exactly one bit
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // x
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // z
}
