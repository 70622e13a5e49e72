// Package render turns evaluated frames into a projected quiver plot.
//
// A Scene owns the per-frame render Context: each Update disposes the
// previous frame's artists before building the new quiver and charge
// marker. Draw paints the current Context onto any Canvas, the terminal
// and window backends only supply primitives.
package render

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/lixenwraith/radfield/animation"
	"github.com/lixenwraith/radfield/grid"
	"github.com/lixenwraith/radfield/parameter"
	"github.com/lixenwraith/radfield/vmath"
)

// viewportFill is the fraction of the short viewport side used by the plot
const viewportFill = 0.95

// SceneOptions controls quiver appearance
type SceneOptions struct {
	Length    float64 // world-space arrow length, or the length of the peak arrow when not normalized
	Normalize bool
	Title     string
}

// DefaultSceneOptions returns the default quiver appearance
func DefaultSceneOptions() SceneOptions {
	return SceneOptions{
		Length:    parameter.ArrowLength,
		Normalize: parameter.ArrowNormalize,
		Title:     parameter.DefaultTitle,
	}
}

type axisLabel struct {
	at   Point2
	text string
}

// Scene builds render contexts for one grid and camera
type Scene struct {
	grid   *grid.Grid
	camera *Camera
	opts   SceneOptions

	ctx  *Context
	gain *Gain
	mags []float64

	box    [12][2]Point2
	labels [3]axisLabel
}

// NewScene creates a scene, the box and axis labels are projected once
func NewScene(g *grid.Grid, cam *Camera, opts SceneOptions) *Scene {
	if opts.Length <= 0 {
		opts.Length = parameter.ArrowLength
	}
	s := &Scene{
		grid:   g,
		camera: cam,
		opts:   opts,
		ctx:    NewContext(),
		gain:   NewGain(),
	}

	corners := cam.Corners()
	var proj [8]Point2
	for i, c := range corners {
		proj[i], _ = cam.Project(c)
	}
	for i, e := range boxEdges {
		s.box[i] = [2]Point2{proj[e[0]], proj[e[1]]}
	}

	// Labels sit at the midpoints of the three edges leaving the min corner
	names := [3]string{"X", "Y", "Z"}
	for i, far := range [3]int{1, 2, 4} {
		a, b := proj[0], proj[far]
		s.labels[i] = axisLabel{
			at:   Point2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2},
			text: names[i],
		}
	}

	return s
}

// Context returns the current render context
func (s *Scene) Context() *Context { return s.ctx }

// Camera returns the scene camera
func (s *Scene) Camera() *Camera { return s.camera }

// Update replaces the previous frame's artists with those of frame
func (s *Scene) Update(frame animation.Frame) *Context {
	ctx := s.ctx
	ctx.Begin(frame.Index, frame.Time)

	f := frame.Field
	if f == nil || s.grid == nil {
		return ctx
	}

	s.mags = f.Magnitudes(s.mags)
	peak := 0.0
	for _, m := range s.mags {
		if m > peak && !math.IsInf(m, 0) {
			peak = m
		}
	}
	gain := s.gain.Update(peak)

	n := min(f.Len(), s.grid.Len())
	for i := 0; i < n; i++ {
		mag := s.mags[i]
		if !(mag > 0) || math.IsInf(mag, 0) {
			continue
		}

		tail := s.grid.Point(i)
		head := vmath.V3FAdd(tail, s.arrowVector(f.Vector(i), mag, peak))

		t2, depth := s.camera.Project(tail)
		h2, _ := s.camera.Project(head)

		rel := 1.0
		if gain > 0 {
			rel = mag / gain
		}
		ctx.AddArrow(Arrow{Tail: t2, Head: h2, Depth: depth, Color: ArrowColor(rel)})
	}

	at, depth := s.camera.Project(f.Charge)
	ctx.SetMarker(Marker{At: at, Depth: depth, Color: RGBCharge, Label: parameter.ChargeLabel})

	ctx.AddStatus(fmt.Sprintf("frame %d  t=%.2f", frame.Index, frame.Time))
	ctx.AddStatus(fmt.Sprintf("charge (%.2f, %.2f, %.2f)", f.Charge.X, f.Charge.Y, f.Charge.Z))
	ctx.AddStatus(fmt.Sprintf("peak |E| %.3e", peak))
	if frame.HasProbe {
		ctx.AddStatus(fmt.Sprintf("probe |E| %.3e", vmath.V3FMag(frame.Probe)))
	}

	return ctx
}

// arrowVector returns the world-space shaft for a field sample of magnitude mag
func (s *Scene) arrowVector(e vmath.Vec3F, mag, peak float64) vmath.Vec3F {
	if s.opts.Normalize {
		return vmath.V3FScale(e, s.opts.Length/mag)
	}
	return vmath.V3FScale(e, s.opts.Length/peak)
}

// viewport maps view space to device coordinates
type viewport struct {
	cx, cy, scale, aspect float64
}

func newViewport(c Canvas) viewport {
	w, h := c.Size()
	aspect := c.Aspect()
	if aspect <= 0 {
		aspect = 1
	}
	side := math.Min(float64(w), float64(h)*aspect)
	return viewport{
		cx:     float64(w) / 2,
		cy:     float64(h) / 2,
		scale:  side / 2 * viewportFill,
		aspect: aspect,
	}
}

func (v viewport) device(p Point2) (float64, float64) {
	return v.cx + p.X*v.scale, v.cy - p.Y*v.scale/v.aspect
}

// Draw paints the current context, far arrows first
func (s *Scene) Draw(c Canvas) {
	vp := newViewport(c)
	cw, ch := c.TextSize()

	for _, e := range s.box {
		x0, y0 := vp.device(e[0])
		x1, y1 := vp.device(e[1])
		c.Line(x0, y0, x1, y1, RGBBox)
	}
	for _, l := range s.labels {
		x, y := vp.device(l.at)
		c.Text(x, y, l.text, RGBText)
	}

	for _, a := range s.ctx.Arrows() {
		x0, y0 := vp.device(a.Tail)
		x1, y1 := vp.device(a.Head)
		c.Line(x0, y0, x1, y1, a.Color)
		c.Arrowhead(x1, y1, x1-x0, y1-y0, a.Color)
	}

	if m := s.ctx.Marker(); m.Visible {
		x, y := vp.device(m.At)
		c.Marker(x, y, m.Color)
	}

	// HUD
	w, h := c.Size()
	if s.opts.Title != "" {
		tw := float64(utf8.RuneCountInString(s.opts.Title)) * cw
		c.Text(math.Max(0, (float64(w)-tw)/2), 0, s.opts.Title, RGBTitle)
	}
	legend := "● " + parameter.ChargeLabel
	lw := float64(utf8.RuneCountInString(legend)) * cw
	c.Text(math.Max(0, float64(w)-lw-cw), ch, legend, RGBCharge)

	status := s.ctx.Status()
	for i, line := range status {
		y := float64(h) - float64(len(status)-i)*ch
		c.Text(0, y, line, RGBText)
	}
}
