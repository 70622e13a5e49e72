package render

import (
	"sort"
)

// Arrow is one projected quiver element
type Arrow struct {
	Tail, Head Point2
	Depth      float64 // eye distance of the anchor, larger is farther
	Color      RGB
}

// Marker is the projected charge position
type Marker struct {
	At      Point2
	Depth   float64
	Color   RGB
	Label   string
	Visible bool
}

// Context holds the artists drawn for the most recent frame
// Begin releases everything from the previous frame, so at most one quiver is alive
type Context struct {
	frame int
	time  float64

	arrows []Arrow
	marker Marker
	status []string

	sorted   bool
	disposed int
}

// NewContext creates an empty render context
func NewContext() *Context {
	return &Context{frame: -1}
}

// Begin disposes the previous frame's artists and starts a new frame
func (c *Context) Begin(frame int, t float64) {
	c.disposed += len(c.arrows)
	if c.marker.Visible {
		c.disposed++
	}

	c.frame = frame
	c.time = t
	c.arrows = c.arrows[:0]
	c.marker = Marker{}
	c.status = c.status[:0]
	c.sorted = true
}

// AddArrow appends one quiver element
func (c *Context) AddArrow(a Arrow) {
	c.arrows = append(c.arrows, a)
	c.sorted = false
}

// SetMarker places the charge marker, replacing any previous one
func (c *Context) SetMarker(m Marker) {
	m.Visible = true
	c.marker = m
}

// AddStatus appends one line of HUD text
func (c *Context) AddStatus(line string) {
	c.status = append(c.status, line)
}

// Arrows returns the quiver sorted far to near for painter's order
// The slice is reused by the next Begin
func (c *Context) Arrows() []Arrow {
	if !c.sorted {
		sort.SliceStable(c.arrows, func(i, j int) bool {
			return c.arrows[i].Depth > c.arrows[j].Depth
		})
		c.sorted = true
	}
	return c.arrows
}

// Marker returns the charge marker
func (c *Context) Marker() Marker { return c.marker }

// Status returns the HUD lines
func (c *Context) Status() []string { return c.status }

// Frame returns the index and time of the current frame, -1 before the first Begin
func (c *Context) Frame() (int, float64) { return c.frame, c.time }

// Len returns the number of live artists
func (c *Context) Len() int {
	n := len(c.arrows)
	if c.marker.Visible {
		n++
	}
	return n
}

// Disposed returns the total number of artists released by Begin
func (c *Context) Disposed() int { return c.disposed }
