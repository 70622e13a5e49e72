package render

// Canvas is a drawing surface in device coordinates
// Terminal canvases count cells, window canvases count pixels
type Canvas interface {
	// Size returns the surface width and height
	Size() (w, h int)
	// Aspect returns device unit height over width, 2 for terminal cells, 1 for pixels
	Aspect() float64
	// TextSize returns the width and height of one text character in device units
	TextSize() (cw, ch float64)

	Line(x0, y0, x1, y1 float64, c RGB)
	// Arrowhead draws a head at (x, y) pointing along (dx, dy)
	Arrowhead(x, y, dx, dy float64, c RGB)
	Marker(x, y float64, c RGB)
	// Text draws s with its top-left corner at (x, y)
	Text(x, y float64, s string, c RGB)
}
