// Package tui draws scenes on a terminal through tcell.
package tui

import (
	"fmt"
	"log"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/radfield/animation"
	"github.com/lixenwraith/radfield/core"
	"github.com/lixenwraith/radfield/render"
)

// cellAspect is the height of a terminal cell over its width
const cellAspect = 2.0

// slopeThreshold separates axis-aligned glyphs from diagonals
const slopeThreshold = 0.4

var headGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Screen presents frames on a tcell screen
// It implements render.Canvas for the scene and animation.Sink for the driver
type Screen struct {
	screen tcell.Screen
	scene  *render.Scene
	trace  *Trace
}

// NewScreen initializes the terminal
func NewScreen(scene *render.Scene) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return Wrap(s, scene), nil
}

// Wrap uses an already initialized screen
func Wrap(s tcell.Screen, scene *render.Scene) *Screen {
	return &Screen{
		screen: s,
		scene:  scene,
		trace:  NewTrace(),
	}
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Trace returns the probe history
func (s *Screen) Trace() *Trace { return s.trace }

// Present redraws the scene for frame
func (s *Screen) Present(frame animation.Frame) error {
	s.scene.Update(frame)
	if frame.HasProbe {
		s.trace.Push(frame.Probe)
	}

	s.screen.Clear()
	s.scene.Draw(s)
	s.drawTrace()
	s.screen.Show()
	return nil
}

// Listen polls terminal events until the screen is finalized
// q, Esc and Ctrl-C call quit, resizes resync the screen
// The poller runs through core.Go so a panic still restores the terminal
func (s *Screen) Listen(quit func()) {
	core.Go(func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					log.Printf("tui: quit requested")
					quit()
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		}
	})
}

func (s *Screen) drawTrace() {
	w, _ := s.screen.Size()
	lines := s.trace.Render(w / 3)
	for i, line := range lines {
		s.Text(0, float64(2+i), line, render.RGBText)
	}
}

// Canvas

func (s *Screen) Size() (int, int) { return s.screen.Size() }

func (s *Screen) Aspect() float64 { return cellAspect }

func (s *Screen) TextSize() (float64, float64) { return 1, 1 }

func (s *Screen) Line(x0, y0, x1, y1 float64, c render.RGB) {
	glyph := lineGlyph(x1-x0, y1-y0)
	style := styleOf(c)

	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		s.set(x0, y0, glyph, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.set(x0+dx*t, y0+dy*t, glyph, style)
	}
}

func (s *Screen) Arrowhead(x, y, dx, dy float64, c render.RGB) {
	if dx == 0 && dy == 0 {
		return
	}
	s.set(x, y, headGlyph(dx, dy), styleOf(c))
}

func (s *Screen) Marker(x, y float64, c render.RGB) {
	s.set(x, y, '●', styleOf(c))
}

func (s *Screen) Text(x, y float64, str string, c render.RGB) {
	style := styleOf(c)
	col, row := int(x), int(y)
	for _, r := range str {
		s.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// set draws one cell, out-of-bounds cells are dropped
func (s *Screen) set(x, y float64, r rune, style tcell.Style) {
	col, row := int(math.Round(x)), int(math.Round(y))
	w, h := s.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	s.screen.SetContent(col, row, r, nil, style)
}

func styleOf(c render.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// lineGlyph picks a box drawing rune for a cell-space direction, y grows down
func lineGlyph(dx, dy float64) rune {
	sy := dy * cellAspect
	ax, ay := math.Abs(dx), math.Abs(sy)
	switch {
	case ay <= slopeThreshold*ax:
		return '─'
	case ax <= slopeThreshold*ay:
		return '│'
	case (dx > 0) == (sy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// headGlyph picks one of eight arrows for a cell-space direction, y grows down
func headGlyph(dx, dy float64) rune {
	angle := math.Atan2(-dy*cellAspect, dx)
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headGlyphs[octant]
}
