package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/radfield/animation"
	"github.com/lixenwraith/radfield/grid"
	"github.com/lixenwraith/radfield/physics"
	"github.com/lixenwraith/radfield/render"
	"github.com/lixenwraith/radfield/vmath"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim
}

func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen, *grid.Grid) {
	t.Helper()
	limits := [3]grid.Range{{Min: -1, Max: 4}, {Min: -1, Max: 4}, {Min: -2, Max: 4}}
	g, err := grid.Build(limits[0], limits[1], limits[2], 5)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	sim := newSimScreen(t, 100, 40)
	scene := render.NewScene(g, render.NewCamera(limits), render.DefaultSceneOptions())
	return Wrap(sim, scene), sim, g
}

// screenText returns the whole screen, one line per row
func screenText(s tcell.Screen) string {
	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := s.GetContent(x, y)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestScreen_Present(t *testing.T) {
	scr, sim, g := newTestScreen(t)

	frame := animation.Frame{
		Index:    0,
		Field:    physics.Evaluate(0, g, physics.DefaultConstants(), physics.DefaultKinematics()),
		Probe:    vmath.Vec3F{X: 1e-10},
		HasProbe: true,
	}
	if err := scr.Present(frame); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	text := screenText(sim)
	for _, want := range []string{"Electric field of a moving charge", "● charge", "frame 0", "●"} {
		if !strings.Contains(text, want) {
			t.Errorf("Screen missing %q", want)
		}
	}

	heads := 0
	for _, r := range text {
		for _, h := range headGlyphs {
			if r == h {
				heads++
			}
		}
	}
	if heads == 0 {
		t.Error("No arrowheads drawn")
	}
	if scr.Trace().Len() != 1 {
		t.Errorf("Trace len = %d, want 1", scr.Trace().Len())
	}
}

func TestScreen_TextClipped(t *testing.T) {
	scr, sim, _ := newTestScreen(t)
	// Out of bounds primitives must not panic
	scr.Line(-10, -10, 500, 500, render.RGBBox)
	scr.Marker(-1, 1000, render.RGBCharge)
	scr.Arrowhead(1e6, 0, 1, 0, render.RGBArrow)
	scr.Text(98, 0, "abc", render.RGBText)

	if r, _, _, _ := sim.GetContent(98, 0); r != 'a' {
		t.Errorf("Text cell = %q, want 'a'", r)
	}
}

func TestListen_Quit(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
	}{
		{"q", tcell.KeyRune, 'q', tcell.ModNone},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone},
		{"ctrl-c", tcell.KeyCtrlC, 0, tcell.ModCtrl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scr, sim, _ := newTestScreen(t)
			done := make(chan struct{})
			scr.Listen(func() { close(done) })

			sim.InjectKey(tt.key, tt.r, tt.mod)
			<-done
		})
	}
}

func TestLineGlyph(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   rune
	}{
		{5, 0, '─'},
		{-5, 0.1, '─'},
		{0, 3, '│'},
		{0.1, -3, '│'},
		{2, 1, '╲'},
		{-2, -1, '╲'},
		{2, -1, '╱'},
		{-2, 1, '╱'},
	}
	for _, tt := range tests {
		if got := lineGlyph(tt.dx, tt.dy); got != tt.want {
			t.Errorf("lineGlyph(%g, %g) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestHeadGlyph(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   rune
	}{
		{1, 0, '→'},
		{0, -1, '↑'},
		{-1, 0, '←'},
		{0, 1, '↓'},
		{1, -0.5, '↗'},
		{-1, 0.5, '↙'},
	}
	for _, tt := range tests {
		if got := headGlyph(tt.dx, tt.dy); got != tt.want {
			t.Errorf("headGlyph(%g, %g) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}
