package render

import (
	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/radfield/parameter"
)

// Gain smooths the per-frame peak magnitude used to shade arrows
// A critically damped spring keeps colors from flickering when the peak jumps
type Gain struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	primed bool
}

// NewGain creates a gain with the default spring
func NewGain() *Gain {
	return &Gain{
		spring: harmonica.NewSpring(harmonica.FPS(parameter.GainFPS), parameter.GainFrequency, parameter.GainDamping),
	}
}

// Update moves the gain toward peak and returns the new value
// The first call snaps to peak, the result is never below peak's floor of zero
func (g *Gain) Update(peak float64) float64 {
	if !g.primed {
		g.pos, g.vel = peak, 0
		g.primed = true
		return g.pos
	}
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, peak)
	if g.pos < 0 {
		g.pos = 0
	}
	return g.pos
}

// Value returns the current gain
func (g *Gain) Value() float64 { return g.pos }

// Reset forgets the smoothed state
func (g *Gain) Reset() {
	g.pos, g.vel = 0, 0
	g.primed = false
}
