// Package audio sonifies the field at the probe point.
//
// The tone has a fixed pitch; only its loudness follows |E| at the probe,
// normalized by the running peak so the default nC charge is audible.
package audio

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/radfield/animation"
	"github.com/lixenwraith/radfield/parameter"
	"github.com/lixenwraith/radfield/vmath"
)

// ProbeTone is an endless sine whose amplitude tracks a target level
// Stream runs on the speaker goroutine, SetLevel and Present on the driver goroutine
type ProbeTone struct {
	rate beep.SampleRate
	freq float64

	phase float64
	level float64       // current amplitude, speaker goroutine only
	bits  atomic.Uint64 // target amplitude as float64 bits

	mu   sync.Mutex
	peak float64 // running peak of |E| seen by Present
}

// NewProbeTone creates a silent tone at the default pitch
func NewProbeTone(rate beep.SampleRate) *ProbeTone {
	return &ProbeTone{
		rate: rate,
		freq: parameter.ProbeToneFrequency,
	}
}

// SetLevel sets the target amplitude, clamped to [0,1]
func (t *ProbeTone) SetLevel(level float64) {
	if !(level > 0) {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	t.bits.Store(math.Float64bits(level))
}

// Target returns the amplitude the tone is moving toward
func (t *ProbeTone) Target() float64 {
	return math.Float64frombits(t.bits.Load())
}

// Present sets the level from the probe magnitude of frame
func (t *ProbeTone) Present(frame animation.Frame) error {
	if !frame.HasProbe {
		return nil
	}
	mag := vmath.V3FMag(frame.Probe)
	if math.IsNaN(mag) || math.IsInf(mag, 0) {
		return nil
	}

	t.mu.Lock()
	if mag > t.peak {
		t.peak = mag
	}
	peak := t.peak
	t.mu.Unlock()

	if peak == 0 {
		t.SetLevel(0)
		return nil
	}
	t.SetLevel(mag / peak)
	return nil
}

func (t *ProbeTone) Stream(samples [][2]float64) (n int, ok bool) {
	target := t.Target()
	step := t.freq / float64(t.rate)
	for i := range samples {
		t.level += (target - t.level) * parameter.ProbeToneSmoothing
		val := t.level * math.Sin(2*math.Pi*t.phase)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += step
		t.phase -= math.Floor(t.phase)
	}
	return len(samples), true
}

func (t *ProbeTone) Err() error { return nil }

// Level returns the current smoothed amplitude, call only when not streaming
func (t *ProbeTone) Level() float64 { return t.level }

// newVolume wraps s with a linear master volume
// math.Log2(0) is -Inf, so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
