package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/radfield/animation"
	"github.com/lixenwraith/radfield/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Engine plays the probe tone on the system speaker
// Every method is safe to call before Initialize or after a failed Initialize
type Engine struct {
	mu          sync.Mutex
	tone        *ProbeTone
	ctrl        *beep.Ctrl
	volume      float64
	initialized bool
}

// NewEngine creates an engine with master volume in [0,1]
func NewEngine(volume float64) *Engine {
	return &Engine{
		tone:   NewProbeTone(sampleRate),
		volume: volume,
	}
}

// Tone returns the probe tone
func (e *Engine) Tone() *ProbeTone { return e.tone }

// Initialize opens the speaker and starts the tone
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	e.ctrl = &beep.Ctrl{Streamer: newVolume(e.tone, e.volume), Paused: false}
	speaker.Play(e.ctrl)
	e.initialized = true
	return nil
}

// Present forwards the frame to the tone
func (e *Engine) Present(frame animation.Frame) error {
	return e.tone.Present(frame)
}

// SetPaused mutes or resumes the tone
func (e *Engine) SetPaused(paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.ctrl.Paused = paused
	speaker.Unlock()
}

// Cleanup stops the tone and closes the speaker
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.ctrl.Paused = true
	speaker.Unlock()

	speaker.Clear()
	speaker.Close()
	e.initialized = false
}
