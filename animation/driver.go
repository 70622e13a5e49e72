// Package animation drives the per-frame field evaluation.
//
// The Driver owns the frame index and maps it to simulation time with
// t = frame * dt. Each call to Next evaluates the field once; the result is
// handed to a Sink (terminal, window, probe tone) which draws or consumes it.
// The core evaluator stays pure, all frame state lives here.
package animation

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/radfield/grid"
	"github.com/lixenwraith/radfield/physics"
	"github.com/lixenwraith/radfield/vmath"
)

// Frame is one evaluated animation step
// Field is owned by the Driver and valid until the next call to Next
type Frame struct {
	Index int
	Time  float64
	Field *physics.Field

	// Probe is the field at the observation point, zero without a probe
	Probe    vmath.Vec3F
	HasProbe bool
}

// Options configures a Driver
type Options struct {
	Frames   int           // frames per cycle
	Interval time.Duration // wall-clock time between frames
	Dt       float64       // simulation time per frame
	Loop     bool          // restart at frame 0 after the last frame
	Workers  int           // evaluation goroutines, <= 1 is sequential

	Probe    vmath.Vec3F
	HasProbe bool
}

// Driver maps frame indices to evaluated fields, not safe for concurrent use
type Driver struct {
	grid      *grid.Grid
	constants physics.Constants
	motion    physics.Kinematics
	opts      Options

	next   int // index of the frame produced by the next call to Next
	cycles int
	field  physics.Field
}

// NewDriver creates a driver over an immutable grid and configuration
func NewDriver(g *grid.Grid, c physics.Constants, k physics.Kinematics, opts Options) *Driver {
	if opts.Frames < 1 {
		opts.Frames = 1
	}
	return &Driver{
		grid:      g,
		constants: c,
		motion:    k,
		opts:      opts,
	}
}

// Grid returns the sample lattice
func (d *Driver) Grid() *grid.Grid { return d.grid }

// Options returns the driver configuration
func (d *Driver) Options() Options { return d.opts }

// Cycles returns the number of completed passes over all frames
func (d *Driver) Cycles() int { return d.cycles }

// TimeOf returns the simulation time of a frame index
func (d *Driver) TimeOf(frame int) float64 {
	return float64(frame) * d.opts.Dt
}

// Next evaluates the next frame
// Returns false once a non-looping run has produced its last frame
func (d *Driver) Next() (Frame, bool) {
	if d.next >= d.opts.Frames {
		if !d.opts.Loop {
			return Frame{}, false
		}
		d.next = 0
		d.cycles++
	}

	idx := d.next
	d.next++

	t := d.TimeOf(idx)
	if d.opts.Workers > 1 {
		physics.EvaluateParallelInto(&d.field, t, d.grid, d.constants, d.motion, d.opts.Workers)
	} else {
		physics.EvaluateInto(&d.field, t, d.grid, d.constants, d.motion)
	}

	f := Frame{
		Index: idx,
		Time:  t,
		Field: &d.field,
	}
	if d.opts.HasProbe {
		f.Probe = physics.FieldAt(t, d.opts.Probe, d.constants, d.motion)
		f.HasProbe = true
	}
	return f, true
}

// Reset rewinds to frame 0
func (d *Driver) Reset() {
	d.next = 0
	d.cycles = 0
}

// Run presents frames to sink at the configured interval
// Returns nil when a non-looping run ends or ctx is cancelled, or the first sink error
func (d *Driver) Run(ctx context.Context, sink Sink) error {
	interval := d.opts.Interval
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// First frame is shown immediately, later frames on each tick
	for {
		if ctx.Err() != nil {
			return nil
		}
		frame, ok := d.Next()
		if !ok {
			log.Printf("animation: run finished after %d frames", d.opts.Frames)
			return nil
		}
		if err := sink.Present(frame); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
