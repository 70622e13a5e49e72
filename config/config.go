// Package config holds the startup configuration of a simulation run.
//
// Values are layered: built-in defaults, then an optional TOML file, then
// RADFIELD_* environment variables; the command applies flags last.
// A validated Config is never mutated after startup.
package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/radfield/core"
	"github.com/lixenwraith/radfield/grid"
	"github.com/lixenwraith/radfield/parameter"
	"github.com/lixenwraith/radfield/physics"
	"github.com/lixenwraith/radfield/vmath"
)

// Display backends
const (
	DisplayTerminal = "terminal"
	DisplayWindow   = "window"
)

// Config holds the parameters required for running a simulation
type Config struct {
	Display string `toml:"display"` // terminal or window

	Physics   PhysicsConfig   `toml:"physics"`
	Motion    MotionConfig    `toml:"motion"`
	Grid      GridConfig      `toml:"grid"`
	Animation AnimationConfig `toml:"animation"`
	Render    RenderConfig    `toml:"render"`
	Probe     ProbeConfig     `toml:"probe"`
	Audio     AudioConfig     `toml:"audio"`
}

// PhysicsConfig holds the physical constants, SI units
type PhysicsConfig struct {
	Q        float64 `toml:"q"`
	Epsilon0 float64 `toml:"epsilon0"`
	C        float64 `toml:"c"`
}

// MotionConfig holds the constant kinematic vectors
type MotionConfig struct {
	Velocity     []float64 `toml:"velocity"`
	Acceleration []float64 `toml:"acceleration"`
}

// GridConfig holds the lattice extent and resolution
// NX/NY/NZ override Num per axis when non-zero
type GridConfig struct {
	X   []float64 `toml:"x"`
	Y   []float64 `toml:"y"`
	Z   []float64 `toml:"z"`
	Num int       `toml:"num"`
	NX  int       `toml:"nx"`
	NY  int       `toml:"ny"`
	NZ  int       `toml:"nz"`
}

// AnimationConfig holds the frame loop parameters
type AnimationConfig struct {
	Frames     int     `toml:"frames"`
	IntervalMS int     `toml:"interval_ms"`
	Dt         float64 `toml:"dt"`
	Loop       bool    `toml:"loop"`
	Workers    int     `toml:"workers"`
}

// RenderConfig holds quiver and view parameters
// Limits may be left empty to follow the grid extent
type RenderConfig struct {
	Length    float64      `toml:"length"`
	Normalize bool         `toml:"normalize"`
	Title     string       `toml:"title"`
	Limits    LimitsConfig `toml:"limits"`
}

// LimitsConfig holds plotted axis limits, decoupled from grid resolution
type LimitsConfig struct {
	X []float64 `toml:"x"`
	Y []float64 `toml:"y"`
	Z []float64 `toml:"z"`
}

// ProbeConfig holds the observation point for the trace and tone
type ProbeConfig struct {
	Point []float64 `toml:"point"`
}

// AudioConfig holds the probe tone settings
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Display: DisplayTerminal,
		Physics: PhysicsConfig{
			Q:        parameter.ChargeQ,
			Epsilon0: parameter.Epsilon0,
			C:        parameter.SpeedOfLight,
		},
		Motion: MotionConfig{
			Velocity:     clone(parameter.DefaultVelocity[:]),
			Acceleration: clone(parameter.DefaultAcceleration[:]),
		},
		Grid: GridConfig{
			X:   clone(parameter.GridRangeX[:]),
			Y:   clone(parameter.GridRangeY[:]),
			Z:   clone(parameter.GridRangeZ[:]),
			Num: parameter.GridNum,
		},
		Animation: AnimationConfig{
			Frames:     parameter.AnimationFrames,
			IntervalMS: int(parameter.AnimationInterval / time.Millisecond),
			Dt:         parameter.AnimationDt,
			Loop:       parameter.AnimationLoop,
			Workers:    parameter.AnimationWorkers,
		},
		Render: RenderConfig{
			Length:    parameter.ArrowLength,
			Normalize: parameter.ArrowNormalize,
			Title:     parameter.DefaultTitle,
		},
		Probe: ProbeConfig{
			Point: clone(parameter.DefaultProbe[:]),
		},
		Audio: AudioConfig{
			Enabled: parameter.AudioEnabled,
			Volume:  parameter.ProbeToneVolume,
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path and the environment
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeFile overlays the TOML file, unknown keys are rejected
func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", core.ErrInvalidConfiguration, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s: unknown keys %s", core.ErrInvalidConfiguration, path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks every startup constraint, errors wrap core.ErrInvalidConfiguration
func (c *Config) Validate() error {
	if c.Display != DisplayTerminal && c.Display != DisplayWindow {
		return invalid("display %q must be %q or %q", c.Display, DisplayTerminal, DisplayWindow)
	}

	if err := c.Constants().Validate(); err != nil {
		return err
	}

	if err := vector("motion.velocity", c.Motion.Velocity); err != nil {
		return err
	}
	if err := vector("motion.acceleration", c.Motion.Acceleration); err != nil {
		return err
	}

	for _, r := range []struct {
		name string
		v    []float64
	}{{"grid.x", c.Grid.X}, {"grid.y", c.Grid.Y}, {"grid.z", c.Grid.Z}} {
		if err := interval(r.name, r.v); err != nil {
			return err
		}
	}
	nx, ny, nz := c.GridCounts()
	if nx < 1 || ny < 1 || nz < 1 {
		return invalid("grid point counts (%d, %d, %d) must be at least 1", nx, ny, nz)
	}

	a := c.Animation
	if a.Frames < 1 {
		return invalid("animation.frames=%d must be at least 1", a.Frames)
	}
	if a.IntervalMS <= 0 {
		return invalid("animation.interval_ms=%d must be positive", a.IntervalMS)
	}
	if math.IsNaN(a.Dt) || math.IsInf(a.Dt, 0) {
		return invalid("animation.dt=%g is not finite", a.Dt)
	}
	if a.Workers < 1 {
		return invalid("animation.workers=%d must be at least 1", a.Workers)
	}

	if !(c.Render.Length > 0) || math.IsInf(c.Render.Length, 0) {
		return invalid("render.length=%g must be positive", c.Render.Length)
	}
	for _, r := range []struct {
		name string
		v    []float64
	}{{"render.limits.x", c.Render.Limits.X}, {"render.limits.y", c.Render.Limits.Y}, {"render.limits.z", c.Render.Limits.Z}} {
		if len(r.v) == 0 {
			continue
		}
		if err := interval(r.name, r.v); err != nil {
			return err
		}
	}

	if err := vector("probe.point", c.Probe.Point); err != nil {
		return err
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 || math.IsNaN(c.Audio.Volume) {
		return invalid("audio.volume=%g must be in [0, 1]", c.Audio.Volume)
	}

	return nil
}

// Constants returns the physical constants
func (c *Config) Constants() physics.Constants {
	return physics.Constants{Q: c.Physics.Q, Epsilon0: c.Physics.Epsilon0, C: c.Physics.C}
}

// Kinematics returns the velocity and acceleration vectors
func (c *Config) Kinematics() physics.Kinematics {
	return physics.Kinematics{
		Velocity:     vmath.V3FFromSlice(c.Motion.Velocity),
		Acceleration: vmath.V3FFromSlice(c.Motion.Acceleration),
	}
}

// GridCounts returns per-axis point counts, falling back to Num
func (c *Config) GridCounts() (nx, ny, nz int) {
	pick := func(n int) int {
		if n != 0 {
			return n
		}
		return c.Grid.Num
	}
	return pick(c.Grid.NX), pick(c.Grid.NY), pick(c.Grid.NZ)
}

// GridRanges returns the lattice extent
func (c *Config) GridRanges() [3]grid.Range {
	return [3]grid.Range{toRange(c.Grid.X), toRange(c.Grid.Y), toRange(c.Grid.Z)}
}

// BuildGrid constructs the sample lattice
func (c *Config) BuildGrid() (*grid.Grid, error) {
	r := c.GridRanges()
	nx, ny, nz := c.GridCounts()
	return grid.BuildAxes(r[0], r[1], r[2], nx, ny, nz)
}

// Limits returns plotted axis limits, grid extent where unset
func (c *Config) Limits() [3]grid.Range {
	out := c.GridRanges()
	for i, v := range [3][]float64{c.Render.Limits.X, c.Render.Limits.Y, c.Render.Limits.Z} {
		if len(v) == 2 {
			out[i] = toRange(v)
		}
	}
	return out
}

// Interval returns the wall-clock frame interval
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Animation.IntervalMS) * time.Millisecond
}

// ProbePoint returns the observation point
func (c *Config) ProbePoint() vmath.Vec3F {
	return vmath.V3FFromSlice(c.Probe.Point)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{core.ErrInvalidConfiguration}, args...)...)
}

func vector(name string, v []float64) error {
	if len(v) != 3 {
		return invalid("%s must have 3 components, got %d", name, len(v))
	}
	if !vmath.V3FIsFinite(vmath.V3FFromSlice(v)) {
		return invalid("%s %v is not finite", name, v)
	}
	return nil
}

func interval(name string, v []float64) error {
	if len(v) != 2 {
		return invalid("%s must be [min, max], got %d values", name, len(v))
	}
	if math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsInf(v[0], 0) || math.IsInf(v[1], 0) {
		return invalid("%s %v is not finite", name, v)
	}
	if v[0] >= v[1] {
		return invalid("%s %v is degenerate", name, v)
	}
	return nil
}

func toRange(v []float64) grid.Range {
	if len(v) != 2 {
		return grid.Range{}
	}
	return grid.Range{Min: v[0], Max: v[1]}
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
