package main

import (
	"flag"

	"github.com/lixenwraith/radfield/config"
	"github.com/lixenwraith/radfield/parameter"
)

type flagOptions struct {
	configPath *string
	display    *string
	debug      *bool

	num      *int
	frames   *int
	interval *int
	dt       *float64
	loop     *bool
	workers  *int
	audio    *bool
}

func registerFlags(fs *flag.FlagSet) *flagOptions {
	return &flagOptions{
		configPath: fs.String("config", "", "TOML configuration file"),
		display:    fs.String("display", config.DisplayTerminal, "Display: terminal, window"),
		debug:      fs.Bool("debug", false, "Write logs to logs/radfield.log"),

		num:      fs.Int("num", parameter.GridNum, "Grid points per axis"),
		frames:   fs.Int("frames", parameter.AnimationFrames, "Frames per animation cycle"),
		interval: fs.Int("interval", int(parameter.AnimationInterval.Milliseconds()), "Milliseconds between frames"),
		dt:       fs.Float64("dt", parameter.AnimationDt, "Simulation time per frame"),
		loop:     fs.Bool("loop", parameter.AnimationLoop, "Restart after the last frame"),
		workers:  fs.Int("workers", parameter.AnimationWorkers, "Field evaluation goroutines"),
		audio:    fs.Bool("audio", parameter.AudioEnabled, "Play the probe tone"),
	}
}

// apply overlays only the flags given on the command line
func (o *flagOptions) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "display":
			cfg.Display = *o.display
		case "num":
			cfg.Grid.Num = *o.num
			cfg.Grid.NX, cfg.Grid.NY, cfg.Grid.NZ = 0, 0, 0
		case "frames":
			cfg.Animation.Frames = *o.frames
		case "interval":
			cfg.Animation.IntervalMS = *o.interval
		case "dt":
			cfg.Animation.Dt = *o.dt
		case "loop":
			cfg.Animation.Loop = *o.loop
		case "workers":
			cfg.Animation.Workers = *o.workers
		case "audio":
			cfg.Audio.Enabled = *o.audio
		}
	})
}
