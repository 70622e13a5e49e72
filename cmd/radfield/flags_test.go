package main

import (
	"flag"
	"io"
	"testing"

	"github.com/lixenwraith/radfield/config"
)

func parse(t *testing.T, args ...string) (*flag.FlagSet, *flagOptions) {
	t.Helper()
	fs := flag.NewFlagSet("radfield", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return fs, opts
}

func TestFlags_OnlyExplicitOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Animation.Frames = 40
	cfg.Grid.NZ = 3

	fs, opts := parse(t, "-dt", "0.2", "-loop=false")
	opts.apply(fs, cfg)

	if cfg.Animation.Dt != 0.2 || cfg.Animation.Loop {
		t.Errorf("animation = %+v, want dt 0.2 and no loop", cfg.Animation)
	}
	// Unset flags keep lower layers
	if cfg.Animation.Frames != 40 {
		t.Errorf("frames = %d, want 40 from file layer", cfg.Animation.Frames)
	}
	if cfg.Grid.NZ != 3 {
		t.Errorf("nz = %d, want 3", cfg.Grid.NZ)
	}
}

func TestFlags_NumResetsAxisOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.NX = 4

	fs, opts := parse(t, "-num", "6")
	opts.apply(fs, cfg)

	if nx, ny, nz := cfg.GridCounts(); nx != 6 || ny != 6 || nz != 6 {
		t.Errorf("grid counts = %d %d %d, want 6 6 6", nx, ny, nz)
	}
}

func TestLoadConfig(t *testing.T) {
	for _, k := range []string{config.EnvQ, config.EnvEpsilon0, config.EnvC, config.EnvNum, config.EnvFrames, config.EnvDt, config.EnvAudio, config.EnvDisplay} {
		t.Setenv(k, "")
	}
	t.Setenv(config.EnvFrames, "12")

	fs, opts := parse(t, "-display", "window", "-workers", "4")
	cfg, err := loadConfig(fs, opts)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Display != config.DisplayWindow || cfg.Animation.Workers != 4 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Animation.Frames != 12 {
		t.Errorf("frames = %d, want 12 from env", cfg.Animation.Frames)
	}

	fs, opts = parse(t, "-frames", "0")
	if _, err := loadConfig(fs, opts); err == nil {
		t.Error("Expected validation error for zero frames")
	}
}
