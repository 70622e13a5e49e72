package config

import (
	"os"
	"strconv"
)

// Environment variables recognized by ApplyEnv
const (
	EnvQ        = "RADFIELD_Q"
	EnvEpsilon0 = "RADFIELD_EPSILON0"
	EnvC        = "RADFIELD_C"
	EnvNum      = "RADFIELD_NUM"
	EnvFrames   = "RADFIELD_FRAMES"
	EnvDt       = "RADFIELD_DT"
	EnvAudio    = "RADFIELD_AUDIO"
	EnvDisplay  = "RADFIELD_DISPLAY"
)

// ApplyEnv overlays RADFIELD_* environment variables
// Unparseable values are configuration errors, not silently ignored
func (c *Config) ApplyEnv() error {
	floats := []struct {
		key string
		dst *float64
	}{
		{EnvQ, &c.Physics.Q},
		{EnvEpsilon0, &c.Physics.Epsilon0},
		{EnvC, &c.Physics.C},
		{EnvDt, &c.Animation.Dt},
	}
	for _, f := range floats {
		raw, ok := os.LookupEnv(f.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return invalid("%s=%q: %v", f.key, raw, err)
		}
		*f.dst = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvNum, &c.Grid.Num},
		{EnvFrames, &c.Animation.Frames},
	}
	for _, i := range ints {
		raw, ok := os.LookupEnv(i.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return invalid("%s=%q: %v", i.key, raw, err)
		}
		*i.dst = v
		if i.key == EnvNum {
			// A uniform count replaces per-axis counts from the file
			c.Grid.NX, c.Grid.NY, c.Grid.NZ = 0, 0, 0
		}
	}

	if raw := os.Getenv(EnvAudio); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return invalid("%s=%q: %v", EnvAudio, raw, err)
		}
		c.Audio.Enabled = v
	}

	if raw := os.Getenv(EnvDisplay); raw != "" {
		c.Display = raw
	}

	return nil
}
