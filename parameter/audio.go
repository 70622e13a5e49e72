package parameter

import "time"

// Probe tone
const (
	// AudioSampleRate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// ProbeToneFrequency is the fixed pitch in Hz, only amplitude follows the field
	ProbeToneFrequency = 440.0

	// ProbeToneVolume is the default master gain in [0,1]
	ProbeToneVolume = 0.3

	// ProbeToneSmoothing is the per-sample amplitude approach factor
	ProbeToneSmoothing = 0.002

	// AudioEnabled is off by default
	AudioEnabled = false
)
