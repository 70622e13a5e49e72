package parameter

import "math"

// Quiver
const (
	// ArrowLength is the world-space arrow length when normalized
	ArrowLength = 0.5

	// ArrowNormalize draws every arrow with ArrowLength regardless of magnitude
	ArrowNormalize = true

	// ArrowHeadFraction is barb length relative to the projected shaft
	ArrowHeadFraction = 0.35

	// ArrowHeadAngle is the barb opening angle in radians
	ArrowHeadAngle = 25 * math.Pi / 180

	// ArrowMinIntensity keeps weak arrows visible against the background
	ArrowMinIntensity = 0.35
)

// Camera, matches the default oblique view of common 3D plot tools
const (
	CameraAzimuth   = -60 * math.Pi / 180
	CameraElevation = 30 * math.Pi / 180

	// CameraFocal is eye distance from the box centre in normalized box units
	CameraFocal = 6.0

	// CameraMinDepth clamps the perspective divisor
	CameraMinDepth = 0.5

	// CameraSpan is the projected half-width that maps to the viewport edge
	CameraSpan = 1.9
)

// Display gain spring, smooths the per-frame peak used for shading
const (
	GainFPS       = 20
	GainFrequency = 4.0
	GainDamping   = 1.0
)

// Text
const (
	DefaultTitle = "Electric field of a moving charge"
	ChargeLabel  = "charge"
)

const (
	// ProbeHistory is the number of frames kept in the probe trace
	ProbeHistory = 60

	// ProbeTraceHeight is the plot height in rows
	ProbeTraceHeight = 5
)

// DefaultProbe is the observation point for the probe trace and tone
var DefaultProbe = [3]float64{4, 4, 4}
