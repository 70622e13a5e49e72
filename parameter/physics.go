package parameter

// Physical constants, SI units
const (
	// ChargeQ is the point charge in coulombs
	ChargeQ = 1e-9

	// Epsilon0 is the vacuum permittivity in F/m
	Epsilon0 = 8.85e-12

	// SpeedOfLight in m/s
	SpeedOfLight = 3e8

	// DistanceEpsilon is added to every charge-to-point distance
	// Keeps the radiation term finite at the charge position, biases all distances slightly up
	DistanceEpsilon = 1e-6
)

// Kinematics, arbitrary consistent units
var (
	// DefaultVelocity is the constant charge velocity u
	DefaultVelocity = [3]float64{0.5, 0.2, 0}

	// DefaultAcceleration is the fixed acceleration a driving the radiation term
	DefaultAcceleration = [3]float64{0, 0.1, 0.2}
)
