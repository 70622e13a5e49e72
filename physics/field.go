package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/lixenwraith/radfield/core"
	"github.com/lixenwraith/radfield/grid"
	"github.com/lixenwraith/radfield/parameter"
	"github.com/lixenwraith/radfield/vmath"
)

// Epsilon is the unconditional distance shift
const Epsilon = parameter.DistanceEpsilon

// Constants holds the physical constants, immutable for a run
type Constants struct {
	Q        float64 // charge, C
	Epsilon0 float64 // vacuum permittivity, F/m
	C        float64 // speed of light, m/s
}

// DefaultConstants returns SI values for a 1 nC charge
func DefaultConstants() Constants {
	return Constants{
		Q:        parameter.ChargeQ,
		Epsilon0: parameter.Epsilon0,
		C:        parameter.SpeedOfLight,
	}
}

// Validate checks positivity where it is physically required
// Q may be any finite value, zero yields a zero field
func (c Constants) Validate() error {
	if math.IsNaN(c.Q) || math.IsInf(c.Q, 0) {
		return fmt.Errorf("%w: charge q=%g is not finite", core.ErrInvalidConfiguration, c.Q)
	}
	if !(c.Epsilon0 > 0) || math.IsInf(c.Epsilon0, 0) {
		return fmt.Errorf("%w: epsilon0=%g must be positive", core.ErrInvalidConfiguration, c.Epsilon0)
	}
	if !(c.C > 0) || math.IsInf(c.C, 0) {
		return fmt.Errorf("%w: c=%g must be positive", core.ErrInvalidConfiguration, c.C)
	}
	return nil
}

// Coulomb returns q / (4π ε0)
func (c Constants) Coulomb() float64 {
	return c.Q / (4 * math.Pi * c.Epsilon0)
}

// Prefactor returns q / (4π ε0 c²), the scale of the radiation term per unit acceleration and 1/r
func Prefactor(c Constants) float64 {
	return c.Coulomb() / (c.C * c.C)
}

// Kinematics is the uniform motion of the charge, immutable for a run
// Acceleration feeds only the radiation term, the position stays linear
type Kinematics struct {
	Velocity     vmath.Vec3F
	Acceleration vmath.Vec3F
}

// DefaultKinematics returns the default velocity and acceleration
func DefaultKinematics() Kinematics {
	return Kinematics{
		Velocity:     vmath.V3FFromSlice(parameter.DefaultVelocity[:]),
		Acceleration: vmath.V3FFromSlice(parameter.DefaultAcceleration[:]),
	}
}

// ChargePosition returns u * t
func ChargePosition(t float64, k Kinematics) vmath.Vec3F {
	return vmath.Vec3F{
		X: k.Velocity.X * t,
		Y: k.Velocity.Y * t,
		Z: k.Velocity.Z * t,
	}
}

// Field is the radiated field sampled on a grid
// X, Y, Z are aligned index-for-index with the grid coordinate slices
type Field struct {
	X, Y, Z []float64
	Shape   [3]int
	Charge  vmath.Vec3F
	Time    float64
}

// Len returns the number of samples
func (f *Field) Len() int { return len(f.X) }

// Vector returns the field vector at flat index idx
func (f *Field) Vector(idx int) vmath.Vec3F {
	return vmath.Vec3F{X: f.X[idx], Y: f.Y[idx], Z: f.Z[idx]}
}

// Magnitudes fills dst with |E| per sample, reallocating when dst is short
func (f *Field) Magnitudes(dst []float64) []float64 {
	n := f.Len()
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = math.Sqrt(f.X[i]*f.X[i] + f.Y[i]*f.Y[i] + f.Z[i]*f.Z[i])
	}
	return dst
}

// Peak returns the largest |E|, zero for an empty field
func (f *Field) Peak() float64 {
	if f.Len() == 0 {
		return 0
	}
	return floats.Max(f.Magnitudes(nil))
}

// resize prepares f to hold n samples, reusing backing arrays when possible
func (f *Field) resize(n int, shape [3]int) {
	if cap(f.X) < n {
		f.X = make([]float64, n)
		f.Y = make([]float64, n)
		f.Z = make([]float64, n)
	}
	f.X, f.Y, f.Z = f.X[:n], f.Y[:n], f.Z[:n]
	f.Shape = shape
}

// radiation computes the far-field term at one point
// coulomb is q/(4π ε0), c2 is c²
func radiation(p, charge, a vmath.Vec3F, coulomb, c2 float64) vmath.Vec3F {
	rv := vmath.V3FSub(p, charge)
	r := vmath.V3FMag(rv) + Epsilon

	rHat := vmath.Vec3F{X: rv.X / r, Y: rv.Y / r, Z: rv.Z / r}

	cross1 := vmath.V3FCross(rHat, a)
	cross2 := vmath.V3FCross(cross1, rHat)

	denom := c2 * r
	return vmath.Vec3F{
		X: coulomb * cross2.X / denom,
		Y: coulomb * cross2.Y / denom,
		Z: coulomb * cross2.Z / denom,
	}
}

// FieldAt evaluates the radiated field at a single point
func FieldAt(t float64, p vmath.Vec3F, c Constants, k Kinematics) vmath.Vec3F {
	return radiation(p, ChargePosition(t, k), k.Acceleration, c.Coulomb(), c.C*c.C)
}

// Evaluate computes the radiated field on every grid point at time t
func Evaluate(t float64, g *grid.Grid, c Constants, k Kinematics) *Field {
	f := &Field{}
	EvaluateInto(f, t, g, c, k)
	return f
}

// EvaluateInto is Evaluate writing into dst, previous contents are overwritten
func EvaluateInto(dst *Field, t float64, g *grid.Grid, c Constants, k Kinematics) {
	n := g.Len()
	dst.resize(n, shapeOf(g))
	dst.Time = t
	dst.Charge = ChargePosition(t, k)

	evaluateRange(dst, g, c, k, 0, n)
}

// evaluateRange fills samples [lo, hi)
func evaluateRange(dst *Field, g *grid.Grid, c Constants, k Kinematics, lo, hi int) {
	coulomb := c.Coulomb()
	c2 := c.C * c.C
	charge := dst.Charge
	a := k.Acceleration

	for i := lo; i < hi; i++ {
		e := radiation(vmath.Vec3F{X: g.X[i], Y: g.Y[i], Z: g.Z[i]}, charge, a, coulomb, c2)
		dst.X[i], dst.Y[i], dst.Z[i] = e.X, e.Y, e.Z
	}
}

func shapeOf(g *grid.Grid) [3]int {
	if g == nil {
		return [3]int{}
	}
	return g.Shape
}
