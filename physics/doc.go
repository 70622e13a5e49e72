// Package physics evaluates the radiation-zone electric field of an accelerating point charge.
//
// The field at a grid point P is the far-field Liénard–Wiechert term
//
//	E = q/(4π ε0) · ((R̂ × a) × R̂) / (c² r)
//
// with R = P - x(t), x(t) = u·t and r = |R| + DistanceEpsilon.
//
// The charge position is instantaneous, not retarded: the field at time t uses
// x(t) rather than x(t - r/c). The velocity (near-field) term is not included.
// Every distance is shifted by DistanceEpsilon so the field stays finite at
// the charge position; the bias is intentional.
//
// Evaluation is a pure function of its inputs. Grids and constants are only
// read, so concurrent calls for different times are safe. Non-finite inputs
// are not checked and propagate NaN.
package physics
