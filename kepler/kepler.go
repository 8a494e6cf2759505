// Package kepler solves Kepler's equation M = E − e·sin E for the
// eccentric anomaly E, given the mean anomaly M and eccentricity e.
//
// This is the same Newton-Raphson iteration goeph's minor-planet propagator
// used internally, pulled out as its own package since both the planet
// barycenter orbit and the moon orbit around the planet need it.
package kepler

import "math"

const (
	// tolerance is the convergence threshold on successive E iterates,
	// in radians.
	tolerance = 1e-7

	// maxIterations bounds the Newton loop; non-convergence is fails-soft
	// (Converged is reported false and the last iterate is returned).
	maxIterations = 50
)

// Solution is the result of solving Kepler's equation.
type Solution struct {
	E         float64 // eccentric anomaly, radians
	Converged bool    // false if maxIterations was hit without meeting tolerance
}

// Solve finds the eccentric anomaly E for mean anomaly M (radians) and
// eccentricity e in [0, 1), using Newton-Raphson with initial guess E0 = M.
//
// Non-convergence is non-fatal (spec.md's NumericalWarning): Solve always
// returns its best iterate, with Converged reporting whether the tolerance
// was met within maxIterations steps.
func Solve(M, e float64) Solution {
	E := M
	for i := 0; i < maxIterations; i++ {
		sinE, cosE := math.Sincos(E)
		f := E - e*sinE - M
		fp := 1.0 - e*cosE
		dE := -f / fp
		E += dE
		if math.Abs(dE) < tolerance {
			return Solution{E: E, Converged: true}
		}
	}
	return Solution{E: E, Converged: false}
}

// TrueAnomaly returns the true anomaly ν (radians) for eccentric anomaly E
// and eccentricity e.
func TrueAnomaly(E, e float64) float64 {
	return 2 * math.Atan2(math.Sqrt(1+e)*math.Sin(E/2), math.Sqrt(1-e)*math.Cos(E/2))
}

// Radius returns the orbital radius for eccentric anomaly E, eccentricity
// e, and semimajor axis a (same length unit as the result).
func Radius(E, e, a float64) float64 {
	return a * (1 - e*math.Cos(E))
}
