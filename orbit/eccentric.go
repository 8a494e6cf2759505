package orbit

import (
	"math"

	"github.com/jpdeleon/pandora-go/kepler"
)

// Eccentric computes sky-plane positions (in stellar radii) for a moon on
// an eccentric orbit of semimajor axis a, eccentricity e, and argument of
// periapsis wDeg around a planet whose barycenter track is xBary, together
// with the planet's own counter-displacement.
//
// See Circular for the remaining parameters; Eccentric shares the same
// rotation/barycentric-split step, differing only in how the orbital-plane
// position is computed (solving Kepler's equation per sample instead of
// using the mean anomaly directly).
func Eccentric(a, per, e, tau, omegaDeg, wDeg, iDeg float64, time, xBary []float64, massRatio, bBary float64) (xp, yp, xm, ym []float64) {
	n := len(time)
	xp, yp, xm, ym = make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)

	iRad := iDeg * math.Pi / 180.0
	omegaRad := omegaDeg * math.Pi / 180.0
	wRad := wDeg * math.Pi / 180.0

	for k, t := range time {
		M := meanAnomaly(t, per, tau)
		sol := kepler.Solve(M, e)
		nu := kepler.TrueAnomaly(sol.E, e)
		r := kepler.Radius(sol.E, e, a)

		px, py := r*math.Cos(nu+wRad), r*math.Sin(nu+wRad)
		dx, dy := project(px, py, iRad, omegaRad)
		xp[k], yp[k], xm[k], ym[k] = split(xBary[k], bBary, dx, dy, massRatio)
	}
	return xp, yp, xm, ym
}
