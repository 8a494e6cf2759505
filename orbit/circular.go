package orbit

import "math"

// Circular computes sky-plane positions (in stellar radii) for a moon on a
// circular orbit of semimajor axis a around a planet whose barycenter track
// is xBary, together with the planet's own counter-displacement.
//
// per is the moon's orbital period (days), tau its mean-anomaly offset at
// t=0 (a fraction of the period, in [0,1)), omegaDeg the longitude of the
// ascending node, iDeg the orbital inclination, both in degrees. bBary is
// the (constant) planet-barycenter impact parameter. massRatio is
// M_moon/M_planet.
func Circular(a, per, tau, omegaDeg, iDeg float64, time, xBary []float64, massRatio, bBary float64) (xp, yp, xm, ym []float64) {
	n := len(time)
	xp, yp, xm, ym = make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)

	iRad := iDeg * math.Pi / 180.0
	omegaRad := omegaDeg * math.Pi / 180.0

	for k, t := range time {
		M := meanAnomaly(t, per, tau)
		px, py := a*math.Cos(M), a*math.Sin(M)
		dx, dy := project(px, py, iRad, omegaRad)
		xp[k], yp[k], xm[k], ym[k] = split(xBary[k], bBary, dx, dy, massRatio)
	}
	return xp, yp, xm, ym
}
