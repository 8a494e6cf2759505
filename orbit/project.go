// Package orbit computes sky-plane positions (in stellar radii) of a moon
// orbiting a planet and the planet's barycentric counter-displacement, for
// both circular and eccentric moon orbits.
//
// Circular and Eccentric differ only in how they compute the orbital-plane
// (x, y) position before handing it to the shared project/split step —
// spec.md's design note calls this out explicitly, so it lives here once
// instead of being duplicated in both files.
package orbit

import "math"

// project rotates an orbital-plane position (px, py) by inclination i
// (about the line of nodes, the local x-axis) and then by ascending node
// Omega (about the sky's z-axis), both in radians, returning the resulting
// sky-plane displacement.
func project(px, py, iRad, omegaRad float64) (dx, dy float64) {
	cosI := math.Cos(iRad)
	sinO, cosO := math.Sincos(omegaRad)

	// Tilt by inclination about the line of nodes; the depth component
	// (py*sinI) is dropped since only the sky-plane projection is needed.
	y1 := py * cosI

	// Rotate by the longitude of the ascending node.
	dx = px*cosO - y1*sinO
	dy = px*sinO + y1*cosO
	return dx, dy
}

// split takes the full moon-relative-to-planet sky displacement (dx, dy)
// and the planet barycenter track, and returns the planet and moon sky
// positions after splitting the orbit about the planet-moon barycenter by
// mass ratio massRatio = M_moon/M_planet.
func split(xBary, bBary, dx, dy, massRatio float64) (xp, yp, xm, ym float64) {
	frac := massRatio / (1 + massRatio)
	xp = xBary - frac*dx
	yp = bBary - frac*dy
	xm = xp + dx
	ym = yp + dy
	return xp, yp, xm, ym
}

// reduceAngle reduces a radian angle to [0, 2π).
func reduceAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// meanAnomaly returns the mean anomaly (radians, reduced to [0, 2π)) of a
// body with period perDays and mean-anomaly offset tau (a fraction of the
// period, in [0, 1)) at time t (days).
func meanAnomaly(t, perDays, tau float64) float64 {
	return reduceAngle(2 * math.Pi * (t/perDays - tau))
}
