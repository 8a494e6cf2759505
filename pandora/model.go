// Package pandora composes the barycenter, orbit, occult, and eclipse
// packages into a full planet-moon transit light curve: given a
// params.Bundle and a time grid, it returns the relative flux of the
// host star at each sample.
package pandora

import (
	"math"

	"github.com/jpdeleon/pandora-go/barycenter"
	"github.com/jpdeleon/pandora-go/eclipse"
	"github.com/jpdeleon/pandora-go/geometry"
	"github.com/jpdeleon/pandora-go/occult"
	"github.com/jpdeleon/pandora-go/orbit"
	"github.com/jpdeleon/pandora-go/pandoraerr"
	"github.com/jpdeleon/pandora-go/params"
	"github.com/jpdeleon/pandora-go/resample"
	"github.com/jpdeleon/pandora-go/units"
)

// gravitationalConstant is G in SI units (m^3 kg^-1 s^-2), held to this
// exact value so derived quantities reproduce the reference model's
// outputs.
const gravitationalConstant = 6.67408e-11

const secondsPerDay = 86400.0

// moonOffDisc is the sky position (in stellar radii) the moon is forced to
// when its orbit is unphysical, so it never occults the star.
const moonOffDisc = 1e8

// moonSemimajorAxisKm derives the moon's physical orbital semimajor axis
// from Kepler's third law, since params.Bundle specifies the moon's orbit
// by period rather than by size directly.
func moonSemimajorAxisKm(perMoonDays, mPlanetKg, massRatio float64) float64 {
	mMoonKg := massRatio * mPlanetKg
	periodSec := perMoonDays * secondsPerDay
	a3 := gravitationalConstant * (mPlanetKg + mMoonKg) * periodSec * periodSec / (4 * math.Pi * math.Pi)
	return math.Cbrt(a3) / 1000.0
}

// starMassKg derives the stellar mass from the planet-barycenter orbit via
// Kepler's third law. params.Bundle's star fields carry limb darkening and
// radius only, so mass is recovered from the orbit it already models
// rather than taken as a separate, independently-suppliable input.
func starMassKg(aBaryStellar, rStarKm, perBaryDays float64) float64 {
	aBaryM := aBaryStellar * rStarKm * 1000.0
	periodSec := perBaryDays * secondsPerDay
	return 4 * math.Pi * math.Pi * aBaryM * aBaryM * aBaryM / (gravitationalConstant * periodSec * periodSec)
}

// hillRadiusKm returns the planet's Hill sphere radius, the boundary
// beyond which a satellite orbit is not gravitationally stable against the
// star's tide.
func hillRadiusKm(aBaryKm, mPlanetKg, mStarKg float64) float64 {
	if mStarKg <= 0 {
		return math.Inf(1)
	}
	return aBaryKm * math.Cbrt(mPlanetKg/(3*mStarKg))
}

// unphysical reports whether a moon at aMoonKm is gravitationally or
// physically implausible around a planet described by eff and mStarKg:
// either beyond the planet's Hill sphere by more than eff's
// HillSphereThreshold, or orbiting closer than the planet and moon's
// combined radii, which would collide.
func unphysical(eff params.Bundle, mStarKg, aMoonKm float64) bool {
	rHillKm := hillRadiusKm(eff.ABary*eff.RStarKm, eff.MPlanetKg, mStarKg)
	if rHillKm <= 0 || aMoonKm/rHillKm > eff.HillSphereThreshold {
		return true
	}
	rPlanetKm := eff.RPlanet * eff.RStarKm
	rMoonKm := eff.RMoon * eff.RStarKm
	return aMoonKm < rPlanetKm+rMoonKm
}

// Unphysical reports whether p's moon orbit is gravitationally or
// physically implausible (see unphysical). When true, Coordinates forces
// the moon off the stellar disc entirely rather than modeling it.
func Unphysical(p *params.Bundle) bool {
	eff := p.Effective()
	mStarKg := starMassKg(eff.ABary, eff.RStarKm, eff.PerBaryDays)
	aMoonKm := moonSemimajorAxisKm(eff.PerMoonDays, eff.MPlanetKg, eff.MassRatio)
	return unphysical(eff, mStarKg, aMoonKm)
}

// Coordinates returns the sky-plane positions (in stellar radii, star
// centered at the origin) of the planet and moon barycenters at each
// sample in time, and the moon's derived semimajor axis (stellar radii).
// If p's moon orbit is unphysical, the moon's position is forced to
// moonOffDisc at every sample so it never occults the star.
func Coordinates(p *params.Bundle, time []float64) (xp, yp, xm, ym []float64, aMoonStellar float64) {
	eff := p.Effective()

	mStarKg := starMassKg(eff.ABary, eff.RStarKm, eff.PerBaryDays)
	aMoonKm := moonSemimajorAxisKm(eff.PerMoonDays, eff.MPlanetKg, eff.MassRatio)
	aMoonStellar = units.NewDistance(aMoonKm).StellarRadii(eff.RStarKm)

	xBary := barycenter.Track(time, eff.PerBaryDays, eff.ABary, eff.T0BaryDays, eff.T0BaryOffsetDays, eff.EpochDistanceDays, eff.EccBary, eff.WBaryDeg)

	if eff.EccMoon == 0 {
		xp, yp, xm, ym = orbit.Circular(aMoonStellar, eff.PerMoonDays, eff.TauMoon, eff.OmegaMoonDeg, eff.IMoonDeg, time, xBary, eff.MassRatio, eff.BBary)
	} else {
		xp, yp, xm, ym = orbit.Eccentric(aMoonStellar, eff.PerMoonDays, eff.EccMoon, eff.TauMoon, eff.OmegaMoonDeg, eff.WMoonDeg, eff.IMoonDeg, time, xBary, eff.MassRatio, eff.BBary)
	}

	if unphysical(eff, mStarKg, aMoonKm) {
		for k := range time {
			xm[k], ym[k] = moonOffDisc, moonOffDisc
		}
	}
	return xp, yp, xm, ym, aMoonStellar
}

// Evaluate returns the relative flux (1 = unocculted) of the star at each
// sample of time, block-averaged back down by p's SupersamplingFactor.
// time is expected to already be supersampled (timegrid.Build does this),
// so len(time) must be evenly divisible by p.Effective().SupersamplingFactor.
// An empty time returns pandoraerr.ErrEmptyTimeGrid.
func Evaluate(p *params.Bundle, time []float64) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(time) == 0 {
		return nil, pandoraerr.ErrEmptyTimeGrid
	}
	eff := p.Effective()

	xp, yp, xm, ym, _ := Coordinates(&eff, time)

	fine := make([]float64, len(time))
	for k := range time {
		zp := geometry.Separation(xp[k], yp[k], 0, 0)
		zm := geometry.Separation(xm[k], ym[k], 0, 0)

		fluxPlanet := occult.Quadratic(eff.RPlanet, zp, eff.U1, eff.U2)
		fluxMoon := moonFlux(eff.RMoon, zm, eff.U1, eff.U2, eff.OccultSmallThreshold)

		total := 1 - (1 - fluxPlanet) - (1 - fluxMoon)
		total += eclipse.Mutual(xp[k], yp[k], eff.RPlanet, xm[k], ym[k], eff.RMoon, eff.U1, eff.U2, eff.NumericalGrid)
		fine[k] = total
	}

	return resample.Average(fine, eff.SupersamplingFactor)
}

// moonFlux picks occult.Small over occult.Quadratic when k is below
// threshold, per spec.md's accuracy/cost tradeoff for small occulters. The
// planet always uses occult.Quadratic exactly, regardless of its size.
func moonFlux(k, z, u1, u2, threshold float64) float64 {
	if k < threshold {
		return occult.Small(k, z, u1, u2)
	}
	return occult.Quadratic(k, z, u1, u2)
}
