// Package params defines the scalar input bundle for a pandora transit
// model evaluation: stellar, planetary-barycenter, and lunar orbital/physical
// parameters, plus the sampling knobs that control supersampling and the
// mutual-eclipse numerical grid.
//
// Bundle is immutable once built. Construct one with a struct literal and
// call Validate, or use Builder for chained, test-friendly construction.
package params

import (
	"github.com/pkg/errors"

	"github.com/jpdeleon/pandora-go/pandoraerr"
)

// Bundle holds every scalar parameter a pandora model evaluation needs.
// Angles are in degrees; the core engine converts to radians internally.
// Distances tied to the star (r_planet, r_moon, a_bary) are in units of
// R_star; R_star itself is in km. Times are in days, masses in kg.
type Bundle struct {
	// Star
	U1      float64 // quadratic limb-darkening coefficient
	U2      float64 // quadratic limb-darkening coefficient
	RStarKm float64 // stellar radius, km

	// Planet barycenter orbit
	PerBaryDays   float64 // orbital period, days
	ABary         float64 // semimajor axis, R_star
	RPlanet       float64 // planet radius, R_star
	BBary         float64 // impact parameter, R_star
	WBaryDeg      float64 // argument of periastron, degrees
	EccBary       float64 // eccentricity, [0, 1)
	T0BaryDays    float64 // reference mid-transit time, days
	T0BaryOffsetDays float64 // offset from nominal mid-transit, days
	MPlanetKg     float64 // planet mass, kg

	// Moon
	RMoon        float64 // moon radius, R_star
	PerMoonDays  float64 // moon orbital period around planet, days
	TauMoon      float64 // time of periastron / mean anomaly offset, [0, 1)
	OmegaMoonDeg float64 // longitude of ascending node, degrees
	IMoonDeg     float64 // inclination, degrees
	EccMoon      float64 // eccentricity, [0, 1)
	WMoonDeg     float64 // argument of periapsis, degrees
	MassRatio    float64 // M_moon / M_planet

	// Sampling
	EpochDistanceDays      float64 // nominal days between transits
	SupersamplingFactor    int     // cadences computed per returned sample
	OccultSmallThreshold   float64 // k below which the small-body model is used
	HillSphereThreshold    float64 // a_moon/r_hill fraction flagged unphysical
	NumericalGrid          int     // side length of the mutual-eclipse overlap grid
}

// DefaultOccultSmallThreshold is the k below which occult.Small is
// preferred over the full quadratic-law integral, occult.Quadratic.
const DefaultOccultSmallThreshold = 0.01

// DefaultHillSphereThreshold is the a_moon/r_hill fraction beyond which a
// moon orbit is flagged unphysical.
const DefaultHillSphereThreshold = 1.1

// DefaultNumericalGrid is the side length of the mutual-eclipse sampling
// grid used when NumericalGrid is left at zero.
const DefaultNumericalGrid = 25

// Validate checks the invariants spec.md §7 classifies as InvalidArgument.
// It does not check physical plausibility (Hill sphere, collision) — those
// are Degenerate, not errors, and are reported by pandora.Unphysical
// instead.
func (b *Bundle) Validate() error {
	if b.SupersamplingFactor < 1 {
		return errors.Wrapf(pandoraerr.ErrSupersamplingFactor, "got %d", b.SupersamplingFactor)
	}
	if b.EccBary < 0 || b.EccBary >= 1 {
		return errors.Wrapf(pandoraerr.ErrEccentricity, "ecc_bary = %g", b.EccBary)
	}
	if b.EccMoon < 0 || b.EccMoon >= 1 {
		return errors.Wrapf(pandoraerr.ErrEccentricity, "ecc_moon = %g", b.EccMoon)
	}
	if b.PerBaryDays <= 0 {
		return errors.Wrapf(pandoraerr.ErrPeriod, "per_bary = %g days", b.PerBaryDays)
	}
	if b.PerMoonDays <= 0 {
		return errors.Wrapf(pandoraerr.ErrPeriod, "per_moon = %g days", b.PerMoonDays)
	}
	return nil
}

// effective returns b with zero-valued sampling knobs replaced by their
// documented defaults, so callers building a literal don't have to repeat
// the defaults spec.md §3 names.
func (b Bundle) effective() Bundle {
	if b.OccultSmallThreshold == 0 {
		b.OccultSmallThreshold = DefaultOccultSmallThreshold
	}
	if b.HillSphereThreshold == 0 {
		b.HillSphereThreshold = DefaultHillSphereThreshold
	}
	if b.NumericalGrid == 0 {
		b.NumericalGrid = DefaultNumericalGrid
	}
	return b
}

// Effective returns a copy of b with zero-valued sampling knobs replaced by
// their defaults. pandora.Evaluate calls this before using the bundle.
func (b *Bundle) Effective() Bundle {
	return b.effective()
}
