package params

// Builder constructs a Bundle with chained setters. It exists for test and
// call-site ergonomics — Bundle itself is a plain struct and can always be
// built with a literal instead.
type Builder struct {
	b Bundle
}

// NewBuilder returns a Builder seeded with the documented sampling defaults.
func NewBuilder() *Builder {
	return &Builder{b: Bundle{
		SupersamplingFactor:  1,
		OccultSmallThreshold: DefaultOccultSmallThreshold,
		HillSphereThreshold:  DefaultHillSphereThreshold,
		NumericalGrid:        DefaultNumericalGrid,
	}}
}

// WithStar sets the stellar limb-darkening coefficients and radius (km).
// Stellar mass is derived from the barycenter orbit rather than supplied
// here; see pandora.Unphysical.
func (bd *Builder) WithStar(u1, u2, rStarKm float64) *Builder {
	bd.b.U1, bd.b.U2, bd.b.RStarKm = u1, u2, rStarKm
	return bd
}

// WithBarycenterOrbit sets the planet-barycenter orbital elements.
func (bd *Builder) WithBarycenterOrbit(perDays, aBary, rPlanet, bBary, wDeg, ecc, t0Days, t0OffsetDays, massKg float64) *Builder {
	bd.b.PerBaryDays = perDays
	bd.b.ABary = aBary
	bd.b.RPlanet = rPlanet
	bd.b.BBary = bBary
	bd.b.WBaryDeg = wDeg
	bd.b.EccBary = ecc
	bd.b.T0BaryDays = t0Days
	bd.b.T0BaryOffsetDays = t0OffsetDays
	bd.b.MPlanetKg = massKg
	return bd
}

// WithMoon sets the moon's orbital elements and radius.
func (bd *Builder) WithMoon(rMoon, perDays, tau, omegaDeg, iDeg, ecc, wDeg, massRatio float64) *Builder {
	bd.b.RMoon = rMoon
	bd.b.PerMoonDays = perDays
	bd.b.TauMoon = tau
	bd.b.OmegaMoonDeg = omegaDeg
	bd.b.IMoonDeg = iDeg
	bd.b.EccMoon = ecc
	bd.b.WMoonDeg = wDeg
	bd.b.MassRatio = massRatio
	return bd
}

// WithSampling sets the epoch spacing and supersampling factor.
func (bd *Builder) WithSampling(epochDistanceDays float64, supersamplingFactor int) *Builder {
	bd.b.EpochDistanceDays = epochDistanceDays
	bd.b.SupersamplingFactor = supersamplingFactor
	return bd
}

// WithThresholds overrides the small-body, Hill-sphere, and eclipse-grid
// defaults. Pass zero for any argument to keep the current value.
func (bd *Builder) WithThresholds(occultSmall, hillSphere float64, numericalGrid int) *Builder {
	if occultSmall != 0 {
		bd.b.OccultSmallThreshold = occultSmall
	}
	if hillSphere != 0 {
		bd.b.HillSphereThreshold = hillSphere
	}
	if numericalGrid != 0 {
		bd.b.NumericalGrid = numericalGrid
	}
	return bd
}

// Build validates and returns the assembled Bundle.
func (bd *Builder) Build() (*Bundle, error) {
	b := bd.b
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}
