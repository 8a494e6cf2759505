// Package occult computes the fraction of a quadratically limb-darkened
// star's flux that a circular occulter blocks, given the occulter's
// radius (in stellar radii) and its sky-projected separation from the
// star's center.
//
// Quadratic is exact (to quadrature precision) for any occulter radius.
// Small is a cheaper local-intensity approximation valid only for
// occulters much smaller than the star; pandora selects between the two
// per params.Bundle.OccultSmallThreshold.
package occult

import (
	"math"

	"github.com/jpdeleon/pandora-go/geometry"
	"github.com/jpdeleon/pandora-go/internal/quadsum"
)

// Omega is the quadratic limb-darkening disc-integrated normalization
// constant: the star's total flux, with intensity profile I(μ) and μ=1
// at disc center, equals π·Omega(u1,u2).
func Omega(u1, u2 float64) float64 {
	return 1 - u1/3 - u2/6
}

func intensity(mu, u1, u2 float64) float64 {
	return 1 - u1*(1-mu) - u2*(1-mu)*(1-mu)
}

// Quadratic returns the relative flux (1 = unocculted) of a star with
// quadratic limb-darkening coefficients u1, u2, occulted by a disc of
// radius k (stellar radii) whose center is separated by z (stellar radii)
// from the star's center.
//
// The occultation integral is reduced to one dimension by radius: at
// stellar-disc radius r, the occulter's shadow subtends the elementary
// two-circle intersection angle, and the blocked flux is that angle times
// the local limb-darkened intensity, integrated over r. This reduction is
// exact; the integral itself is evaluated by internal/quadsum's fixed
// Gauss-Legendre quadrature rather than in closed form, so there is no
// branch table and no special handling needed at the case boundaries
// z = |1-k|, 1-k, k-1, 1+k — the integrand and its bounds vary
// continuously across all of them. When 0 < z < k the shadow angle has a
// kink at r = k-z (full circle inside, partial arc outside), so the
// integral is split there to keep the quadrature accurate.
func Quadratic(k, z, u1, u2 float64) float64 {
	if k <= 0 {
		return 1
	}
	z = math.Abs(z)

	rLow := math.Max(0, z-k)
	rHigh := math.Min(1, z+k)
	if rHigh <= rLow {
		return 1
	}

	omega := Omega(u1, u2)
	integrand := func(r float64) float64 {
		if r <= 0 {
			return 0
		}
		mu := math.Sqrt(math.Max(0, 1-r*r))
		i := intensity(mu, u1, u2)

		var width float64
		if z == 0 {
			if r <= k {
				width = 2 * math.Pi
			}
		} else {
			cosPhi := (r*r + z*z - k*k) / (2 * r * z)
			if cosPhi < -1 {
				cosPhi = -1
			} else if cosPhi > 1 {
				cosPhi = 1
			}
			width = 2 * math.Acos(cosPhi)
		}
		return i * width * r
	}
	var blocked float64
	if kink := k - z; z > 0 && kink > rLow && kink < rHigh {
		blocked = quadsum.Integrate(integrand, rLow, kink) + quadsum.Integrate(integrand, kink, rHigh)
	} else {
		blocked = quadsum.Integrate(integrand, rLow, rHigh)
	}

	f := 1 - blocked/(math.Pi*omega)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Small approximates Quadratic for occulters much smaller than the star
// (k well below params.DefaultOccultSmallThreshold): it treats the
// star's limb-darkened intensity as constant across the occulter's tiny
// disc, evaluated at the occulter center's radius z using the linear
// combination u1+2u2, and scales the exact geometric overlap area by it.
// This is the approximation Mandel & Agol's appendix gives for the
// small-planet limit; it is far cheaper than Quadratic (no quadrature)
// and accurate to O(k) in the neglected intensity gradient across the
// disc.
func Small(k, z, u1, u2 float64) float64 {
	if k <= 0 {
		return 1
	}
	z = math.Abs(z)
	area := geometry.OverlapArea(z, 1, k)
	if area == 0 {
		return 1
	}

	u := u1 + 2*u2
	omegaLinear := 1 - u/3

	var mu float64
	if z < 1 {
		mu = math.Sqrt(1 - z*z)
	}
	i := 1 - u*(1-mu)

	f := 1 - (area/math.Pi)*i/omegaLinear
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
