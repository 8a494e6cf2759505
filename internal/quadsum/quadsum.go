// Package quadsum evaluates the 1-D radial integrals occult.Quadratic
// reduces its lens-overlap flux calculation to, using fixed-order
// Gauss-Legendre quadrature.
package quadsum

import "gonum.org/v1/gonum/integrate/quad"

// Order is the node count used for every integral in this package. It is
// fixed rather than adaptive: the integrand (an intensity profile times an
// elementary two-circle overlap angle) is bounded on every interval this
// package integrates, but it has square-root behaviour at the interval
// ends (the stellar limb and the occulter's edge), so this order leaves a
// truncation error in occult.Quadratic's flux of roughly 1e-8 for
// occulters of radius ~0.1 and up to a few times 1e-7 near radius 0.5.
const Order = 64

// Integrate evaluates ∫_a^b f(r) dr with Order-point Gauss-Legendre
// quadrature. Returns 0 without evaluating f when b <= a, so callers can
// pass degenerate (empty) intervals from clipped overlap bounds directly.
func Integrate(f func(r float64) float64, a, b float64) float64 {
	if b <= a {
		return 0
	}
	return quad.Fixed(f, a, b, Order, quad.Legendre{}, 0)
}
