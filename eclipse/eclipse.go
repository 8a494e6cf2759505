// Package eclipse corrects for mutual eclipses between a planet and its
// moon: the region where the two occulting discs overlap on the sky is
// flux the planet and moon both would otherwise be credited with
// blocking, even though the star only loses it once.
//
// The correction is sampled on a regular grid rather than derived in
// closed form, since the overlap lens sits at an arbitrary offset from
// the star's center and carries the star's own limb darkening — unlike
// occult's single-occulter integrals, there is no natural radial
// symmetry to reduce it to one dimension.
package eclipse

import (
	"math"

	"github.com/jpdeleon/pandora-go/geometry"
	"github.com/jpdeleon/pandora-go/occult"
)

// Mutual returns the flux fraction (relative to the star's total flux)
// that both occult.Quadratic(planet) and occult.Quadratic(moon) counted
// as blocked, given the planet and moon sky positions and radii (all in
// stellar radii, star centered at the origin) and the star's limb
// darkening coefficients. Callers add this back once to flux_total.
//
// grid is the side length of the square sampling lattice laid over the
// tighter of the two discs' bounding boxes; params.DefaultNumericalGrid
// is a reasonable default. The lattice origin, step, and per-cell
// inclusion test are fixed functions of (xp, yp, rp, xm, ym, rm, grid),
// so repeated calls with the same inputs sample identical points.
func Mutual(xp, yp, rp, xm, ym, rm, u1, u2 float64, grid int) float64 {
	if !geometry.CircleOverlap(geometry.Separation(xp, yp, xm, ym), rp, rm) {
		return 0
	}
	if grid < 1 {
		grid = 1
	}

	xmin, xmax, ymin, ymax := geometry.TighterBox(xp, yp, rp, xm, ym, rm)
	stepX := (xmax - xmin) / float64(grid)
	stepY := (ymax - ymin) / float64(grid)
	cellArea := stepX * stepY

	omega := occult.Omega(u1, u2)

	var sum float64
	for i := 0; i < grid; i++ {
		x := xmin + (float64(i)+0.5)*stepX
		for j := 0; j < grid; j++ {
			y := ymin + (float64(j)+0.5)*stepY

			r2 := x*x + y*y
			if r2 >= 1 {
				continue
			}
			if !geometry.InsideDisc(x, y, xp, yp, rp) || !geometry.InsideDisc(x, y, xm, ym, rm) {
				continue
			}

			mu := math.Sqrt(1 - r2)
			sum += (1 - u1*(1-mu) - u2*(1-mu)*(1-mu)) / omega * cellArea
		}
	}

	return sum / math.Pi
}
