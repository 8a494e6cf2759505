package eclipse

import (
	"math"
	"testing"
)

func TestMutual_NoOverlap(t *testing.T) {
	// Planet and moon discs far apart on the sky: nothing to correct.
	c := Mutual(0, 0, 0.1, 1.0, 1.0, 0.03, 0.3, 0.2, 25)
	if c != 0 {
		t.Errorf("disjoint discs: correction = %g, want 0", c)
	}
}

func TestMutual_MoonFullyBehindPlanet(t *testing.T) {
	// Moon disc entirely inside the planet disc, both centered at the
	// same point near the stellar limb: the full moon disc is double
	// counted, so the correction should be close to occult's own
	// moon-only blocked fraction there.
	const rp, rm = 0.1, 0.02
	x, y := 0.5, 0.0
	correction := Mutual(x, y, rp, x, y, rm, 0.3, 0.2, 40)
	if correction <= 0 {
		t.Errorf("moon fully eclipsed by planet: correction = %g, want > 0", correction)
	}
	if correction > math.Pi*rm*rm {
		t.Errorf("correction %g exceeds the moon disc's own area fraction bound %g", correction, math.Pi*rm*rm)
	}
}

func TestMutual_ZeroOutsideStellarDisc(t *testing.T) {
	// Both discs overlap each other but sit entirely beyond the star's
	// limb: none of the sampled lens falls on the star, so there is
	// nothing to double count.
	c := Mutual(2.0, 0, 0.1, 2.02, 0, 0.1, 0.3, 0.2, 25)
	if c != 0 {
		t.Errorf("overlap beyond stellar limb: correction = %g, want 0", c)
	}
}

func TestMutual_GrowsWithOverlapArea(t *testing.T) {
	const rp, rm = 0.08, 0.08
	close := Mutual(0.3, 0, rp, 0.32, 0, rm, 0.3, 0.2, 40)
	far := Mutual(0.3, 0, rp, 0.45, 0, rm, 0.3, 0.2, 40)
	if close <= far {
		t.Errorf("tighter overlap should correct more: close=%g far=%g", close, far)
	}
}

func TestMutual_SymmetricInPlanetMoonOrder(t *testing.T) {
	const rp, rm = 0.09, 0.03
	a := Mutual(0.2, 0.1, rp, 0.22, 0.12, rm, 0.3, 0.2, 30)
	b := Mutual(0.22, 0.12, rm, 0.2, 0.1, rp, 0.3, 0.2, 30)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("correction should not depend on argument order: %g vs %g", a, b)
	}
}
