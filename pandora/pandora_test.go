package pandora

import (
	"context"
	"testing"

	"github.com/jpdeleon/pandora-go/params"
)

func baseBundle(t *testing.T) *params.Bundle {
	t.Helper()
	b, err := params.NewBuilder().
		WithStar(0.3, 0.2, 695700).
		WithBarycenterOrbit(365.25, 215.0, 0.01, 0, 0, 0, 100.0, 0, 1.9e27).
		WithMoon(0.003, 10, 0, 0, 90, 0, 0, 0.02).
		WithSampling(365.25, 1).
		Build()
	if err != nil {
		t.Fatalf("building base bundle: %v", err)
	}
	return b
}

func TestEvaluate_FluxBoundedNearOne(t *testing.T) {
	b := baseBundle(t)
	time := []float64{99.0, 99.5, 100.0, 100.5, 101.0}
	flux, err := Evaluate(b, time)
	if err != nil {
		t.Fatal(err)
	}
	for i, f := range flux {
		if f > 1.0001 || f < 0.9 {
			t.Errorf("sample %d: flux = %g, outside plausible [0.9, 1.0001] window", i, f)
		}
	}
}

func TestEvaluate_DipsAtMidTransit(t *testing.T) {
	b := baseBundle(t)
	time := []float64{95.0, 100.0}
	flux, err := Evaluate(b, time)
	if err != nil {
		t.Fatal(err)
	}
	if flux[1] >= flux[0] {
		t.Errorf("flux at mid-transit (%g) should be below out-of-transit flux (%g)", flux[1], flux[0])
	}
}

func TestEvaluate_InvalidBundleRejected(t *testing.T) {
	b := baseBundle(t)
	b.SupersamplingFactor = 0
	if _, err := Evaluate(b, []float64{100.0}); err == nil {
		t.Error("expected an error for SupersamplingFactor=0")
	}
}

func TestUnphysical_CloseInMoonIsFine(t *testing.T) {
	b := baseBundle(t)
	if Unphysical(b) {
		t.Error("a tightly bound moon should not be flagged unphysical")
	}
}

func TestUnphysical_WideMoonIsFlagged(t *testing.T) {
	b := baseBundle(t)
	b.PerMoonDays = 5000 // pushes a_moon far beyond any reasonable Hill sphere
	if !Unphysical(b) {
		t.Error("a moon orbiting far wider than the Hill sphere should be flagged unphysical")
	}
}

func TestBatch_MatchesSequentialEvaluate(t *testing.T) {
	b1 := baseBundle(t)
	b2 := baseBundle(t)
	b2.RMoon = 0.01

	time := []float64{99.5, 100.0, 100.5}
	results := Batch(context.Background(), []*params.Bundle{b1, b2}, time)

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("bundle %d: unexpected error %v", r.Index, r.Err)
		}
		want, err := Evaluate([]*params.Bundle{b1, b2}[r.Index], time)
		if err != nil {
			t.Fatal(err)
		}
		for k := range want {
			if r.Flux[k] != want[k] {
				t.Errorf("bundle %d sample %d: batch=%g sequential=%g", r.Index, k, r.Flux[k], want[k])
			}
		}
	}
}

func TestBatch_StopsOnCancelledContext(t *testing.T) {
	b := baseBundle(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Batch(ctx, []*params.Bundle{b, b, b}, []float64{100.0})
	for i, r := range results {
		if r.Err == nil {
			t.Errorf("result %d: expected cancellation error, got nil", i)
		}
	}
}

func TestModel_CoordinatesAndLightCurveAgree(t *testing.T) {
	b := baseBundle(t)
	m := NewModel(b)
	time := []float64{99.5, 100.0, 100.5}

	lc, err := m.LightCurve(time)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := Evaluate(b, time)
	if err != nil {
		t.Fatal(err)
	}
	for i := range lc {
		if lc[i] != direct[i] {
			t.Errorf("sample %d: Model.LightCurve=%g Evaluate=%g", i, lc[i], direct[i])
		}
	}

	xp, yp, xm, ym := m.Coordinates(time)
	if len(xp) != len(time) || len(yp) != len(time) || len(xm) != len(time) || len(ym) != len(time) {
		t.Error("Coordinates returned mismatched lengths")
	}
}
