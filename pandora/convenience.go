package pandora

import (
	"github.com/jpdeleon/pandora-go/params"
	"github.com/jpdeleon/pandora-go/search"
)

// Model is a thin, stateful convenience wrapper around a params.Bundle for
// callers who want method-call ergonomics instead of threading the bundle
// through every function call.
type Model struct {
	Params *params.Bundle
}

// NewModel returns a Model over p.
func NewModel(p *params.Bundle) *Model {
	return &Model{Params: p}
}

// LightCurve evaluates the model's flux over time.
func (m *Model) LightCurve(time []float64) ([]float64, error) {
	return Evaluate(m.Params, time)
}

// Coordinates returns the planet and moon sky positions over time.
func (m *Model) Coordinates(time []float64) (xp, yp, xm, ym []float64) {
	xp, yp, xm, ym, _ = Coordinates(m.Params, time)
	return xp, yp, xm, ym
}

// Unphysical reports whether the model's moon orbit exceeds the planet's
// Hill sphere by more than its configured threshold, or is smaller than
// the planet's and moon's combined radii.
func (m *Model) Unphysical() bool {
	return Unphysical(m.Params)
}

// FindMidTransit refines the time of minimum flux (deepest occultation)
// within [startDays, endDays], searching on a coarse grid of stepDays and
// converging via golden-section search on the flux minimum. It is a
// convenience for callers who only have an approximate ephemeris and want
// the exact mid-transit time pandora's own model predicts.
func (m *Model) FindMidTransit(startDays, endDays, stepDays float64) (float64, error) {
	// A single-sample, unsupersampled bundle: FindMidTransit only needs the
	// relative depth of the dip, not the caller's integration-time model.
	unsampled := *m.Params
	unsampled.SupersamplingFactor = 1

	fluxAt := func(t float64) float64 {
		flux, err := Evaluate(&unsampled, []float64{t})
		if err != nil || len(flux) == 0 {
			return 1
		}
		return flux[0]
	}

	minima, err := search.FindMinima(startDays, endDays, stepDays, fluxAt, 0)
	if err != nil {
		return 0, err
	}
	if len(minima) == 0 {
		return 0, search.ErrInvalidRange
	}

	best := minima[0]
	for _, cand := range minima[1:] {
		if cand.Value < best.Value {
			best = cand
		}
	}
	return best.T, nil
}
