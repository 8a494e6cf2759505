// Package timegrid builds the supersampled observation-time array a
// pandora model evaluation runs on: one linspace block per requested
// transit epoch, concatenated in time order.
package timegrid

import "github.com/jpdeleon/pandora-go/params"

// Epoch describes one requested window of observation: duration days
// centered on center (days), sampled at n points.
type Epoch struct {
	Center   float64
	Duration float64
	N        int
}

// Build returns a linspace over [center-duration/2, center+duration/2]
// with n samples, supersampled by factor p.SupersamplingFactor so the
// flux model can later be block-averaged back down with resample.Average.
//
// A single Epoch covers the common case of one observing window; callers
// modeling several widely separated transits build their own []Epoch and
// call BuildEpochs instead.
func Build(p *params.Bundle, center, duration float64, n int) []float64 {
	return BuildEpochs(p, []Epoch{{Center: center, Duration: duration, N: n}})
}

// BuildEpochs concatenates one supersampled linspace block per epoch, in
// the order given.
func BuildEpochs(p *params.Bundle, epochs []Epoch) []float64 {
	eff := p.Effective()
	factor := eff.SupersamplingFactor
	if factor < 1 {
		factor = 1
	}

	var total int
	for _, e := range epochs {
		total += e.N * factor
	}
	grid := make([]float64, 0, total)

	for _, e := range epochs {
		n := e.N * factor
		if n <= 0 {
			continue
		}
		start := e.Center - e.Duration/2
		if n == 1 {
			grid = append(grid, e.Center)
			continue
		}
		step := e.Duration / float64(n-1)
		for i := 0; i < n; i++ {
			grid = append(grid, start+float64(i)*step)
		}
	}
	return grid
}
