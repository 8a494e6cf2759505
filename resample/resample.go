// Package resample block-averages a finely sampled signal down to its
// returned cadence, the last step in modeling finite integration time:
// the caller's time grid is supersampled by some factor before the flux
// model runs, and Average collapses each block of samples back down to
// one value per exposure.
package resample

import (
	"github.com/pkg/errors"

	"github.com/jpdeleon/pandora-go/pandoraerr"
)

// Average partitions f into len(f)/factor contiguous blocks of length
// factor and returns the mean of each block. len(f) must be evenly
// divisible by factor; otherwise Average returns pandoraerr.ErrGridDivisor.
func Average(f []float64, factor int) ([]float64, error) {
	if factor < 1 {
		return nil, errors.Wrapf(pandoraerr.ErrGridDivisor, "factor = %d", factor)
	}
	if len(f)%factor != 0 {
		return nil, errors.Wrapf(pandoraerr.ErrGridDivisor, "%d samples not divisible by factor %d", len(f), factor)
	}
	if factor == 1 {
		out := make([]float64, len(f))
		copy(out, f)
		return out, nil
	}

	n := len(f) / factor
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < factor; j++ {
			sum += f[i*factor+j]
		}
		out[i] = sum / float64(factor)
	}
	return out, nil
}
