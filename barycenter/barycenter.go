// Package barycenter computes the planet barycenter's x position on the
// stellar sky (in stellar radii) across one or more nominal transit epochs.
package barycenter

import "math"

// Track returns x_bary for each sample in time (days), given the planet's
// barycentric orbital elements. x_bary is 0 at mid-transit and ±1 where the
// barycenter center would cross the stellar limb on an equatorial chord.
//
// epochDistanceDays is the assumed (possibly approximate) spacing between
// nominal transits; perBaryDays is the true orbital period. Their
// difference accumulates across epochs via the drift term below, so a
// caller whose epochDistanceDays only approximates perBaryDays still gets
// each epoch's transit centered correctly.
func Track(time []float64, perBaryDays, aBary, t0BaryDays, t0BaryOffsetDays, epochDistanceDays, eccBary, wBaryDeg float64) []float64 {
	wBaryRad := wBaryDeg * math.Pi / 180.0

	// Transit half-duration at b=0, corrected for eccentricity.
	halfDur := perBaryDays / (2 * math.Pi) * math.Asin(1/aBary)
	eccCorrection := (1 + eccBary*math.Cos(wBaryRad)) / math.Sqrt(1-eccBary*eccBary)
	halfDur /= eccCorrection

	xBary := make([]float64, len(time))
	for k, t := range time {
		epoch := math.Round((t - t0BaryDays) / epochDistanceDays)
		epochCenter := t0BaryDays + epoch*epochDistanceDays
		drift := epoch * (perBaryDays - epochDistanceDays)
		dt := t - epochCenter - t0BaryOffsetDays - drift
		xBary[k] = dt / halfDur
	}
	return xBary
}
