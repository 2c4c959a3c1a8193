// Package ewma provides the exponentially weighted moving average used to
// smooth measured server response times. The registry and the metadata store
// both update response times through this package so the smoothing constant
// can never drift between the two write paths.
package ewma

// Alpha is the smoothing factor applied to new measurements.
const Alpha = 0.3

// Update folds a new measurement into the previous average.
// When prev is zero (no prior measurement) the new sample is taken as-is,
// so the average seeds from the first observation instead of decaying up
// from zero.
func Update(prev, sample float64) float64 {
	if prev == 0 {
		return sample
	}
	return Alpha*sample + (1-Alpha)*prev
}
