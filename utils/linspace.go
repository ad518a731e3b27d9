// SPDX-License-Identifier: EPL-2.0

package utils

// Linspace returns n values spaced evenly from start to stop, both endpoints
// included. n == 1 yields just the start value; n <= 0 yields an empty slice.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}

	// Land exactly on stop regardless of accumulated rounding
	out[n-1] = stop

	return out
}
