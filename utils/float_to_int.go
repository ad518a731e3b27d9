// SPDX-License-Identifier: EPL-2.0

package utils

// Float64ToInt16 converts a normalized sample to 16-bit PCM.
func Float64ToInt16(x float64) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}
