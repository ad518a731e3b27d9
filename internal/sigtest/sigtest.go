// SPDX-License-Identifier: EPL-2.0

// Package sigtest provides deterministic signal inputs and tolerance
// comparators for tests.
package sigtest

import (
	"math"
	"math/rand"
)

// DefaultTolerance is the absolute tolerance used by AlmostEqual.
const DefaultTolerance = 1e-9

// Rand returns a seeded random source for reproducible noise.
func Rand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// AlmostEqual reports whether a and b differ by no more than
// DefaultTolerance.
func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) <= DefaultTolerance
}

// BuffersAlmostEqual reports whether two buffers have the same length and
// every pair of samples within tol of each other.
func BuffersAlmostEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}

	return true
}

// Sine generates a plain sine wave for use as a reference or modulator.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Constant generates a constant-valued buffer.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// Ramp generates a buffer counting up from 0 in unit steps, handy for
// checking index arithmetic after trims and splits.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

// MaxAbs returns the largest absolute sample in the buffer.
func MaxAbs(buf []float64) float64 {
	peak := 0.0
	for _, v := range buf {
		if abs := math.Abs(v); abs > peak {
			peak = abs
		}
	}

	return peak
}
