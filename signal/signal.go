// SPDX-License-Identifier: EPL-2.0

package signal

import "math"

// SampleRate is the process-wide sample rate in samples per second. Every
// duration to sample-count conversion in this module goes through it.
const SampleRate = 44100

// Signal is a finite audio signal. Samples renders the signal as a buffer of
// real-valued samples; Duration reports len(samples) / SampleRate in
// seconds.
type Signal interface {
	Samples() []float64
	Duration() float64
}

// NumSamples converts a duration in seconds to a sample count, truncating
// toward zero.
func NumSamples(duration float64) int {
	return int(duration * SampleRate)
}

// EqualizeLength pads each buffer with trailing zeros up to the length of
// the longest one. The returned buffers are fresh copies; the inputs are
// never aliased or modified.
func EqualizeLength(buffers ...[]float64) [][]float64 {
	longest := 0
	for _, buf := range buffers {
		if len(buf) > longest {
			longest = len(buf)
		}
	}

	out := make([][]float64, len(buffers))
	for i, buf := range buffers {
		padded := make([]float64, longest)
		copy(padded, buf)
		out[i] = padded
	}

	return out
}

// Mix combines buffers into one signal: the buffers are zero-padded to the
// longest, summed sample-wise, and the sum is peak-normalized by its own
// maximum absolute sample. A sum with no non-zero sample is returned as-is,
// since normalizing by a zero peak is undefined.
func Mix(buffers ...[]float64) []float64 {
	if len(buffers) == 0 {
		return []float64{}
	}

	equalized := EqualizeLength(buffers...)

	sum := equalized[0]
	for _, buf := range equalized[1:] {
		for i, v := range buf {
			sum[i] += v
		}
	}

	peak := 0.0
	for _, v := range sum {
		if abs := math.Abs(v); abs > peak {
			peak = abs
		}
	}

	if peak == 0 {
		return sum
	}

	for i := range sum {
		sum[i] /= peak
	}

	return sum
}
