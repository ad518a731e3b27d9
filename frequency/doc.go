// SPDX-License-Identifier: EPL-2.0

// Package frequency models musical pitch as a frequency in hertz.
//
// A Frequency is constructed either from a raw hertz value or by parsing a
// pitch name such as "A4" or "Bb2":
//
//	a4, err := frequency.Parse("a4")
//	if err != nil {
//		// malformed pitch name
//	}
//	fifth := a4.Transpose(7, 1, 12) // up a perfect fifth
//
// Frequencies support equal-division-of-the-octave transposition and
// harmonic spectrum computation, which the signal package uses to build
// additive waveforms:
//
//	harmonics := a4.Spectrum(4, 1) // 440, 880, 1320, 1760
package frequency
