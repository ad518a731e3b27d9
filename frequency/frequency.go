// SPDX-License-Identifier: EPL-2.0

package frequency

import (
	"fmt"
	"math"
	"strconv"
)

// Frequency is a pitch expressed in hertz. It is an immutable value: every
// operation returns a new Frequency and native comparison operators order
// frequencies by their hertz value.
type Frequency float64

// pitchClasses maps the white notes to their 0th-octave frequencies.
var pitchClasses = map[byte]Frequency{
	'c': 16.55, 'd': 18.34, 'e': 20.6, 'f': 21.83,
	'g': 24.5, 'a': 27.5, 'b': 30.87,
}

// New returns the Frequency for a raw hertz value.
func New(hertz float64) Frequency {
	return Frequency(hertz)
}

// Parse converts a pitch name to a Frequency. A pitch name is a note letter
// A-G (either case), an optional accidental '#' or 'b', and a single-digit
// octave, e.g. "A4", "c#2", "Bb0". A malformed name fails with
// ErrInvalidPitch and no value.
func Parse(pitch string) (Frequency, error) {
	if len(pitch) < 2 || len(pitch) > 3 {
		return 0, fmt.Errorf("%w: length of 2 or 3 is permitted", ErrInvalidPitch)
	}

	letter := lowerByte(pitch[0])

	base, ok := pitchClasses[letter]
	if !ok {
		return 0, fmt.Errorf("%w: letters A - G are permitted", ErrInvalidPitch)
	}

	if len(pitch) == 3 && pitch[1] != '#' && pitch[1] != 'b' {
		return 0, fmt.Errorf("%w: accidentals # and b are permitted", ErrInvalidPitch)
	}

	octave, err := strconv.Atoi(pitch[len(pitch)-1:])
	if err != nil {
		return 0, fmt.Errorf("%w: octave value 0 - 9 permitted", ErrInvalidPitch)
	}

	// Raise the 0th-octave base by the requested number of octaves
	freq := base.Transpose(octave, 12, 12)

	// An accidental moves the pitch a semitone either way
	switch pitch[1] {
	case '#':
		freq = freq.Transpose(1, 1, 12)
	case 'b':
		freq = freq.Transpose(-1, 1, 12)
	}

	return freq, nil
}

// Hertz returns the frequency value in hertz.
func (f Frequency) Hertz() float64 {
	return float64(f)
}

// String prints the raw hertz value.
func (f Frequency) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Transpose moves the frequency by nIntervals * intervalClass steps of an
// octave divided into octaveDiv equal parts. The default musical semitone is
// intervalClass 1 with octaveDiv 12.
//
// The ratio is rounded to 2 decimal places before multiplying. The rounding
// is part of the numeric contract: "a4" must come out as exactly 440 from
// the 27.5 base, and transposed pitches must line up with tables produced by
// earlier versions of this library.
func (f Frequency) Transpose(nIntervals, intervalClass, octaveDiv int) Frequency {
	steps := float64(nIntervals * intervalClass)
	ratio := math.Pow(math.Pow(2, 1/float64(octaveDiv)), steps)

	return f * Frequency(math.Round(ratio*100)/100)
}

// Add returns the sum of two frequencies.
func (f Frequency) Add(other Frequency) Frequency {
	return f + other
}

// Sub returns the difference of two frequencies.
func (f Frequency) Sub(other Frequency) Frequency {
	return f - other
}

// Mul scales the frequency by the hertz value of other.
func (f Frequency) Mul(other Frequency) Frequency {
	return f * other
}

// Div divides the frequency by the hertz value of other.
func (f Frequency) Div(other Frequency) Frequency {
	return f / other
}

// Spectrum returns the first nHarmonics values of the arithmetic harmonic
// series starting at f with step f*multiplier. A multiplier of 1 yields all
// integer multiples of the fundamental, 2 yields the odd multiples only.
func (f Frequency) Spectrum(nHarmonics int, multiplier float64) []Frequency {
	step := f * Frequency(multiplier)

	harmonics := make([]Frequency, 0, nHarmonics)
	for i := 0; i < nHarmonics; i++ {
		harmonics = append(harmonics, f+step*Frequency(i))
	}

	return harmonics
}

// NthHarmonic returns the last element of Spectrum(nth, multiplier).
func (f Frequency) NthHarmonic(nth int, multiplier float64) Frequency {
	return f + f*Frequency(multiplier)*Frequency(nth-1)
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
