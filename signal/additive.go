// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"math"

	"github.com/ik5/audsynth/frequency"
)

// The classic waveform shapes are built additively: each is a Mix of sine
// harmonics that share one envelope, with per-harmonic weights and phase
// shifts selecting the shape.

// Sawtooth sums all integer multiples of the fundamental, harmonic i
// weighted by 1/(i+1).
type Sawtooth struct {
	freq       frequency.Frequency
	env        Envelope
	nHarmonics int
}

// Square sums the odd multiples of the fundamental, harmonic i weighted by
// 1/(2i+1).
type Square struct {
	freq       frequency.Frequency
	env        Envelope
	nHarmonics int
}

// Triangular sums the odd multiples of the fundamental, each weighted by
// the inverse square of its mode number, with every other harmonic flipped
// in polarity by a 180 degree phase shift.
type Triangular struct {
	freq       frequency.Frequency
	env        Envelope
	nHarmonics int
}

// NewSawtooth returns a sawtooth producer over nHarmonics harmonics.
func NewSawtooth(freq frequency.Frequency, env Envelope, nHarmonics int) (*Sawtooth, error) {
	if err := validateHarmonics(nHarmonics); err != nil {
		return nil, err
	}

	return &Sawtooth{freq: freq, env: env, nHarmonics: nHarmonics}, nil
}

// NewSquare returns a square-wave producer over nHarmonics harmonics.
func NewSquare(freq frequency.Frequency, env Envelope, nHarmonics int) (*Square, error) {
	if err := validateHarmonics(nHarmonics); err != nil {
		return nil, err
	}

	return &Square{freq: freq, env: env, nHarmonics: nHarmonics}, nil
}

// NewTriangular returns a triangle-wave producer over nHarmonics harmonics.
func NewTriangular(freq frequency.Frequency, env Envelope, nHarmonics int) (*Triangular, error) {
	if err := validateHarmonics(nHarmonics); err != nil {
		return nil, err
	}

	return &Triangular{freq: freq, env: env, nHarmonics: nHarmonics}, nil
}

func validateHarmonics(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: at least 1 harmonic required", ErrInvalidArgument)
	}

	return nil
}

// Samples renders the sawtooth as a normalized mix of its harmonics.
func (s *Sawtooth) Samples() []float64 {
	harmonics := s.freq.Spectrum(s.nHarmonics, 1)

	parts := make([][]float64, len(harmonics))
	for i, harmonic := range harmonics {
		parts[i] = scale(harmonicWave(harmonic, s.env, 0, i), 1/float64(i+1))
	}

	return Mix(parts...)
}

// Duration returns the envelope duration rendered to samples, in seconds.
func (s *Sawtooth) Duration() float64 {
	return float64(len(s.env.Make())) / SampleRate
}

// Samples renders the square wave as a normalized mix of its harmonics.
func (s *Square) Samples() []float64 {
	harmonics := s.freq.Spectrum(s.nHarmonics, 2)

	parts := make([][]float64, len(harmonics))
	for i, harmonic := range harmonics {
		parts[i] = scale(harmonicWave(harmonic, s.env, 0, i), 1/float64(2*i+1))
	}

	return Mix(parts...)
}

// Duration returns the envelope duration rendered to samples, in seconds.
func (s *Square) Duration() float64 {
	return float64(len(s.env.Make())) / SampleRate
}

// Samples renders the triangle wave as a normalized mix of its harmonics.
func (t *Triangular) Samples() []float64 {
	harmonics := t.freq.Spectrum(t.nHarmonics, 2)

	parts := make([][]float64, len(harmonics))
	for i, harmonic := range harmonics {
		// The mode number is the harmonic's frequency relative to the
		// fundamental.
		mode := harmonic.Hertz() / t.freq.Hertz()
		parts[i] = scale(harmonicWave(harmonic, t.env, 180, i), 1/(mode*mode))
	}

	return Mix(parts...)
}

// Duration returns the envelope duration rendered to samples, in seconds.
func (t *Triangular) Duration() float64 {
	return float64(len(t.env.Make())) / SampleRate
}

// harmonicWave renders one sine harmonic with a per-harmonic phase shift of
// phaseShiftDeg * nth, folded into [0, 360).
func harmonicWave(freq frequency.Frequency, env Envelope, phaseShiftDeg float64, nth int) []float64 {
	phase := phaseShiftDeg * float64(nth)
	phase -= 360 * math.Floor(phase/360)

	sine, err := NewSine(freq, env, phase)
	if err != nil {
		// Unreachable for the shifts used here: folding a multiple of 180
		// lands on 0 or 180, both valid phases.
		panic(err)
	}

	return sine.Samples()
}

func scale(buf []float64, factor float64) []float64 {
	for i := range buf {
		buf[i] *= factor
	}

	return buf
}
