// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"math"

	"github.com/ik5/audsynth/frequency"
)

// Sine is a sine wave at a fixed frequency, shaped by an ADSR envelope, with
// an optional phase offset in degrees.
type Sine struct {
	freq     frequency.Frequency
	env      Envelope
	phaseDeg float64
}

// NewSine returns a sine wave producer. The phase offset is given in degrees
// and must lie in [0, 359], otherwise construction fails with
// ErrInvalidArgument.
func NewSine(freq frequency.Frequency, env Envelope, phaseDeg float64) (*Sine, error) {
	if phaseDeg < 0 || phaseDeg > 359 {
		return nil, fmt.Errorf("%w: phase offset between 0 and 359 permitted", ErrInvalidArgument)
	}

	return &Sine{freq: freq, env: env, phaseDeg: phaseDeg}, nil
}

// Frequency returns the sine's frequency.
func (s *Sine) Frequency() frequency.Frequency {
	return s.freq
}

// Samples renders sample i as sin(phase + 2π·i·hz/SampleRate) scaled by the
// envelope curve, for every sample the envelope covers.
func (s *Sine) Samples() []float64 {
	curve := s.env.Make()
	phase := s.phaseDeg / 360 * 2 * math.Pi
	step := 2 * math.Pi * s.freq.Hertz() / SampleRate

	out := make([]float64, len(curve))
	for i := range out {
		out[i] = math.Sin(phase+step*float64(i)) * curve[i]
	}

	return out
}

// Duration returns the envelope duration rendered to samples, in seconds.
func (s *Sine) Duration() float64 {
	return float64(len(s.env.Make())) / SampleRate
}
