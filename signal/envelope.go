// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"math"

	"github.com/ik5/audsynth/utils"
)

// Envelope describes an ADSR amplitude curve: four segment durations in
// seconds, the amplitude reached at the attack peak, and the amplitude held
// through the sustain segment. An Envelope is an immutable value; changing
// it means constructing a new one.
type Envelope struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
	PeakAmp float64
	SusAmp  float64
}

// NewEnvelope validates the four segment durations and returns the envelope.
// Negative or non-finite durations fail with ErrInvalidArgument.
func NewEnvelope(attack, decay, sustain, release, peakAmp, susAmp float64) (Envelope, error) {
	for _, d := range []float64{attack, decay, sustain, release} {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return Envelope{}, fmt.Errorf("%w: segment durations must be finite numbers", ErrInvalidArgument)
		}
		if d < 0 {
			return Envelope{}, fmt.Errorf("%w: segment durations must not be negative", ErrInvalidArgument)
		}
	}

	return Envelope{
		Attack:  attack,
		Decay:   decay,
		Sustain: sustain,
		Release: release,
		PeakAmp: peakAmp,
		SusAmp:  susAmp,
	}, nil
}

// Duration returns the total envelope duration in seconds.
func (e Envelope) Duration() float64 {
	return e.Attack + e.Decay + e.Sustain + e.Release
}

// Make renders the per-sample amplitude curve. Each call computes a fresh
// buffer from the current values; nothing is cached. A zero-length segment
// contributes no samples at all.
func (e Envelope) Make() []float64 {
	attack := utils.Linspace(0, e.PeakAmp, NumSamples(e.Attack))
	decay := utils.Linspace(e.PeakAmp, e.SusAmp, NumSamples(e.Decay))
	release := utils.Linspace(e.SusAmp, 0, NumSamples(e.Release))

	sustain := make([]float64, NumSamples(e.Sustain))
	for i := range sustain {
		sustain[i] = e.SusAmp
	}

	curve := make([]float64, 0, len(attack)+len(decay)+len(sustain)+len(release))
	curve = append(curve, attack...)
	curve = append(curve, decay...)
	curve = append(curve, sustain...)
	curve = append(curve, release...)

	return curve
}
