// SPDX-License-Identifier: EPL-2.0

package signal

import "math"

// Modulator holds one carrier buffer and modulates it in place with another
// signal. The package-level AmplitudeModulated and FrequencyModulated
// functions are the non-mutating forms.
type Modulator struct {
	samples []float64
}

// NewModulator copies the carrier into a new Modulator.
func NewModulator(carrier []float64) *Modulator {
	samples := make([]float64, len(carrier))
	copy(samples, carrier)

	return &Modulator{samples: samples}
}

// Samples returns the held buffer.
func (m *Modulator) Samples() []float64 {
	return m.samples
}

// Duration returns the held buffer's duration in seconds.
func (m *Modulator) Duration() float64 {
	return float64(len(m.samples)) / SampleRate
}

// ModulateAmplitude scales each carrier sample by 1 + sensitivity *
// modulator sample. The two buffers are zero-padded to equal length first,
// so a short modulator leaves the carrier's tail untouched only in the sense
// that the padding contributes a factor of exactly 1.
func (m *Modulator) ModulateAmplitude(modulator []float64, sensitivity float64) {
	equalized := EqualizeLength(m.samples, modulator)
	carrier, mod := equalized[0], equalized[1]

	for i := range carrier {
		carrier[i] *= 1 + sensitivity*mod[i]
	}

	m.samples = carrier
}

// ModulateFrequency multiplies each carrier sample by cos(carrier +
// modulator) after zero-padding both buffers to equal length. The formula is
// a deliberate compatibility contract, kept as-is rather than replaced with
// phase re-synthesis.
func (m *Modulator) ModulateFrequency(modulator []float64) {
	equalized := EqualizeLength(m.samples, modulator)
	carrier, mod := equalized[0], equalized[1]

	for i := range carrier {
		carrier[i] *= math.Cos(carrier[i] + mod[i])
	}

	m.samples = carrier
}

// AmplitudeModulated returns a fresh amplitude-modulated buffer without
// touching either input.
func AmplitudeModulated(carrier, modulator []float64, sensitivity float64) []float64 {
	m := NewModulator(carrier)
	m.ModulateAmplitude(modulator, sensitivity)

	return m.samples
}

// FrequencyModulated returns a fresh frequency-modulated buffer without
// touching either input.
func FrequencyModulated(carrier, modulator []float64) []float64 {
	m := NewModulator(carrier)
	m.ModulateFrequency(modulator)

	return m.samples
}
