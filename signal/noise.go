// SPDX-License-Identifier: EPL-2.0

package signal

import "math/rand"

// Noise is white noise shaped by an ADSR envelope.
type Noise struct {
	env Envelope
	rng *rand.Rand
}

// NewNoise returns envelope-shaped uniform noise. The randomness comes from
// the process-wide source and is not reproducible; tests that need exact
// values should use NewNoiseWithRand.
func NewNoise(env Envelope) *Noise {
	return &Noise{env: env}
}

// NewNoiseWithRand is NewNoise with an injected random source.
func NewNoiseWithRand(env Envelope, rng *rand.Rand) *Noise {
	return &Noise{env: env, rng: rng}
}

// Samples renders uniform-random values in [-1, 1], multiplied sample-wise
// by the envelope curve. Every call draws fresh random values.
func (n *Noise) Samples() []float64 {
	curve := n.env.Make()

	out := make([]float64, len(curve))
	for i := range out {
		out[i] = n.random()*2 - 1
		out[i] *= curve[i]
	}

	return out
}

// Duration returns the envelope duration rendered to samples, in seconds.
func (n *Noise) Duration() float64 {
	return float64(len(n.env.Make())) / SampleRate
}

func (n *Noise) random() float64 {
	if n.rng != nil {
		return n.rng.Float64()
	}

	return rand.Float64()
}
