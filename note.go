// SPDX-License-Identifier: EPL-2.0

package audsynth

import (
	"fmt"

	"github.com/ik5/audsynth/frequency"
	"github.com/ik5/audsynth/signal"
)

// Waveform selects the shape RenderNote synthesizes.
type Waveform string

const (
	WaveSine       Waveform = "sine"
	WaveSawtooth   Waveform = "sawtooth"
	WaveSquare     Waveform = "square"
	WaveTriangular Waveform = "triangular"
)

// RenderNote is a high-level convenience that parses a pitch name,
// synthesizes it with the given envelope and waveform, and returns the
// rendered sample buffer.
//
// nHarmonics controls the spectral richness of the additive waveforms and
// is ignored for WaveSine.
//
// Example:
//
//	env, _ := signal.NewEnvelope(0.05, 0.05, 0.4, 0.2, 1.0, 0.6)
//	samples, err := audsynth.RenderNote("c#3", env, audsynth.WaveSquare, 15)
func RenderNote(pitch string, env signal.Envelope, wave Waveform, nHarmonics int) ([]float64, error) {
	freq, err := frequency.Parse(pitch)
	if err != nil {
		return nil, err
	}

	producer, err := newProducer(freq, env, wave, nHarmonics)
	if err != nil {
		return nil, err
	}

	return producer.Samples(), nil
}

// RenderChord renders each pitch with the same envelope and waveform and
// mixes them into one peak-normalized buffer.
func RenderChord(pitches []string, env signal.Envelope, wave Waveform, nHarmonics int) ([]float64, error) {
	if len(pitches) == 0 {
		return nil, fmt.Errorf("%w: at least one pitch required", signal.ErrInvalidArgument)
	}

	notes := make([][]float64, len(pitches))
	for i, pitch := range pitches {
		note, err := RenderNote(pitch, env, wave, nHarmonics)
		if err != nil {
			return nil, err
		}

		notes[i] = note
	}

	return signal.Mix(notes...), nil
}

func newProducer(freq frequency.Frequency, env signal.Envelope, wave Waveform, nHarmonics int) (signal.Signal, error) {
	switch wave {
	case WaveSine:
		return signal.NewSine(freq, env, 0)
	case WaveSawtooth:
		return signal.NewSawtooth(freq, env, nHarmonics)
	case WaveSquare:
		return signal.NewSquare(freq, env, nHarmonics)
	case WaveTriangular:
		return signal.NewTriangular(freq, env, nHarmonics)
	default:
		return nil, fmt.Errorf("%w: unknown waveform %q", signal.ErrInvalidArgument, wave)
	}
}
