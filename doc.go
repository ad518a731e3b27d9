// SPDX-License-Identifier: EPL-2.0

// Package audsynth synthesizes digital audio from musical building blocks.
//
// The library renders finite in-memory sample buffers at a fixed 44100 Hz
// sample rate: pitches become frequencies, ADSR envelopes shape amplitude,
// and classic waveforms are built additively from sine harmonics.
//
// # Quick Start
//
// The simplest way to make sound is RenderNote:
//
//	env, _ := signal.NewEnvelope(0.05, 0.05, 0.4, 0.2, 1.0, 0.6)
//	samples, _ := audsynth.RenderNote("a4", env, audsynth.WaveSawtooth, 20)
//
//	f, _ := os.Create("a4.wav")
//	wav.WritePCM16(f, samples, 0.3)
//	f.Close()
//
// # Building Blocks
//
// For full control, use the subpackages directly:
//
//   - frequency converts pitch names to hertz, transposes by musical
//     intervals, and computes harmonic spectra.
//   - signal holds the synthesis core: envelopes, basic producers (Rest,
//     Noise, Sine), additive waveforms (Sawtooth, Square, Triangular),
//     AM/FM modulation, the Track container for time-domain editing, and a
//     Butterworth filter facade.
//   - formats/wav exports and imports 16-bit PCM WAV; formats/mp3,
//     formats/vorbis and formats/aiff import their respective containers.
//   - playback plays buffers through the default audio device.
//
// # Combining Signals
//
// Everything that produces samples satisfies signal.Signal, so producers
// compose freely:
//
//	track := signal.NewTrack(samples)
//	track.Append(moreSamples)
//	track.Delay(0.25, 0.4, 3)
//	track.StripSilence()
//
// See the subpackages for detailed documentation.
package audsynth
