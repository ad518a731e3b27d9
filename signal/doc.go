// SPDX-License-Identifier: EPL-2.0

// Package signal synthesizes and shapes digital audio as in-memory sample
// buffers at a fixed 44100 Hz sample rate.
//
// Every producer satisfies the Signal interface: it renders a 1D buffer of
// float64 samples and reports its duration. Producers are freely mixable,
// so a Track can concatenate a Sine with a Sawtooth, mix in Noise, and loop
// the result.
//
// # Quick Start
//
//	env, _ := signal.NewEnvelope(0.05, 0.05, 0.5, 0.2, 1.0, 0.6)
//	a4 := frequency.New(440)
//
//	sine, _ := signal.NewSine(a4, env, 0)
//	saw, _ := signal.NewSawtooth(a4, env, 20)
//
//	track := signal.NewTrack(sine.Samples())
//	track.Append(saw.Samples())
//	track.Delay(0.25, 0.4, 3)
//
// # Building Blocks
//
// Rest, Noise and Sine are the elementary producers. Sawtooth, Square and
// Triangular sum weighted, phase-shifted sine harmonics over one shared
// envelope. Modulator applies AM and FM of one buffer by another, and
// Butterworth filters a buffer through a caller-supplied coefficient
// designer.
//
// All validation happens eagerly at construction: no partial signal is ever
// produced from invalid input, and failures are sentinel errors checked with
// errors.Is.
package signal
