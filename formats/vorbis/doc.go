// SPDX-License-Identifier: EPL-2.0

// Package vorbis imports Ogg Vorbis audio into normalized sample buffers.
//
// This package uses github.com/jfreymuth/oggvorbis for decoding. Samples
// arrive already normalized to [-1, 1]:
//
//	layout, ch0, ch1, err := vorbis.ReadSignal(file)
package vorbis
