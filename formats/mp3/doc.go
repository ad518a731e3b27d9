// SPDX-License-Identifier: EPL-2.0

// Package mp3 imports MP3 audio into normalized sample buffers.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams.
// go-mp3 always produces 16-bit stereo PCM, so ReadSignal returns two
// channel buffers:
//
//	ch0, ch1, err := mp3.ReadSignal(file)
package mp3
