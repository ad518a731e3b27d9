// SPDX-License-Identifier: EPL-2.0

// Package playback plays sample buffers through the default audio device.
//
// It uses github.com/ebitengine/oto/v3 for the device backend. Play blocks
// for roughly the buffer's duration:
//
//	player, err := playback.NewPlayer()
//	if err != nil {
//		// no audio device available
//	}
//	player.Play(samples, 0.3)
package playback
