// SPDX-License-Identifier: EPL-2.0

// Package wav exports synthesized sample buffers as 16-bit PCM WAV files
// and imports WAV files back into sample buffers.
//
// It uses the github.com/go-audio libraries for the container handling.
//
// Export writes mono or stereo at the module's fixed 44100 Hz sample rate:
//
//	f, _ := os.Create("note.wav")
//	defer f.Close()
//	wav.WritePCM16(f, samples, 0.3)
//
// Import reports the channel layout along with one buffer per channel:
//
//	layout, ch0, ch1, err := wav.ReadSignal(f)
//	if layout == wav.Stereo {
//		// ch0 and ch1 hold the two channels
//	}
package wav
