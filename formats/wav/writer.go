// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audsynth/signal"
	"github.com/ik5/audsynth/utils"
)

// WritePCM16 writes a mono 16-bit PCM WAV at the module sample rate. Each
// sample is attenuated by attenuation and scaled to the int16 range.
func WritePCM16(w io.WriteSeeker, samples []float64, attenuation float64) error {
	if len(samples) == 0 {
		return ErrEmptySignal
	}

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(utils.Float64ToInt16(v * attenuation))
	}

	return encode(w, data, 1)
}

// WriteStereoPCM16 writes a stereo 16-bit PCM WAV at the module sample
// rate. The shorter channel is zero-padded to the longer one; both channels
// are attenuated by attenuation and scaled to the int16 range.
func WriteStereoPCM16(w io.WriteSeeker, ch0, ch1 []float64, attenuation float64) error {
	if len(ch0) == 0 && len(ch1) == 0 {
		return ErrEmptySignal
	}

	equalized := signal.EqualizeLength(ch0, ch1)
	left, right := equalized[0], equalized[1]

	data := make([]int, 2*len(left))
	for i := range left {
		data[2*i] = int(utils.Float64ToInt16(left[i] * attenuation))
		data[2*i+1] = int(utils.Float64ToInt16(right[i] * attenuation))
	}

	return encode(w, data, 2)
}

func encode(w io.WriteSeeker, data []int, channels int) error {
	enc := gowav.NewEncoder(w, signal.SampleRate, 16, channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  signal.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing PCM data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV: %w", err)
	}

	return nil
}
