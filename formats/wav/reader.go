// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
)

// Layout reports how many channels an imported file carries.
type Layout int

const (
	Mono Layout = iota + 1
	Stereo
)

func (l Layout) String() string {
	switch l {
	case Mono:
		return "MONO"
	case Stereo:
		return "STEREO"
	default:
		return "UNKNOWN"
	}
}

// importDivisor normalizes raw integer samples on import. The value is a
// compatibility constant: buffers written by earlier exports must read back
// at the same scale they always have.
const importDivisor = 10000

// ReadSignal decodes a WAV file into normalized sample buffers. Mono files
// return one buffer and a nil second channel; stereo files return one buffer
// per channel.
func ReadSignal(r io.ReadSeeker) (Layout, []float64, []float64, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return 0, nil, nil, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return 0, nil, nil, fmt.Errorf("reading PCM data: %w", err)
	}

	channels := buf.Format.NumChannels
	switch channels {
	case 1:
		samples := make([]float64, len(buf.Data))
		for i, v := range buf.Data {
			samples[i] = float64(v) / importDivisor
		}

		return Mono, samples, nil, nil

	case 2:
		frames := len(buf.Data) / 2
		ch0 := make([]float64, frames)
		ch1 := make([]float64, frames)

		for i := 0; i < frames; i++ {
			ch0[i] = float64(buf.Data[2*i]) / importDivisor
			ch1[i] = float64(buf.Data[2*i+1]) / importDivisor
		}

		return Stereo, ch0, ch1, nil

	default:
		return 0, nil, nil, ErrUnsupportedLayout
	}
}
