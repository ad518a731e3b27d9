// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// Layout reports how many channels an imported stream carries.
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

// ReadSignal decodes an Ogg Vorbis stream into normalized sample buffers.
// Mono streams return one buffer and a nil second channel; stereo streams
// return one buffer per channel.
func ReadSignal(r io.Reader) (Layout, []float64, []float64, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("decoding Vorbis stream: %w", err)
	}

	return split(data, format.Channels)
}

func split(data []float32, channels int) (Layout, []float64, []float64, error) {
	switch channels {
	case 1:
		ch0 := make([]float64, len(data))
		for i, v := range data {
			ch0[i] = float64(v)
		}

		return Mono, ch0, nil, nil

	case 2:
		frames := len(data) / 2
		ch0 := make([]float64, frames)
		ch1 := make([]float64, frames)

		for i := 0; i < frames; i++ {
			ch0[i] = float64(data[2*i])
			ch1[i] = float64(data[2*i+1])
		}

		return Stereo, ch0, ch1, nil

	default:
		return 0, nil, nil, ErrUnsupportedLayout
	}
}
