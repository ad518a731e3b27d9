// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
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

// pcmDecoder is the slice of goaiff.Decoder this package needs, split out so
// tests can feed synthetic PCM data.
type pcmDecoder interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
	Format() *goaudio.Format
}

// ReadSignal decodes an AIFF file into normalized sample buffers. Mono
// files return one buffer and a nil second channel; stereo files return one
// buffer per channel.
func ReadSignal(r io.ReadSeeker) (Layout, []float64, []float64, error) {
	dec := goaiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return 0, nil, nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	norm, err := normalizer(int(dec.BitDepth))
	if err != nil {
		return 0, nil, nil, err
	}

	data, err := decodeAll(dec)
	if err != nil {
		return 0, nil, nil, err
	}

	return split(data, int(dec.NumChans), norm)
}

func decodeAll(dec pcmDecoder) ([]int, error) {
	var data []int

	buf := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: dec.Format(),
	}

	for {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			data = append(data, buf.Data[:n]...)
		}

		if err != nil {
			if err == io.EOF {
				return data, nil
			}

			return nil, fmt.Errorf("decoding AIFF data: %w", err)
		}

		// go-audio signals exhaustion with a zero-length read
		if n == 0 {
			return data, nil
		}
	}
}

// normalizer returns the divisor that maps raw integers of the given bit
// depth into [-1, 1].
func normalizer(bitDepth int) (float64, error) {
	switch bitDepth {
	case 8:
		return 128, nil
	case 16:
		return 32768, nil
	case 24:
		return 8388608, nil
	case 32:
		return 2147483648, nil
	default:
		return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedDepth, bitDepth)
	}
}

func split(data []int, channels int, norm float64) (Layout, []float64, []float64, error) {
	switch channels {
	case 1:
		ch0 := make([]float64, len(data))
		for i, v := range data {
			ch0[i] = float64(v) / norm
		}

		return Mono, ch0, nil, nil

	case 2:
		frames := len(data) / 2
		ch0 := make([]float64, frames)
		ch1 := make([]float64, frames)

		for i := 0; i < frames; i++ {
			ch0[i] = float64(data[2*i]) / norm
			ch1[i] = float64(data[2*i+1]) / norm
		}

		return Stereo, ch0, ch1, nil

	default:
		return 0, nil, nil, ErrUnsupportedLayout
	}
}
