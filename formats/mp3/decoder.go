// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// pcmReader is the slice of gomp3.Decoder this package needs, split out so
// tests can decode synthetic PCM streams.
type pcmReader interface {
	Read([]byte) (int, error)
}

// ReadSignal decodes an MP3 stream into two normalized channel buffers.
// go-mp3 outputs 16-bit little-endian stereo PCM, so the result is always a
// pair of equal-length buffers with samples in [-1, 1].
func ReadSignal(r io.Reader) ([]float64, []float64, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, nil, fmt.Errorf("opening MP3 stream: %w", err)
	}

	return decodeAll(dec)
}

func decodeAll(dec pcmReader) ([]float64, []float64, error) {
	var (
		ch0, ch1 []float64
		pending  []byte
	)

	buf := make([]byte, 8192)
	for {
		n, err := dec.Read(buf)
		pending = append(pending, buf[:n]...)

		// One stereo frame is two int16 samples, four bytes; reads are not
		// guaranteed to land on frame boundaries
		frames := len(pending) / 4
		for i := 0; i < frames; i++ {
			ch0 = append(ch0, pcm16(pending[4*i], pending[4*i+1]))
			ch1 = append(ch1, pcm16(pending[4*i+2], pending[4*i+3]))
		}
		pending = pending[:copy(pending, pending[frames*4:])]

		if err == io.EOF {
			return ch0, ch1, nil
		}

		if err != nil {
			return nil, nil, fmt.Errorf("decoding MP3 data: %w", err)
		}
	}
}

func pcm16(low, high byte) float64 {
	v := int16(uint16(low) | uint16(high)<<8)
	return float64(v) / 32768.0
}
