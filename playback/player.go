// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/audsynth/signal"
)

// tailPad keeps the device open briefly past the buffer's end so the last
// samples are not cut off by the backend's own buffering.
const tailPad = 500 * time.Millisecond

// Player owns one audio device context at the module sample rate, mono,
// 32-bit float. Creating more than one Player per process is not supported
// by the backend.
type Player struct {
	ctx *oto.Context
}

// NewPlayer opens the default audio device and waits until it is ready.
func NewPlayer() (*Player, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   signal.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return &Player{ctx: ctx}, nil
}

// Play attenuates the buffer, plays it through the device, and blocks for
// the buffer's duration plus a short tail.
func (p *Player) Play(samples []float64, attenuation float64) error {
	player := p.ctx.NewPlayer(bytes.NewReader(encode(samples, attenuation)))
	player.Play()

	duration := time.Duration(float64(len(samples)) / signal.SampleRate * float64(time.Second))
	time.Sleep(duration + tailPad)

	if err := player.Close(); err != nil {
		return fmt.Errorf("closing device player: %w", err)
	}

	return nil
}

// encode converts samples to the little-endian float32 stream the device
// consumes, scaling each sample by attenuation.
func encode(samples []float64, attenuation float64) []byte {
	buf := make([]byte, 4*len(samples))
	for i, v := range samples {
		bits := math.Float32bits(float32(v * attenuation))
		binary.LittleEndian.PutUint32(buf[4*i:], bits)
	}

	return buf
}
