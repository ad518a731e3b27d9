// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"math"
)

// Rest is a silent signal of a fixed duration.
type Rest struct {
	duration float64
}

// NewRest returns a silent signal lasting duration seconds. The duration
// must be a positive finite number, otherwise construction fails with
// ErrInvalidArgument.
func NewRest(duration float64) (*Rest, error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("%w: duration must be a finite number", ErrInvalidArgument)
	}

	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be greater than 0", ErrInvalidArgument)
	}

	return &Rest{duration: duration}, nil
}

// Samples renders the silence as zero-valued samples.
func (r *Rest) Samples() []float64 {
	return make([]float64, NumSamples(r.duration))
}

// Duration returns the duration in seconds.
func (r *Rest) Duration() float64 {
	return float64(NumSamples(r.duration)) / SampleRate
}

// Silence is a convenience that renders duration seconds of silence
// directly to a buffer.
func Silence(duration float64) ([]float64, error) {
	rest, err := NewRest(duration)
	if err != nil {
		return nil, err
	}

	return rest.Samples(), nil
}
