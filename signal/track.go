// SPDX-License-Identifier: EPL-2.0

package signal

// Track owns one sample buffer and edits it in the time domain:
// concatenation, mixing, looping, delay, silence stripping, trimming and
// splitting. Every editing operation replaces the held buffer wholesale;
// buffers are never shared between two Tracks.
type Track struct {
	samples []float64
}

// NewTrack copies samples into a new Track.
func NewTrack(samples []float64) *Track {
	buf := make([]float64, len(samples))
	copy(buf, samples)

	return &Track{samples: buf}
}

// NewTrackPair concatenates two buffers into a new Track.
func NewTrackPair(a, b []float64) *Track {
	buf := make([]float64, 0, len(a)+len(b))
	buf = append(buf, a...)
	buf = append(buf, b...)

	return &Track{samples: buf}
}

// Samples returns the held buffer.
func (t *Track) Samples() []float64 {
	return t.samples
}

// Duration returns the held buffer's duration in seconds.
func (t *Track) Duration() float64 {
	return float64(len(t.samples)) / SampleRate
}

// Append concatenates samples onto the end of the track.
func (t *Track) Append(samples []float64) {
	buf := make([]float64, 0, len(t.samples)+len(samples))
	buf = append(buf, t.samples...)
	buf = append(buf, samples...)

	t.samples = buf
}

// MixWith replaces the held buffer with the normalized mix of itself and
// the given buffers.
func (t *Track) MixWith(others ...[]float64) {
	buffers := make([][]float64, 0, len(others)+1)
	buffers = append(buffers, t.samples)
	buffers = append(buffers, others...)

	t.samples = Mix(buffers...)
}

// Loop tiles the held buffer n times. n of 0 or less empties the track.
func (t *Track) Loop(n int) {
	if n < 0 {
		n = 0
	}

	buf := make([]float64, 0, len(t.samples)*n)
	for i := 0; i < n; i++ {
		buf = append(buf, t.samples...)
	}

	t.samples = buf
}

// Delay mixes echoes delayed copies into the track. Echo i starts
// delayTime*i seconds after the previous copy and is built from that
// previous copy attenuated once by (1 - ampReduction); each copy is mixed
// into the track in turn, so the accumulation is iterative rather than a
// geometric decay computed per echo count.
func (t *Track) Delay(delayTime, ampReduction float64, echoes int) error {
	var delayed []float64

	for i := 0; i < echoes; i++ {
		if i == 0 {
			delayed = t.samples
			continue
		}

		lead, err := Silence(delayTime * float64(i))
		if err != nil {
			return err
		}

		attenuated := make([]float64, len(delayed))
		for j, v := range delayed {
			attenuated[j] = v * (1 - ampReduction)
		}

		delayed = NewTrackPair(lead, attenuated).samples
		t.MixWith(delayed)
	}

	return nil
}

// StripSilence removes leading and trailing samples whose value is exactly
// zero.
func (t *Track) StripSilence() {
	start := 0
	for start < len(t.samples) && t.samples[start] == 0 {
		start++
	}

	end := len(t.samples)
	for end > start && t.samples[end-1] == 0 {
		end--
	}

	buf := make([]float64, end-start)
	copy(buf, t.samples[start:end])

	t.samples = buf
}

// ModulateFrequency replaces the held buffer with its frequency-modulated
// form.
func (t *Track) ModulateFrequency(modulator []float64) {
	t.samples = FrequencyModulated(t.samples, modulator)
}

// ModulateAmplitude replaces the held buffer with its amplitude-modulated
// form.
func (t *Track) ModulateAmplitude(modulator []float64, sensitivity float64) {
	t.samples = AmplitudeModulated(t.samples, modulator, sensitivity)
}

// Trim deletes the samples before trimToS seconds and from trimFromS
// seconds onward, both measured on the buffer as it is when Trim is called.
// A trimToS of 0 keeps the head; a trimFromS of 0 or less means the current
// duration, keeping the tail.
func (t *Track) Trim(trimToS, trimFromS float64) {
	duration := t.Duration()
	if trimFromS <= 0 {
		trimFromS = duration
	}

	start := 0
	if trimToS > 0 {
		start = NumSamples(trimToS)
	}

	end := len(t.samples)
	if trimFromS < duration {
		end = NumSamples(trimFromS)
	}

	start = clampIndex(start, len(t.samples))
	end = clampIndex(end, len(t.samples))
	if end < start {
		end = start
	}

	buf := make([]float64, end-start)
	copy(buf, t.samples[start:end])

	t.samples = buf
}

// Split cuts the buffer at the given time offsets into len(pointsS)+1
// contiguous parts, in order, covering the whole buffer. The offsets are
// expected in ascending order.
func (t *Track) Split(pointsS ...float64) [][]float64 {
	parts := make([][]float64, 0, len(pointsS)+1)

	start := 0
	for _, point := range pointsS {
		end := clampIndex(NumSamples(point), len(t.samples))
		if end < start {
			end = start
		}

		part := make([]float64, end-start)
		copy(part, t.samples[start:end])
		parts = append(parts, part)

		start = end
	}

	last := make([]float64, len(t.samples)-start)
	copy(last, t.samples[start:])
	parts = append(parts, last)

	return parts
}

// Add returns a new Track holding this track's buffer followed by the other
// signal's, leaving both operands untouched.
func (t *Track) Add(other Signal) *Track {
	return NewTrackPair(t.samples, other.Samples())
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}

	return i
}
