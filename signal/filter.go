// SPDX-License-Identifier: EPL-2.0

package signal

// FilterKind selects the pass-band shape of a filter design.
type FilterKind string

const (
	LowPassFilter  FilterKind = "lowpass"
	HighPassFilter FilterKind = "highpass"
	BandPassFilter FilterKind = "bandpass"
	BandStopFilter FilterKind = "bandstop"
)

// Designer computes a stable filter for a roll-off order and one or two
// cutoffs expressed as fractions of the Nyquist frequency. The coefficient
// mathematics lives entirely behind this interface; the package never
// computes coefficients itself.
type Designer interface {
	Design(order int, cutoffs []float64, kind FilterKind) (Filter, error)
}

// Filter applies zero-phase filtering to a buffer, returning a buffer of
// the same length.
type Filter interface {
	Apply(samples []float64) ([]float64, error)
}

// Butterworth filters one sample buffer through a caller-supplied Designer.
// Its job is the hertz to Nyquist-fraction conversion and dispatch by filter
// kind; the design and the filtering itself are the collaborator's.
type Butterworth struct {
	samples  []float64
	designer Designer
}

// NewButterworth copies samples into a filter facade backed by designer.
func NewButterworth(samples []float64, designer Designer) *Butterworth {
	buf := make([]float64, len(samples))
	copy(buf, samples)

	return &Butterworth{samples: buf, designer: designer}
}

// Samples returns the held buffer.
func (b *Butterworth) Samples() []float64 {
	return b.samples
}

// Duration returns the held buffer's duration in seconds.
func (b *Butterworth) Duration() float64 {
	return float64(len(b.samples)) / SampleRate
}

// LowPass attenuates content above cutoffHz with an order-pole roll-off.
func (b *Butterworth) LowPass(cutoffHz float64, order int) error {
	return b.filter([]float64{cutoffHz}, order, LowPassFilter)
}

// HighPass attenuates content below cutoffHz with an order-pole roll-off.
func (b *Butterworth) HighPass(cutoffHz float64, order int) error {
	return b.filter([]float64{cutoffHz}, order, HighPassFilter)
}

// BandPass keeps content between lowCutHz and highCutHz.
func (b *Butterworth) BandPass(lowCutHz, highCutHz float64, order int) error {
	return b.filter([]float64{lowCutHz, highCutHz}, order, BandPassFilter)
}

// BandStop rejects content between lowCutHz and highCutHz.
func (b *Butterworth) BandStop(lowCutHz, highCutHz float64, order int) error {
	return b.filter([]float64{lowCutHz, highCutHz}, order, BandStopFilter)
}

func (b *Butterworth) filter(cutoffsHz []float64, order int, kind FilterKind) error {
	// Cutoffs are handed to the designer as fractions of the Nyquist
	// frequency: 2 * hz / SampleRate.
	normalized := make([]float64, len(cutoffsHz))
	for i, hz := range cutoffsHz {
		normalized[i] = 2 * hz / SampleRate
	}

	filter, err := b.designer.Design(order, normalized, kind)
	if err != nil {
		return err
	}

	filtered, err := filter.Apply(b.samples)
	if err != nil {
		return err
	}

	b.samples = filtered

	return nil
}
