// SPDX-License-Identifier: EPL-2.0

package signal_test

import (
	"fmt"

	"github.com/ik5/audsynth/frequency"
	"github.com/ik5/audsynth/signal"
)

// Example_renderNote renders one enveloped sine note and inspects it.
func Example_renderNote() {
	env, err := signal.NewEnvelope(0.1, 0.1, 0.2, 0.1, 1.0, 0.5)
	if err != nil {
		fmt.Printf("envelope error: %v\n", err)
		return
	}

	sine, err := signal.NewSine(frequency.New(440), env, 0)
	if err != nil {
		fmt.Printf("sine error: %v\n", err)
		return
	}

	fmt.Printf("%d samples, %.1f seconds\n", len(sine.Samples()), sine.Duration())
	// Output: 22050 samples, 0.5 seconds
}

// ExampleTrack_Split cuts a buffer at time offsets and puts it back together.
func ExampleTrack_Split() {
	rest, err := signal.NewRest(3.0)
	if err != nil {
		fmt.Printf("rest error: %v\n", err)
		return
	}

	track := signal.NewTrack(rest.Samples())
	parts := track.Split(1.0, 2.0)

	fmt.Printf("%d parts of %d, %d, %d samples\n",
		len(parts), len(parts[0]), len(parts[1]), len(parts[2]))
	// Output: 3 parts of 44100, 44100, 44100 samples
}

// ExampleMix combines two buffers of different lengths into one
// peak-normalized signal.
func ExampleMix() {
	a := []float64{0.25, 0.25, 0.25, 0.25}
	b := []float64{0.25, 0.25}

	mixed := signal.Mix(a, b)
	fmt.Println(mixed)
	// Output: [1 1 0.5 0.5]
}
