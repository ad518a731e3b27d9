// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audsynth/internal/sigtest"
)

func TestNewEnvelope_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		a, d, s, r float64
	}{
		{"negative attack", -0.1, 0, 0, 0},
		{"negative decay", 0, -0.1, 0, 0},
		{"negative sustain", 0, 0, -0.1, 0},
		{"negative release", 0, 0, 0, -0.1},
		{"nan duration", math.NaN(), 0, 0, 0},
		{"inf duration", 0, math.Inf(1), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewEnvelope(tt.a, tt.d, tt.s, tt.r, 1, 0.5)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewEnvelope() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestEnvelope_Duration(t *testing.T) {
	t.Parallel()

	env, err := NewEnvelope(0.1, 0.1, 0.2, 0.1, 1.0, 0.5)
	if err != nil {
		t.Fatalf("NewEnvelope() failed: %v", err)
	}

	if !sigtest.AlmostEqual(env.Duration(), 0.5) {
		t.Errorf("Duration() = %v, want 0.5", env.Duration())
	}
}

func TestEnvelope_MakeLengthAndShape(t *testing.T) {
	t.Parallel()

	env, err := NewEnvelope(0.1, 0.1, 0.2, 0.1, 1.0, 0.5)
	if err != nil {
		t.Fatalf("NewEnvelope() failed: %v", err)
	}

	curve := env.Make()

	attack := int(0.1 * SampleRate)
	decay := int(0.1 * SampleRate)
	sustain := int(0.2 * SampleRate)
	release := int(0.1 * SampleRate)

	if want := attack + decay + sustain + release; len(curve) != want {
		t.Fatalf("Make() length = %d, want %d", len(curve), want)
	}

	if curve[0] != 0 {
		t.Errorf("first sample = %v, want 0", curve[0])
	}

	if got := curve[attack-1]; !sigtest.AlmostEqual(got, 1.0) {
		t.Errorf("end of attack = %v, want 1.0", got)
	}

	if got := curve[attack+decay-1]; !sigtest.AlmostEqual(got, 0.5) {
		t.Errorf("end of decay = %v, want 0.5", got)
	}

	// Every sustain sample holds the sustain amplitude
	for i := attack + decay; i < attack+decay+sustain; i++ {
		if curve[i] != 0.5 {
			t.Fatalf("sustain sample %d = %v, want 0.5", i, curve[i])
		}
	}

	if got := curve[len(curve)-1]; !sigtest.AlmostEqual(got, 0) {
		t.Errorf("last sample = %v, want 0", got)
	}
}

func TestEnvelope_ZeroSegments(t *testing.T) {
	t.Parallel()

	env, err := NewEnvelope(0, 0.1, 0, 0.1, 1.0, 0.5)
	if err != nil {
		t.Fatalf("NewEnvelope() failed: %v", err)
	}

	curve := env.Make()

	// Zero-length segments contribute zero samples, not a zero-valued sample
	if want := int(0.1*SampleRate) * 2; len(curve) != want {
		t.Errorf("Make() length = %d, want %d", len(curve), want)
	}

	// With no attack the curve starts at the decay's peak
	if curve[0] != 1.0 {
		t.Errorf("first sample = %v, want 1.0", curve[0])
	}
}

func TestEnvelope_MakeIsFreshEachCall(t *testing.T) {
	t.Parallel()

	env, err := NewEnvelope(0.01, 0.01, 0.01, 0.01, 1.0, 0.5)
	if err != nil {
		t.Fatalf("NewEnvelope() failed: %v", err)
	}

	first := env.Make()
	first[0] = 42

	second := env.Make()
	if second[0] == 42 {
		t.Error("Make() returned a shared buffer across calls")
	}
}

func BenchmarkEnvelope_Make(b *testing.B) {
	env, err := NewEnvelope(0.1, 0.1, 0.2, 0.1, 1.0, 0.5)
	if err != nil {
		b.Fatalf("NewEnvelope() failed: %v", err)
	}

	b.ReportAllocs()

	for b.Loop() {
		env.Make()
	}
}
