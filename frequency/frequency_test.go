// SPDX-License-Identifier: EPL-2.0

package frequency

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestParse_CaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, letter := range []string{"c", "d", "e", "f", "g", "a", "b"} {
		for octave := '0'; octave <= '9'; octave++ {
			lower := letter + string(octave)
			upper := string(letter[0]-32) + string(octave)

			lo, err := Parse(lower)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", lower, err)
			}

			up, err := Parse(upper)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", upper, err)
			}

			if lo != up {
				t.Errorf("Parse(%q) = %v, Parse(%q) = %v, want equal", lower, lo, upper, up)
			}
		}
	}
}

func TestParse_ZerothOctave(t *testing.T) {
	t.Parallel()

	for letter, want := range pitchClasses {
		got, err := Parse(string(letter) + "0")
		if err != nil {
			t.Fatalf("Parse(%q0) failed: %v", letter, err)
		}

		if !almostEqual(got.Hertz(), want.Hertz()) {
			t.Errorf("Parse(%c0) = %v, want %v", letter, got, want)
		}
	}
}

func TestParse_AOctaves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pitch string
		want  float64
	}{
		{"a0", 27.5},
		{"a1", 55},
		{"a2", 110},
		{"a3", 220},
		{"a4", 440},
	}

	for _, tt := range tests {
		t.Run(tt.pitch, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.pitch)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.pitch, err)
			}

			if !almostEqual(got.Hertz(), tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.pitch, got, tt.want)
			}
		})
	}
}

func TestParse_Accidentals(t *testing.T) {
	t.Parallel()

	a4, err := Parse("a4")
	if err != nil {
		t.Fatalf("Parse(a4) failed: %v", err)
	}

	sharp, err := Parse("a#4")
	if err != nil {
		t.Fatalf("Parse(a#4) failed: %v", err)
	}

	flat, err := Parse("ab4")
	if err != nil {
		t.Fatalf("Parse(ab4) failed: %v", err)
	}

	// Up and down one semitone, with the 2-decimal-place ratio rounding
	if want := a4 * 1.06; !almostEqual(sharp.Hertz(), want.Hertz()) {
		t.Errorf("Parse(a#4) = %v, want %v", sharp, want)
	}

	if want := a4 * 0.94; !almostEqual(flat.Hertz(), want.Hertz()) {
		t.Errorf("Parse(ab4) = %v, want %v", flat, want)
	}

	if sharp <= a4 {
		t.Errorf("sharp %v is not above natural %v", sharp, a4)
	}

	if flat >= a4 {
		t.Errorf("flat %v is not below natural %v", flat, a4)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pitch string
	}{
		{"unknown letter", "H0"},
		{"too short", "A"},
		{"too long", "A##0"},
		{"bad octave", "A0x"},
		{"bad accidental", "Ax0"},
		{"empty", ""},
		{"octave only", "#0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.pitch)
			if !errors.Is(err, ErrInvalidPitch) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidPitch", tt.pitch, err)
			}
		})
	}
}

func TestTranspose_Octave(t *testing.T) {
	t.Parallel()

	got := New(27.5).Transpose(4, 12, 12)
	if !almostEqual(got.Hertz(), 440) {
		t.Errorf("Transpose(4, 12, 12) = %v, want 440", got)
	}
}

func TestTranspose_SemitoneRounding(t *testing.T) {
	t.Parallel()

	// The semitone ratio 2^(1/12) = 1.0594... is rounded to 1.06 before
	// multiplying.
	got := New(100).Transpose(1, 1, 12)
	if !almostEqual(got.Hertz(), 106) {
		t.Errorf("Transpose(1, 1, 12) = %v, want 106", got)
	}

	down := New(100).Transpose(-1, 1, 12)
	if !almostEqual(down.Hertz(), 94) {
		t.Errorf("Transpose(-1, 1, 12) = %v, want 94", down)
	}
}

func TestTranspose_QuarterTone(t *testing.T) {
	t.Parallel()

	// 24-EDO: a quarter tone is 2^(1/24) = 1.0293..., rounded to 1.03.
	got := New(200).Transpose(1, 1, 24)
	if !almostEqual(got.Hertz(), 206) {
		t.Errorf("Transpose(1, 1, 24) = %v, want 206", got)
	}
}

func TestSpectrum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		freq       Frequency
		n          int
		multiplier float64
		want       []Frequency
	}{
		{"integer multiples", 440, 4, 1, []Frequency{440, 880, 1320, 1760}},
		{"odd multiples", 100, 4, 2, []Frequency{100, 300, 500, 700}},
		{"single harmonic", 440, 1, 1, []Frequency{440}},
		{"empty", 440, 0, 1, []Frequency{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.freq.Spectrum(tt.n, tt.multiplier)
			if len(got) != len(tt.want) {
				t.Fatalf("Spectrum() returned %d harmonics, want %d", len(got), len(tt.want))
			}

			for i := range got {
				if !almostEqual(got[i].Hertz(), tt.want[i].Hertz()) {
					t.Errorf("Spectrum()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNthHarmonic(t *testing.T) {
	t.Parallel()

	f := New(440)

	got := f.NthHarmonic(4, 1)
	if want := f.Spectrum(4, 1)[3]; !almostEqual(got.Hertz(), want.Hertz()) {
		t.Errorf("NthHarmonic(4, 1) = %v, want %v", got, want)
	}

	got = f.NthHarmonic(3, 2)
	if !almostEqual(got.Hertz(), 2200) {
		t.Errorf("NthHarmonic(3, 2) = %v, want 2200", got)
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := New(300)
	b := New(100)

	if got := a.Add(b); got != 400 {
		t.Errorf("Add() = %v, want 400", got)
	}

	if got := a.Sub(b); got != 200 {
		t.Errorf("Sub() = %v, want 200", got)
	}

	if got := a.Mul(New(2)); got != 600 {
		t.Errorf("Mul() = %v, want 600", got)
	}

	if got := a.Div(New(2)); got != 150 {
		t.Errorf("Div() = %v, want 150", got)
	}

	// Operands are values; the originals are untouched
	if a != 300 || b != 100 {
		t.Errorf("operands mutated: a = %v, b = %v", a, b)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if got := New(440).String(); got != "440" {
		t.Errorf("String() = %q, want %q", got, "440")
	}

	if got := New(27.5).String(); got != "27.5" {
		t.Errorf("String() = %q, want %q", got, "27.5")
	}
}
