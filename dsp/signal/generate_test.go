package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-freq/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestSineErrors(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(440, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := g.Sine(0, 1, 16); err == nil {
		t.Fatal("expected error for zero frequency")
	}
}

func TestHarmonicsSkipsAboveNyquist(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	withAlias, err := g.Harmonics(300, []float64{1, 1}, 32)
	if err != nil {
		t.Fatalf("Harmonics() error = %v", err)
	}
	fundamental, err := g.Sine(300, 1, 32)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	for i := range fundamental {
		if withAlias[i] != fundamental[i] {
			t.Fatalf("sample %d: partial at 600 Hz should be skipped", i)
		}
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))
	if g1.Seed() != 42 {
		t.Fatalf("Seed() = %d, want 42", g1.Seed())
	}

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		if math.Abs(float64(n1[i])) > 1 {
			t.Fatalf("noise[%d] = %v out of range", i, n1[i])
		}
	}
	if _, err := g1.WhiteNoise(-1, 4); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestMixAndNormalize(t *testing.T) {
	dst := []float32{1, -2, 0.5}
	if err := Mix(dst, []float32{1, 0, 0.5}); err != nil {
		t.Fatalf("Mix() error = %v", err)
	}
	if err := Normalize(dst, 1); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	want := []float32{1, -1, 0.5}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 1e-7 {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	if err := Mix(dst, []float32{1}); !errors.Is(err, errLengthMismatch) {
		t.Fatalf("Mix() err = %v, want length mismatch", err)
	}
	if err := Normalize(dst, -1); err == nil {
		t.Fatal("expected error for negative peak")
	}
}

func TestSamples(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8000))
	if got := g.Samples(0.5); got != 4000 {
		t.Fatalf("Samples(0.5) = %d, want 4000", got)
	}
	if got := g.Samples(-1); got != 0 {
		t.Fatalf("Samples(-1) = %d, want 0", got)
	}
}
