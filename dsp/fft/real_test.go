package fft

import (
	"errors"
	"math"
	"math/cmplx"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-freq/internal/testutil"
	dspfft "github.com/mjibson/go-dsp/fft"
)

func TestRealMatchesComplex(t *testing.T) {
	for bits := 2; bits <= 12; bits++ {
		n := 1 << bits
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			x := testutil.DeterministicNoise(int64(bits), 1, n)

			fullRe := make([]float32, n)
			fullIm := make([]float32, n)
			if err := Complex(n, false, x, nil, fullRe, fullIm); err != nil {
				t.Fatalf("Complex: %v", err)
			}

			half := n / 2
			re := make([]float32, half)
			im := make([]float32, half)
			if err := Real(n, x, re, im); err != nil {
				t.Fatalf("Real: %v", err)
			}

			const tol = 1e-3
			if math.Abs(float64(re[0]-fullRe[0])) > tol {
				t.Fatalf("DC = %v, want %v", re[0], fullRe[0])
			}
			if math.Abs(float64(im[0]-fullRe[half])) > tol {
				t.Fatalf("packed Nyquist = %v, want %v", im[0], fullRe[half])
			}
			for k := 1; k < half; k++ {
				if math.Abs(float64(re[k]-fullRe[k])) > tol || math.Abs(float64(im[k]-fullIm[k])) > tol {
					t.Fatalf("bin %d = (%v, %v), want (%v, %v)", k, re[k], im[k], fullRe[k], fullIm[k])
				}
			}
		})
	}
}

func TestRealMagnitudesMatchGoDSP(t *testing.T) {
	const n = 1024
	x := testutil.DeterministicNoise(11, 1, n)
	ref := dspfft.FFTReal(testutil.ToFloat64(x))

	re := make([]float32, n/2)
	im := make([]float32, n/2)
	if err := Real(n, x, re, im); err != nil {
		t.Fatalf("Real: %v", err)
	}

	for k := 1; k < n/2; k++ {
		got := math.Hypot(float64(re[k]), float64(im[k]))
		want := cmplx.Abs(ref[k])
		if math.Abs(got-want) > 1e-3*math.Max(1, want) {
			t.Fatalf("|X[%d]| = %v, want %v", k, got, want)
		}
	}
}

func TestRealSinePeak(t *testing.T) {
	const (
		n   = 512
		bin = 32
	)
	x := testutil.DeterministicSine(bin, n, 1, n)

	re := make([]float32, n/2)
	im := make([]float32, n/2)
	if err := Real(n, x, re, im); err != nil {
		t.Fatalf("Real: %v", err)
	}

	peak, peakMag := 0, 0.0
	for k := 1; k < n/2; k++ {
		if m := math.Hypot(float64(re[k]), float64(im[k])); m > peakMag {
			peak, peakMag = k, m
		}
	}
	if peak != bin {
		t.Fatalf("peak bin = %d, want %d", peak, bin)
	}
	if math.Abs(peakMag-n/2) > 1e-2 {
		t.Fatalf("peak magnitude = %v, want %v", peakMag, n/2)
	}
}

func TestRealRejectsInvalidInput(t *testing.T) {
	buf := make([]float32, 64)
	for _, n := range []int{0, 2, 6, 24} {
		if err := Real(n, buf, buf[:32], buf[32:]); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("n=%d: err=%v, want ErrInvalidSize", n, err)
		}
	}

	in := make([]float32, 32)
	if err := Real(32, in, make([]float32, 8), make([]float32, 16)); !errors.Is(err, ErrBufferLength) {
		t.Fatalf("short realOut: err=%v, want ErrBufferLength", err)
	}
	if err := Real(64, in, make([]float32, 32), make([]float32, 32)); !errors.Is(err, ErrBufferLength) {
		t.Fatalf("short input: err=%v, want ErrBufferLength", err)
	}
}

func TestRealAlternatingSizes(t *testing.T) {
	// Pooled scratch must adapt to every call's size.
	for _, n := range []int{1024, 16, 4096, 64, 1024} {
		x := testutil.DeterministicNoise(int64(n), 1, n)
		re := make([]float32, n/2)
		im := make([]float32, n/2)
		if err := Real(n, x, re, im); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		fullRe := make([]float32, n)
		fullIm := make([]float32, n)
		if err := Complex(n, false, x, nil, fullRe, fullIm); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		for k := 1; k < n/2; k++ {
			if math.Abs(float64(re[k]-fullRe[k])) > 1e-3 {
				t.Fatalf("n=%d bin %d = %v, want %v", n, k, re[k], fullRe[k])
			}
		}
	}
}
