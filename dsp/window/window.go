package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeBartlett
	TypeHamming
	TypeHanning

	numTypes
)

var names = [numTypes]string{
	TypeRectangular: "Rectangular",
	TypeBartlett:    "Bartlett",
	TypeHamming:     "Hamming",
	TypeHanning:     "Hanning",
}

// Count returns the number of available window functions.
func Count() int {
	return int(numTypes)
}

// Types returns all window types in code order.
func Types() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// Valid reports whether t is one of the defined window types.
func (t Type) Valid() bool {
	return t >= 0 && t < numTypes
}

// String returns the display name. Unknown types report "Rectangular".
func (t Type) String() string {
	if !t.Valid() {
		return names[TypeRectangular]
	}
	return names[t]
}

// Name returns the display name for a window code.
func Name(index int) string {
	return Type(index).String()
}

// Apply multiplies buf in place by the window of length len(buf).
// Unknown types leave buf unchanged.
func Apply(t Type, buf []float32) {
	n := len(buf)
	switch t {
	case TypeBartlett:
		half := n / 2
		for i := 0; i < half; i++ {
			ramp := float32(i) / float32(half)
			buf[i] *= ramp
			buf[i+half] *= 1 - ramp
		}
	case TypeHamming, TypeHanning:
		if n < 2 {
			return
		}
		a0, a1 := cosineTerms(t)
		denom := float64(n - 1)
		for i := range buf {
			buf[i] *= float32(a0 - a1*math.Cos(2*math.Pi*float64(i)/denom))
		}
	}
}

// ApplyIndex applies the window with code index to the first n samples of
// buf. Out-of-range codes and lengths leave buf unchanged.
func ApplyIndex(index, n int, buf []float32) {
	if n < 0 || n > len(buf) {
		return
	}
	Apply(Type(index), buf[:n])
}

// Generate returns the coefficients Apply would multiply a length-n buffer by.
func Generate(t Type, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	switch t {
	case TypeBartlett:
		half := n / 2
		for i := 0; i < half; i++ {
			ramp := float64(i) / float64(half)
			out[i] = ramp
			out[i+half] = 1 - ramp
		}
	case TypeHamming, TypeHanning:
		if n < 2 {
			break
		}
		a0, a1 := cosineTerms(t)
		denom := float64(n - 1)
		for i := range out {
			out[i] = a0 - a1*math.Cos(2*math.Pi*float64(i)/denom)
		}
	}
	return out
}

// Apply64 multiplies a float64 buffer in place by the selected window.
func Apply64(t Type, buf []float64) {
	if len(buf) == 0 || t == TypeRectangular || !t.Valid() {
		return
	}
	vecmath.MulBlockInPlace(buf, Generate(t, len(buf)))
}

func cosineTerms(t Type) (a0, a1 float64) {
	if t == TypeHamming {
		return 0.54, 0.46
	}
	return 0.5, 0.5
}
