package fft

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a transform size is not a power of two >= 2.
	ErrInvalidSize = errors.New("fft size must be a power of two >= 2")
	// ErrBufferLength is returned when an input or output slice is shorter than required.
	ErrBufferLength = errors.New("fft buffer too short")
)

// IsPowerOfTwo reports whether n is a power of two and at least 2.
func IsPowerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// Log2 returns the number of bits needed to index a power-of-two size.
// The result is meaningless for sizes rejected by IsPowerOfTwo.
func Log2(n int) int {
	bits := 0
	for n > 1 {
		n >>= 1
		bits++
	}
	return bits
}

func validateSize(n int) error {
	if !IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return nil
}

func validateLength(name string, buf []float32, need int) error {
	if len(buf) < need {
		return fmt.Errorf("%w: %s has %d samples, need %d", ErrBufferLength, name, len(buf), need)
	}
	return nil
}
