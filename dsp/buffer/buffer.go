package buffer

// Buffer wraps a float32 slice that can be resized without reallocating when
// capacity allows.
type Buffer struct {
	samples []float32
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float32, length)}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float32 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n, reusing capacity when possible.
// Elements exposed beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n > cap(b.samples) {
		s := make([]float32, n)
		copy(s, b.samples)
		b.samples = s
		return
	}
	b.samples = b.samples[:n]
	if n > oldLen {
		clear(b.samples[oldLen:n])
	}
}

// Chunk returns region i of consecutive size-sample regions. The result is
// capacity-limited, so appending to it never overwrites region i+1.
func (b *Buffer) Chunk(i, size int) []float32 {
	lo := i * size
	return b.samples[lo : lo+size : lo+size]
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	clear(b.samples)
}
