package fft

import "sync"

// MaxFastBits is the widest index served from the cached reversal tables.
const MaxFastBits = 16

// BitTable caches bit-reversal permutations for widths 1..MaxFastBits.
//
// The tables are built on first use. A BitTable is safe for concurrent use;
// readers never see a partially built table.
type BitTable struct {
	once   sync.Once
	tables [MaxFastBits][]uint16
}

var defaultBitTable = NewBitTable()

// NewBitTable returns an empty table. Nothing is allocated until the first
// Reverse call with a width within the fast path.
func NewBitTable() *BitTable {
	return &BitTable{}
}

func (b *BitTable) build() {
	size := 2
	for bits := 1; bits <= MaxFastBits; bits++ {
		t := make([]uint16, size)
		for i := range t {
			t[i] = uint16(reverseBits(i, bits))
		}
		b.tables[bits-1] = t
		size <<= 1
	}
}

// Reverse returns index with its lowest numBits bits in reverse order.
// index must be in [0, 2^numBits).
func (b *BitTable) Reverse(index, numBits int) int {
	if numBits < 1 || numBits > MaxFastBits {
		return reverseBits(index, numBits)
	}
	b.once.Do(b.build)
	return int(b.tables[numBits-1][index])
}

// ReverseBits reverses index within a numBits-wide field using the shared
// process-wide table.
func ReverseBits(index, numBits int) int {
	return defaultBitTable.Reverse(index, numBits)
}

func reverseBits(index, numBits int) int {
	rev := 0
	for i := 0; i < numBits; i++ {
		rev = rev<<1 | index&1
		index >>= 1
	}
	return rev
}
