package buffer

import "sync"

// Pool recycles scratch Buffers across transform and analysis calls.
type Pool struct {
	p sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{p: sync.Pool{New: func() any { return new(Buffer) }}}
}

// Get returns a zero-filled Buffer of length samples. Contents and length
// left behind by an earlier user are never visible.
func (p *Pool) Get(length int) *Buffer {
	b := p.p.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// GetChunks returns a zero-filled Buffer holding count regions of size
// samples each, addressed with Chunk.
func (p *Pool) GetChunks(count, size int) *Buffer {
	return p.Get(count * size)
}

// Put hands b back. b must not be used afterwards; nil is ignored.
func (p *Pool) Put(b *Buffer) {
	if b != nil {
		p.p.Put(b)
	}
}
