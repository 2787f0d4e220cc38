package buffer

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 64 << 10
	poolInitCap = 256
)

var bufferPool = sync.Pool{
	New: func() any {
		return WithCapacity(poolInitCap)
	},
}

// Get returns an empty buffer from the pool.
func Get() *Buffer {
	return bufferPool.Get().(*Buffer)
}

// Put clears b and returns it to the pool. b must not be used afterwards.
// Buffers that grew beyond the pool ceiling are dropped.
func Put(b *Buffer) {
	if b == nil || b.Cap() > poolMaxCap {
		return // reject oversized
	}
	b.Clear()
	bufferPool.Put(b)
}
