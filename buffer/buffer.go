package buffer

import (
	"math"
	"strconv"
	"unicode/utf8"
	"unsafe"

	"github.com/wippyai/render-runtime/errors"
)

// MaxCapacity is the largest capacity a Buffer may hold. Requests above it
// panic with a CapacityOverflow error.
const MaxCapacity = math.MaxInt / 2

// Buffer is the output sink for rendered content.
//
// It behaves like a strings.Builder with an explicit growth policy, direct
// access to spare capacity for formatters, and a zero-copy handoff to string.
// len(data) is the rendered length and cap(data) the allocated capacity; a
// nil slice means nothing has been allocated.
//
// A Buffer must not be used from more than one goroutine at a time.
type Buffer struct {
	data []byte
}

// New returns an empty buffer. It does not allocate.
func New() *Buffer {
	return &Buffer{}
}

// WithCapacity returns an empty buffer with room for at least n bytes.
func WithCapacity(n int) *Buffer {
	if n == 0 {
		return New()
	}
	if n < 0 {
		panic(errors.InvalidInput(errors.PhaseBuffer, "negative capacity "+strconv.Itoa(n)))
	}
	return &Buffer{data: safeAlloc(n)}
}

// FromString returns a buffer holding a copy of s whose capacity equals len(s).
func FromString(s string) *Buffer {
	b := WithCapacity(len(s))
	b.data = append(b.data, s...)
	return b
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the allocated capacity.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// IsEmpty reports whether nothing has been written.
func (b *Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// Bytes returns the rendered content without copying.
// The slice is only valid until the next mutation of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String returns a copy of the rendered content.
func (b *Buffer) String() string {
	return string(b.data)
}

// GoString returns the quoted content, for %#v.
func (b *Buffer) GoString() string {
	return strconv.Quote(string(b.data))
}

// Reserve guarantees room for at least n more bytes without changing Len.
func (b *Buffer) Reserve(n int) {
	if n <= cap(b.data)-len(b.data) {
		if n < 0 {
			panic(errors.InvalidInput(errors.PhaseBuffer, "negative reserve "+strconv.Itoa(n)))
		}
		return
	}
	b.grow(n)
}

// Spare returns the writable region between Len and Cap. Its content is
// unspecified. Bytes written there become visible only after Advance.
func (b *Buffer) Spare() []byte {
	return b.data[len(b.data):cap(b.data)]
}

// Advance extends Len by n bytes without writing anything.
//
// The caller must already have written n bytes of valid UTF-8 at the start
// of Spare. Advancing past capacity panics; advancing over bytes that were
// not written leaves stale or zero bytes in the output.
func (b *Buffer) Advance(n int) {
	if n < 0 || n > cap(b.data)-len(b.data) {
		panic(errors.New(errors.PhaseBuffer, errors.KindOverflow).
			Detail("advance %d exceeds spare capacity %d", n, cap(b.data)-len(b.data)).
			Build())
	}
	b.data = b.data[:len(b.data)+n]
}

// Clear resets Len to zero and keeps the allocation.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
}

// PushString appends s.
func (b *Buffer) PushString(s string) {
	if len(s) > cap(b.data)-len(b.data) {
		b.grow(len(s))
	}
	b.data = append(b.data, s...)
}

// PushBytes appends p, which must be valid UTF-8.
func (b *Buffer) PushBytes(p []byte) {
	if len(p) > cap(b.data)-len(b.data) {
		b.grow(len(p))
	}
	b.data = append(b.data, p...)
}

// PushByte appends a single ASCII byte.
func (b *Buffer) PushByte(c byte) {
	if cap(b.data) == len(b.data) {
		b.grow(1)
	}
	b.data = append(b.data, c)
}

// Push appends the UTF-8 encoding of r.
func (b *Buffer) Push(r rune) {
	if r < utf8.RuneSelf {
		b.PushByte(byte(r))
		return
	}
	var scratch [utf8.UTFMax]byte
	n := utf8.EncodeRune(scratch[:], r)
	b.PushBytes(scratch[:n])
}

// Add appends s and returns the buffer, so appends can be chained.
func (b *Buffer) Add(s string) *Buffer {
	b.PushString(s)
	return b
}

// IntoString hands the rendered content over as a string without copying.
// The buffer is left empty with no allocation, so the returned string is
// never written to again.
func (b *Buffer) IntoString() string {
	data := b.data
	b.data = nil
	if len(data) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(data), len(data))
}

// Clone returns an independent copy whose capacity is exactly Len.
// Spare capacity of the source is not carried over.
func (b *Buffer) Clone() *Buffer {
	if cap(b.data) == 0 {
		return New()
	}
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &Buffer{data: data}
}

// Write implements io.Writer. p must be valid UTF-8. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.PushBytes(p)
	return len(p), nil
}

// WriteString implements io.StringWriter. It never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	b.PushString(s)
	return len(s), nil
}

// WriteByte implements io.ByteWriter. It never fails.
func (b *Buffer) WriteByte(c byte) error {
	b.PushByte(c)
	return nil
}

// WriteRune appends r and reports the encoded size. It never fails.
func (b *Buffer) WriteRune(r rune) (int, error) {
	before := len(b.data)
	b.Push(r)
	return len(b.data) - before, nil
}

// grow reallocates so that size more bytes fit, at least doubling.
func (b *Buffer) grow(size int) {
	oldCap := cap(b.data)
	newCap := max(oldCap*2, oldCap+size)
	b.data = safeRealloc(b.data, newCap, size)
}

func safeAlloc(capacity int) []byte {
	if capacity > MaxCapacity {
		panic(errors.CapacityOverflow(capacity, MaxCapacity))
	}
	return make([]byte, 0, capacity)
}

func safeRealloc(data []byte, newCap, size int) []byte {
	if size > MaxCapacity {
		panic(errors.CapacityOverflow(size, MaxCapacity))
	}
	if newCap > MaxCapacity {
		panic(errors.CapacityOverflow(newCap, MaxCapacity))
	}
	grown := make([]byte, len(data), newCap)
	copy(grown, data)
	return grown
}
