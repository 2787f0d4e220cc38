// Package buffer provides the growable output buffer that rendered content
// is accumulated in.
//
// # Growth
//
// When an append does not fit in the spare capacity, the buffer is
// reallocated to max(2*capacity, capacity+size):
//
//	b := buffer.New()      // len 0, cap 0, no allocation
//	b.PushString("apple")  // len 5, cap 5
//	b.PushString("pie")    // len 8, cap 10
//
// Capacities above MaxCapacity panic with a buffer/overflow error.
//
// # Direct Writes
//
// Formatters that know an upper bound for their output reserve it, write
// into Spare and report the bytes written with Advance:
//
//	b.Reserve(20)
//	n := len(strconv.AppendUint(b.Spare()[:0], v, 10))
//	b.Advance(n)
//
// # Handoff
//
// IntoString returns the content as a string that shares the buffer's
// memory and leaves the buffer empty:
//
//	page := b.IntoString()
//
// Clone copies only the live content: the clone's capacity equals the
// source's length.
//
// # Pooling
//
// Get and Put recycle short-lived buffers such as the scratch buffer used
// by the default escaping strategy.
package buffer
