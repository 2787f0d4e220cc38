package template

import "sync/atomic"

// SizeHint tracks the largest output a template has produced so the next
// render can allocate once. The zero value is ready to use.
type SizeHint struct {
	size atomic.Int64
}

// Get returns the recorded size plus headroom of an eighth and 75 bytes.
func (h *SizeHint) Get() int {
	n := int(h.size.Load())
	return n + n/8 + 75
}

// Update records n if it is larger than any size seen so far.
func (h *SizeHint) Update(n int) {
	v := int64(n)
	for {
		cur := h.size.Load()
		if v <= cur || h.size.CompareAndSwap(cur, v) {
			return
		}
	}
}
