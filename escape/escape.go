package escape

import (
	"unsafe"

	"github.com/wippyai/render-runtime/buffer"
)

// entities maps each byte that must be escaped to its replacement.
// All five are ASCII, so scanning bytes never splits a multi-byte sequence.
var entities = [256]string{
	'"':  "&quot;",
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'\'': "&#039;",
}

// ToBuf appends s to b with the five HTML-significant characters replaced
// by entities. Runs without special characters are copied in one push.
func ToBuf(s string, b *buffer.Buffer) {
	b.Reserve(len(s))
	start := 0
	for i := 0; i < len(s); i++ {
		e := entities[s[i]]
		if e == "" {
			continue
		}
		if start < i {
			b.PushString(s[start:i])
		}
		b.PushString(e)
		start = i + 1
	}
	if start < len(s) {
		b.PushString(s[start:])
	}
}

// BytesToBuf is ToBuf for a byte span holding valid UTF-8.
func BytesToBuf(p []byte, b *buffer.Buffer) {
	if len(p) == 0 {
		return
	}
	ToBuf(unsafe.String(unsafe.SliceData(p), len(p)), b)
}

// Char appends a single character, escaped.
func Char(r rune, b *buffer.Buffer) {
	if uint32(r) < 0x80 {
		if e := entities[r]; e != "" {
			b.PushString(e)
			return
		}
	}
	b.Push(r)
}

// NeedsEscape reports whether s contains any character ToBuf would replace.
func NeedsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if entities[s[i]] != "" {
			return true
		}
	}
	return false
}

// String returns s escaped. It returns s itself when nothing needs escaping.
func String(s string) string {
	if !NeedsEscape(s) {
		return s
	}
	b := buffer.WithCapacity(len(s) + len(s)/4)
	ToBuf(s, b)
	return b.IntoString()
}

// Writer is an io.Writer that escapes everything written to it into a Buffer.
type Writer struct {
	b *buffer.Buffer
}

// NewWriter returns a Writer appending to b.
func NewWriter(b *buffer.Buffer) *Writer {
	return &Writer{b: b}
}

// Write escapes p into the underlying buffer. It reports len(p) consumed and never fails.
func (w *Writer) Write(p []byte) (int, error) {
	BytesToBuf(p, w.b)
	return len(p), nil
}

// WriteString escapes s into the underlying buffer. It never fails.
func (w *Writer) WriteString(s string) (int, error) {
	ToBuf(s, w.b)
	return len(s), nil
}
