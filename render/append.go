package render

import (
	"math"
	"unsafe"

	"github.com/wippyai/render-runtime/buffer"
	"github.com/wippyai/render-runtime/escape"
	"github.com/wippyai/render-runtime/internal/numfmt"
)

// Signed matches every signed integer type, including named ones.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches every unsigned integer type, including named ones.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// AppendInt writes v in base 10. The digits are formatted straight into the
// buffer's spare capacity after reserving the widest value for T.
func AppendInt[T Signed](b *buffer.Buffer, v T) {
	b.Reserve(numfmt.IntLen(unsafe.Sizeof(v), true))
	b.Advance(numfmt.Int(b.Spare(), int64(v)))
}

// AppendUint writes v in base 10.
func AppendUint[T Unsigned](b *buffer.Buffer, v T) {
	b.Reserve(numfmt.IntLen(unsafe.Sizeof(v), false))
	b.Advance(numfmt.Uint(b.Spare(), uint64(v)))
}

// AppendFloat32 writes the shortest round-trip form of f, or NaN, inf, -inf.
func AppendFloat32(b *buffer.Buffer, f float32) {
	if f64 := float64(f); math.IsNaN(f64) || math.IsInf(f64, 0) {
		appendNonFinite(b, f64)
		return
	}
	b.Reserve(numfmt.MaxFloat32Len)
	b.Advance(numfmt.Float32(b.Spare(), f))
}

// AppendFloat64 writes the shortest round-trip form of f, or NaN, inf, -inf.
func AppendFloat64(b *buffer.Buffer, f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		appendNonFinite(b, f)
		return
	}
	b.Reserve(numfmt.MaxFloat64Len)
	b.Advance(numfmt.Float64(b.Spare(), f))
}

func appendNonFinite(b *buffer.Buffer, f float64) {
	switch {
	case math.IsNaN(f):
		b.PushString("NaN")
	case f > 0:
		b.PushString("inf")
	default:
		b.PushString("-inf")
	}
}

// AppendBool writes true or false.
func AppendBool(b *buffer.Buffer, v bool) {
	if v {
		b.PushString("true")
	} else {
		b.PushString("false")
	}
}

// AppendString writes s verbatim.
func AppendString(b *buffer.Buffer, s string) {
	b.PushString(s)
}

// AppendStringEscaped writes s HTML-escaped.
func AppendStringEscaped(b *buffer.Buffer, s string) {
	escape.ToBuf(s, b)
}

// AppendChar writes r.
func AppendChar(b *buffer.Buffer, r rune) {
	b.Push(r)
}

// AppendCharEscaped writes r, replacing the five special characters.
func AppendCharEscaped(b *buffer.Buffer, r rune) {
	escape.Char(r, b)
}
