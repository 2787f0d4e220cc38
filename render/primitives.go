package render

import (
	"math/big"
	"strings"

	"github.com/wippyai/render-runtime/buffer"
	"github.com/wippyai/render-runtime/errors"
	"github.com/wippyai/render-runtime/escape"
	"github.com/wippyai/render-runtime/internal/numfmt"
)

// Primitive renderers. All use value receivers, so a pointer to any of
// them renders the same as the value itself.

// Str is text. Its escaped form is escaped in place, without a scratch buffer.
type Str string

func (s Str) Render(b *buffer.Buffer) error {
	b.PushString(string(s))
	return nil
}

func (s Str) RenderEscaped(b *buffer.Buffer) error {
	escape.ToBuf(string(s), b)
	return nil
}

// Char is a single character.
type Char rune

func (c Char) Render(b *buffer.Buffer) error {
	b.Push(rune(c))
	return nil
}

func (c Char) RenderEscaped(b *buffer.Buffer) error {
	escape.Char(rune(c), b)
	return nil
}

// Bool renders as true or false.
type Bool bool

func (v Bool) Render(b *buffer.Buffer) error {
	AppendBool(b, bool(v))
	return nil
}

func (v Bool) RenderEscaped(b *buffer.Buffer) error {
	return v.Render(b)
}

// Path is a filesystem path. Bytes that are not valid UTF-8 are replaced
// with U+FFFD.
type Path string

func (p Path) lossy() string {
	return strings.ToValidUTF8(string(p), "\uFFFD")
}

func (p Path) Render(b *buffer.Buffer) error {
	b.PushString(p.lossy())
	return nil
}

func (p Path) RenderEscaped(b *buffer.Buffer) error {
	escape.ToBuf(p.lossy(), b)
	return nil
}

// Integers never contain escapable characters, so the escaped form is the
// raw form.
type (
	Int     int
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Uint    uint
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Uintptr uintptr
)

func (v Int) Render(b *buffer.Buffer) error            { AppendInt(b, v); return nil }
func (v Int) RenderEscaped(b *buffer.Buffer) error     { AppendInt(b, v); return nil }
func (v Int8) Render(b *buffer.Buffer) error           { AppendInt(b, v); return nil }
func (v Int8) RenderEscaped(b *buffer.Buffer) error    { AppendInt(b, v); return nil }
func (v Int16) Render(b *buffer.Buffer) error          { AppendInt(b, v); return nil }
func (v Int16) RenderEscaped(b *buffer.Buffer) error   { AppendInt(b, v); return nil }
func (v Int32) Render(b *buffer.Buffer) error          { AppendInt(b, v); return nil }
func (v Int32) RenderEscaped(b *buffer.Buffer) error   { AppendInt(b, v); return nil }
func (v Int64) Render(b *buffer.Buffer) error          { AppendInt(b, v); return nil }
func (v Int64) RenderEscaped(b *buffer.Buffer) error   { AppendInt(b, v); return nil }
func (v Uint) Render(b *buffer.Buffer) error           { AppendUint(b, v); return nil }
func (v Uint) RenderEscaped(b *buffer.Buffer) error    { AppendUint(b, v); return nil }
func (v Uint8) Render(b *buffer.Buffer) error          { AppendUint(b, v); return nil }
func (v Uint8) RenderEscaped(b *buffer.Buffer) error   { AppendUint(b, v); return nil }
func (v Uint16) Render(b *buffer.Buffer) error         { AppendUint(b, v); return nil }
func (v Uint16) RenderEscaped(b *buffer.Buffer) error  { AppendUint(b, v); return nil }
func (v Uint32) Render(b *buffer.Buffer) error         { AppendUint(b, v); return nil }
func (v Uint32) RenderEscaped(b *buffer.Buffer) error  { AppendUint(b, v); return nil }
func (v Uint64) Render(b *buffer.Buffer) error         { AppendUint(b, v); return nil }
func (v Uint64) RenderEscaped(b *buffer.Buffer) error  { AppendUint(b, v); return nil }
func (v Uintptr) Render(b *buffer.Buffer) error        { AppendUint(b, v); return nil }
func (v Uintptr) RenderEscaped(b *buffer.Buffer) error { AppendUint(b, v); return nil }

// Float32 renders the shortest round-trip decimal, or NaN, inf, -inf.
type Float32 float32

func (v Float32) Render(b *buffer.Buffer) error {
	AppendFloat32(b, float32(v))
	return nil
}

func (v Float32) RenderEscaped(b *buffer.Buffer) error {
	return v.Render(b)
}

// Float64 renders the shortest round-trip decimal, or NaN, inf, -inf.
type Float64 float64

func (v Float64) Render(b *buffer.Buffer) error {
	AppendFloat64(b, float64(v))
	return nil
}

func (v Float64) RenderEscaped(b *buffer.Buffer) error {
	return v.Render(b)
}

// BigInt renders an arbitrary precision integer. Convert with Big.
type BigInt big.Int

// Big returns x as a renderer.
func Big(x *big.Int) *BigInt {
	return (*BigInt)(x)
}

func (v *BigInt) Render(b *buffer.Buffer) error {
	if v == nil {
		return errors.NilPointer(errors.PhaseRender, nil, "*big.Int")
	}
	x := (*big.Int)(v)
	b.Reserve(numfmt.BigIntLen(x))
	b.Advance(numfmt.BigInt(b.Spare(), x))
	return nil
}

func (v *BigInt) RenderEscaped(b *buffer.Buffer) error {
	return v.Render(b)
}
