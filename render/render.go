package render

import (
	renderruntime "github.com/wippyai/render-runtime"
	"github.com/wippyai/render-runtime/buffer"
	"github.com/wippyai/render-runtime/escape"
)

type Renderer = renderruntime.Renderer

// RawRenderer is the raw half of Renderer. Types that only know how to
// render raw text can satisfy Renderer with DefaultEscaped.
type RawRenderer interface {
	Render(b *buffer.Buffer) error
}

// DefaultEscaped renders r raw into a scratch buffer and escape-copies the
// result into b. Errors from r are returned unchanged and nothing is
// appended to b in that case.
//
//	func (u User) RenderEscaped(b *buffer.Buffer) error {
//		return render.DefaultEscaped(b, u)
//	}
func DefaultEscaped(b *buffer.Buffer, r RawRenderer) error {
	tmp := buffer.Get()
	defer buffer.Put(tmp)

	if err := r.Render(tmp); err != nil {
		return err
	}
	escape.BytesToBuf(tmp.Bytes(), b)
	return nil
}

// Func adapts a raw render function to Renderer, escaping with DefaultEscaped.
type Func func(b *buffer.Buffer) error

func (f Func) Render(b *buffer.Buffer) error {
	return f(b)
}

func (f Func) RenderEscaped(b *buffer.Buffer) error {
	return DefaultEscaped(b, f)
}
