package renderruntime

import "github.com/wippyai/render-runtime/buffer"

// Renderer is implemented by every value that can be written into a Buffer.
//
// Render appends the raw text form. RenderEscaped appends the HTML-safe
// form. Types whose raw output cannot contain any of the five escaped
// characters forward RenderEscaped to Render.
type Renderer interface {
	Render(b *buffer.Buffer) error
	RenderEscaped(b *buffer.Buffer) error
}
