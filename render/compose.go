package render

import (
	"fmt"
	"strconv"

	"github.com/wippyai/render-runtime/buffer"
	"github.com/wippyai/render-runtime/errors"
	"github.com/wippyai/render-runtime/escape"
)

// Seq renders every item in order. The first failing item stops rendering;
// its error is wrapped with the item index.
func Seq[T Renderer](items []T) Renderer {
	return seq[T]{items: items}
}

// Join is Seq with sep written raw between items, in both modes.
func Join[T Renderer](sep string, items []T) Renderer {
	return seq[T]{items: items, sep: sep}
}

type seq[T Renderer] struct {
	sep   string
	items []T
}

func (s seq[T]) Render(b *buffer.Buffer) error {
	for i, item := range s.items {
		if i > 0 && s.sep != "" {
			b.PushString(s.sep)
		}
		if err := item.Render(b); err != nil {
			return indexErr(i, err)
		}
	}
	return nil
}

func (s seq[T]) RenderEscaped(b *buffer.Buffer) error {
	for i, item := range s.items {
		if i > 0 && s.sep != "" {
			b.PushString(s.sep)
		}
		if err := item.RenderEscaped(b); err != nil {
			return indexErr(i, err)
		}
	}
	return nil
}

func indexErr(i int, err error) error {
	return errors.RenderFailed(errors.PhaseRender, []string{"[" + strconv.Itoa(i) + "]"}, err)
}

// Stringer renders the result of String as text.
type Stringer struct {
	fmt.Stringer
}

func (s Stringer) Render(b *buffer.Buffer) error {
	if s.Stringer == nil {
		return errors.NilPointer(errors.PhaseRender, nil, "fmt.Stringer")
	}
	b.PushString(s.String())
	return nil
}

func (s Stringer) RenderEscaped(b *buffer.Buffer) error {
	if s.Stringer == nil {
		return errors.NilPointer(errors.PhaseRender, nil, "fmt.Stringer")
	}
	escape.ToBuf(s.String(), b)
	return nil
}

// Fmt renders fmt.Sprintf(format, args...) without building the string.
// The escaped form escapes the formatted output as it is produced.
func Fmt(format string, args ...any) Renderer {
	return formatted{format: format, args: args}
}

type formatted struct {
	format string
	args   []any
}

func (f formatted) Render(b *buffer.Buffer) error {
	fmt.Fprintf(b, f.format, f.args...)
	return nil
}

func (f formatted) RenderEscaped(b *buffer.Buffer) error {
	fmt.Fprintf(escape.NewWriter(b), f.format, f.args...)
	return nil
}
