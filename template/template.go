package template

import (
	"go.uber.org/zap"

	"github.com/wippyai/render-runtime/buffer"
	"github.com/wippyai/render-runtime/errors"
)

// Template is implemented by generated template code.
type Template interface {
	// RenderOnce appends the template output to b.
	RenderOnce(b *buffer.Buffer) error
}

// Func is the body of a compiled template.
type Func func(b *buffer.Buffer) error

// Compiled is a named template body with its own size hint.
// A Compiled is safe for concurrent use if its body is.
type Compiled struct {
	name string
	fn   Func
	hint SizeHint
}

// New returns a compiled template.
func New(name string, fn Func) *Compiled {
	return &Compiled{name: name, fn: fn}
}

// Name returns the template name.
func (c *Compiled) Name() string {
	return c.name
}

// Hint returns the template's size hint.
func (c *Compiled) Hint() *SizeHint {
	return &c.hint
}

// RenderOnce implements Template.
func (c *Compiled) RenderOnce(b *buffer.Buffer) error {
	if err := c.fn(b); err != nil {
		Logger().Debug("template render failed",
			zap.String("template", c.name),
			zap.Error(err))
		return errors.RenderFailed(errors.PhaseTemplate, []string{c.name}, err)
	}
	return nil
}

// RenderTo appends the output to b, reserving the hinted size first.
func (c *Compiled) RenderTo(b *buffer.Buffer) error {
	start := b.Len()
	b.Reserve(c.hint.Get())
	if err := c.RenderOnce(b); err != nil {
		return err
	}
	c.hint.Update(b.Len() - start)
	return nil
}

// Render returns the output as a string. The buffer is sized from the hint
// and handed over to the string without copying.
func (c *Compiled) Render() (string, error) {
	b := buffer.WithCapacity(c.hint.Get())
	if err := c.RenderOnce(b); err != nil {
		return "", err
	}
	c.hint.Update(b.Len())
	return b.IntoString(), nil
}

// RenderToString renders any template into a fresh string.
func RenderToString(t Template) (string, error) {
	if c, ok := t.(*Compiled); ok {
		return c.Render()
	}
	b := buffer.New()
	if err := t.RenderOnce(b); err != nil {
		return "", err
	}
	return b.IntoString(), nil
}
