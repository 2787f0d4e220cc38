package render

import (
	"sync"
	"sync/atomic"

	"github.com/wippyai/render-runtime/buffer"
	"github.com/wippyai/render-runtime/errors"
)

// Locked forwards both operations to r while holding mu.
// mu is the lock that already guards the value; Locked adds none of its own.
func Locked(mu sync.Locker, r Renderer) Renderer {
	return locked{mu: mu, r: r}
}

// RLocked forwards to r while holding a read lock on mu.
func RLocked(mu *sync.RWMutex, r Renderer) Renderer {
	return locked{mu: mu.RLocker(), r: r}
}

type locked struct {
	mu sync.Locker
	r  Renderer
}

func (l locked) Render(b *buffer.Buffer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Render(b)
}

func (l locked) RenderEscaped(b *buffer.Buffer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.RenderEscaped(b)
}

// Atomic forwards to whatever value p holds at render time. Rendering an
// empty pointer fails with a nil pointer error.
func Atomic[T any, P interface {
	*T
	Renderer
}](p *atomic.Pointer[T]) Renderer {
	return atomicRef[T, P]{p: p}
}

type atomicRef[T any, P interface {
	*T
	Renderer
}] struct {
	p *atomic.Pointer[T]
}

func (a atomicRef[T, P]) load() (Renderer, error) {
	v := a.p.Load()
	if v == nil {
		return nil, errors.NilPointer(errors.PhaseRender, nil, "*atomic.Pointer")
	}
	return P(v), nil
}

func (a atomicRef[T, P]) Render(b *buffer.Buffer) error {
	r, err := a.load()
	if err != nil {
		return err
	}
	return r.Render(b)
}

func (a atomicRef[T, P]) RenderEscaped(b *buffer.Buffer) error {
	r, err := a.load()
	if err != nil {
		return err
	}
	return r.RenderEscaped(b)
}
