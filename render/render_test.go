package render

import (
	stderrors "errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/render-runtime/buffer"
	"github.com/wippyai/render-runtime/errors"
)

// card only knows how to render raw HTML.
type card struct {
	title string
	count int
}

func (c card) Render(b *buffer.Buffer) error {
	b.PushString("<h2>")
	b.PushString(c.title)
	b.PushString("</h2>")
	AppendInt(b, c.count)
	return nil
}

func (c card) RenderEscaped(b *buffer.Buffer) error {
	return DefaultEscaped(b, c)
}

func TestDefaultEscaped(t *testing.T) {
	c := card{title: "Tom & Jerry", count: 3}

	b := buffer.FromString("x:")
	if err := c.RenderEscaped(b); err != nil {
		t.Fatal(err)
	}
	want := "x:&lt;h2&gt;Tom &amp; Jerry&lt;/h2&gt;3"
	if got := b.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDefaultEscaped_ErrorLeavesBuffer(t *testing.T) {
	boom := stderrors.New("boom")
	f := Func(func(b *buffer.Buffer) error {
		b.PushString("partial")
		return boom
	})

	b := buffer.FromString("keep")
	err := f.RenderEscaped(b)
	if !stderrors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}
	if got := b.String(); got != "keep" {
		t.Errorf("buffer changed to %q", got)
	}
}

func TestFunc(t *testing.T) {
	f := Func(func(b *buffer.Buffer) error {
		b.PushString(`<i class="x">`)
		return nil
	})

	var got []string
	for _, escaped := range []bool{false, true} {
		b := buffer.New()
		var err error
		if escaped {
			err = f.RenderEscaped(b)
		} else {
			err = f.Render(b)
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, b.String())
	}

	want := []string{`<i class="x">`, "&lt;i class=&quot;x&quot;&gt;"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Func output mismatch (-want +got):\n%s", diff)
	}
}

func TestLocked(t *testing.T) {
	var mu sync.Mutex
	held := false
	r := Locked(&mu, Func(func(b *buffer.Buffer) error {
		held = !mu.TryLock()
		b.PushString("<ok>")
		return nil
	}))

	b := buffer.New()
	if err := r.RenderEscaped(b); err != nil {
		t.Fatal(err)
	}
	if !held {
		t.Error("lock was not held while rendering")
	}
	if !mu.TryLock() {
		t.Fatal("lock not released")
	}
	mu.Unlock()
	if got := b.String(); got != "&lt;ok&gt;" {
		t.Errorf("got %q", got)
	}
}

func TestRLocked(t *testing.T) {
	var mu sync.RWMutex
	v := Str("shared")
	writerBlocked := false
	r := RLocked(&mu, Func(func(b *buffer.Buffer) error {
		writerBlocked = !mu.TryLock()
		return v.Render(b)
	}))

	// Concurrent readers must not block each other.
	mu.RLock()
	b := buffer.New()
	if err := r.Render(b); err != nil {
		t.Fatal(err)
	}
	mu.RUnlock()

	if !writerBlocked {
		t.Error("write lock acquired during read")
	}
	if got := b.String(); got != "shared" {
		t.Errorf("got %q", got)
	}
}

func TestAtomic(t *testing.T) {
	var p atomic.Pointer[Str]
	r := Atomic(&p)

	b := buffer.New()
	err := r.Render(b)
	if !stderrors.Is(err, errors.New(errors.PhaseRender, errors.KindNilPointer).Build()) {
		t.Fatalf("expected nil pointer error, got %v", err)
	}

	first := Str("a<b")
	p.Store(&first)
	_ = r.RenderEscaped(b)

	second := Str("|c")
	p.Store(&second)
	_ = r.Render(b)

	if got := b.String(); got != "a&lt;b|c" {
		t.Errorf("got %q", got)
	}
}

func TestAtomic_Concurrent(t *testing.T) {
	var p atomic.Pointer[Int]
	start := Int(0)
	p.Store(&start)
	r := Atomic(&p)

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(2)
		go func(v Int) {
			defer wg.Done()
			p.Store(&v)
		}(Int(i))
		go func() {
			defer wg.Done()
			b := buffer.New()
			if err := r.Render(b); err != nil || b.IsEmpty() {
				t.Errorf("render failed: %v %q", err, b.String())
			}
		}()
	}
	wg.Wait()
}
