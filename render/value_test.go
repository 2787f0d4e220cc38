package render

import (
	stderrors "errors"
	"math/big"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/render-runtime/buffer"
	"github.com/wippyai/render-runtime/errors"
)

type level uint8

type attrs map[string]string

func (a attrs) Render(b *buffer.Buffer) error {
	for k, v := range a {
		b.PushString(k)
		b.PushString(v)
	}
	return nil
}

func (a attrs) RenderEscaped(b *buffer.Buffer) error { return DefaultEscaped(b, a) }

type point struct{ x, y int }

func (p *point) String() string { return "(x<y)" }

func TestValue(t *testing.T) {
	s := "a<b"
	ps := &s
	var iface any = Str("<s>")
	n := 42

	tests := []struct {
		name    string
		in      any
		raw     string
		escaped string
	}{
		{"string", "x&y", "x&y", "x&amp;y"},
		{"bytes", []byte("<>"), "<>", "&lt;&gt;"},
		{"string pointer", &ps, "a<b", "a&lt;b"},
		{"bool", true, "true", "true"},
		{"int", -7, "-7", "-7"},
		{"int pointer", &n, "42", "42"},
		{"uint64", uint64(1 << 63), "9223372036854775808", "9223372036854775808"},
		{"rune", 'a', "97", "97"},
		{"float32", float32(2.3), "2.3", "2.3"},
		{"float64", 1e21, "1e21", "1e21"},
		{"big", big.NewInt(-5), "-5", "-5"},
		{"renderer", Str("<s>"), "<s>", "&lt;s&gt;"},
		{"renderer in interface", &iface, "<s>", "&lt;s&gt;"},
		{"named int", level(3), "3", "3"},
		{"duration", 2 * time.Second, "2000000000", "2000000000"},
		{"stringer", &point{1, 2}, "(x<y)", "(x&lt;y)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := buffer.New()
			if err := Value(raw, tt.in); err != nil {
				t.Fatalf("Value: %v", err)
			}
			esc := buffer.New()
			if err := ValueEscaped(esc, tt.in); err != nil {
				t.Fatalf("ValueEscaped: %v", err)
			}
			got := []string{raw.String(), esc.String()}
			if diff := cmp.Diff([]string{tt.raw, tt.escaped}, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValue_Errors(t *testing.T) {
	var nilStr *Str
	var nilInt *int

	tests := []struct {
		name string
		in   any
		kind errors.Kind
	}{
		{"nil", nil, errors.KindNilPointer},
		{"nil renderer", nilStr, errors.KindNilPointer},
		{"nil pointer", nilInt, errors.KindNilPointer},
		{"nil big", (*big.Int)(nil), errors.KindNilPointer},
		{"nil func", Func(nil), errors.KindNilPointer},
		{"nil map renderer", attrs(nil), errors.KindNilPointer},
		{"slice", []int{1}, errors.KindUnsupported},
		{"map", map[string]int{}, errors.KindUnsupported},
		{"struct", struct{}{}, errors.KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buffer.New()
			err := Value(b, tt.in)
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("expected *errors.Error, got %v", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", e.Kind, tt.kind)
			}
			if !b.IsEmpty() {
				t.Errorf("buffer written on error: %q", b.String())
			}
			if err := ValueEscaped(b, tt.in); err == nil {
				t.Error("ValueEscaped: expected error")
			}
		})
	}
}
