package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
		excludes []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseRender,
				Kind:   KindNilPointer,
				Path:   []string{"rows", "[3]", "cell"},
				GoType: "*big.Int",
				Detail: "nil pointer",
			},
			contains: []string{"[render]", "nil_pointer", "rows.[3].cell", "Go type *big.Int", " - nil pointer"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseBuffer,
				Kind:  KindOverflow,
			},
			contains: []string{"[buffer]", "overflow"},
			excludes: []string{" at ", ": "},
		},
		{
			name: "detail without type",
			err: &Error{
				Phase:  PhaseConfig,
				Kind:   KindInvalidInput,
				Detail: "unknown sanitize policy",
			},
			contains: []string{"[config] invalid_input: unknown sanitize policy"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseTemplate,
				Kind:   KindRenderFailed,
				Detail: "render page",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[template]", "render_failed", "render page", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(msg, s) {
					t.Errorf("error message %q should not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseRender,
		Kind:  KindRenderFailed,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not walk to cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseRender,
		Kind:  KindUnsupported,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseRender, Kind: KindUnsupported}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseTemplate, Kind: KindUnsupported}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseRender, Kind: KindNilPointer}) {
		t.Error("Is should not match different kind")
	}

	// wrapped twice, still found by phase+kind
	outer := RenderFailed(PhaseRender, []string{"[0]"}, err)
	if !errors.Is(outer, &Error{Phase: PhaseRender, Kind: KindUnsupported}) {
		t.Error("errors.Is should find the inner error")
	}

	var target *Error
	if !errors.As(outer, &target) || target.Kind != KindRenderFailed {
		t.Errorf("errors.As = %v, want outer render_failed error", target)
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseRender, KindUnsupported).
		Path("page", "title").
		GoType("chan int").
		Value(42).
		Cause(cause).
		Detail("cannot render %s", "channels").
		Build()

	if err.Phase != PhaseRender {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseRender)
	}
	if err.Kind != KindUnsupported {
		t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
	}
	if len(err.Path) != 2 || err.Path[0] != "page" || err.Path[1] != "title" {
		t.Errorf("Path = %v, want [page title]", err.Path)
	}
	if err.GoType != "chan int" {
		t.Errorf("GoType = %v, want 'chan int'", err.GoType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "cannot render channels" {
		t.Errorf("Detail = %v, want 'cannot render channels'", err.Detail)
	}

	plain := New(PhaseEscape, KindInvalidInput).Detail("width 100%%").Build()
	if plain.Detail != "width 100%" {
		t.Errorf("Detail = %q, want %q", plain.Detail, "width 100%")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("CapacityOverflow", func(t *testing.T) {
		err := CapacityOverflow(1<<62, 1<<61)
		if err.Phase != PhaseBuffer || err.Kind != KindOverflow {
			t.Errorf("got %s/%s, want buffer/overflow", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Detail, "capacity is too large") {
			t.Errorf("Detail = %q", err.Detail)
		}
		if err.Value != 1<<62 {
			t.Errorf("Value = %v, want requested size", err.Value)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		data := make([]byte, 64)
		data[0] = 0xff
		err := InvalidUTF8(PhaseLoad, []string{"str"}, data)
		if err.Kind != KindInvalidUTF8 {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidUTF8)
		}
		// preview is truncated to 32 bytes, 64 hex digits
		if got := len(strings.TrimPrefix(err.Detail, "invalid UTF-8 sequence: ")); got != 64 {
			t.Errorf("preview length = %d, want 64", got)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseRender, "map[string]int")
		if err.Kind != KindUnsupported || err.GoType != "map[string]int" {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("NilPointer", func(t *testing.T) {
		err := NilPointer(PhaseRender, []string{"ptr"}, "*User")
		if err.Kind != KindNilPointer {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNilPointer)
		}
		if err.GoType != "*User" {
			t.Errorf("GoType = %v, want '*User'", err.GoType)
		}
	})

	t.Run("RenderFailed", func(t *testing.T) {
		cause := errors.New("db down")
		err := RenderFailed(PhaseTemplate, []string{"index"}, cause)
		if err.Kind != KindRenderFailed || !errors.Is(err, cause) {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseConfig, "sanitize policy", "paranoid")
		if err.Kind != KindNotFound || !strings.Contains(err.Detail, `"paranoid"`) {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("Load and Output", func(t *testing.T) {
		cause := errors.New("eof")
		if err := Load("read data", cause); err.Phase != PhaseLoad || !errors.Is(err, cause) {
			t.Errorf("Load = %+v", err)
		}
		if err := Output("write page", cause); err.Phase != PhaseOutput || !errors.Is(err, cause) {
			t.Errorf("Output = %+v", err)
		}
	})
}
