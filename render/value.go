package render

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/wippyai/render-runtime/buffer"
	"github.com/wippyai/render-runtime/errors"
	"github.com/wippyai/render-runtime/escape"
)

// Value renders an arbitrary Go value raw. Renderers render themselves;
// strings, booleans and numbers use the primitive renderers; pointers and
// interfaces are followed until a value is reached. fmt.Stringer is used
// as a last resort before failing with an unsupported error.
func Value(b *buffer.Buffer, v any) error {
	return renderValue(b, v, false)
}

// ValueEscaped is Value with HTML escaping.
func ValueEscaped(b *buffer.Buffer, v any) error {
	return renderValue(b, v, true)
}

func renderValue(b *buffer.Buffer, v any, escaped bool) error {
	switch x := v.(type) {
	case nil:
		return errors.NilPointer(errors.PhaseRender, nil, "nil")
	case Renderer:
		if rv := reflect.ValueOf(x); isNilRef(rv) {
			return errors.NilPointer(errors.PhaseRender, nil, rv.Type().String())
		}
		if escaped {
			return x.RenderEscaped(b)
		}
		return x.Render(b)
	case string:
		if escaped {
			escape.ToBuf(x, b)
		} else {
			b.PushString(x)
		}
		return nil
	case []byte:
		if escaped {
			escape.BytesToBuf(x, b)
		} else {
			b.PushBytes(x)
		}
		return nil
	case bool:
		AppendBool(b, x)
	case int:
		AppendInt(b, x)
	case int8:
		AppendInt(b, x)
	case int16:
		AppendInt(b, x)
	case int32:
		AppendInt(b, x)
	case int64:
		AppendInt(b, x)
	case uint:
		AppendUint(b, x)
	case uint8:
		AppendUint(b, x)
	case uint16:
		AppendUint(b, x)
	case uint32:
		AppendUint(b, x)
	case uint64:
		AppendUint(b, x)
	case uintptr:
		AppendUint(b, x)
	case float32:
		AppendFloat32(b, x)
	case float64:
		AppendFloat64(b, x)
	case *big.Int:
		return Big(x).Render(b)
	default:
		return renderReflect(b, reflect.ValueOf(v), escaped)
	}
	return nil
}

// isNilRef reports whether rv is a nil value of a kind that can be nil.
func isNilRef(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func renderReflect(b *buffer.Buffer, rv reflect.Value, escaped bool) error {
	orig := rv
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return errors.NilPointer(errors.PhaseRender, nil, rv.Type().String())
		}
		rv = rv.Elem()
		if rv.CanInterface() {
			if r, ok := rv.Interface().(Renderer); ok {
				return renderValue(b, r, escaped)
			}
		}
	}

	switch rv.Kind() {
	case reflect.String:
		return renderValue(b, rv.String(), escaped)
	case reflect.Bool:
		AppendBool(b, rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		AppendInt(b, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		AppendUint(b, rv.Uint())
	case reflect.Float32:
		AppendFloat32(b, float32(rv.Float()))
	case reflect.Float64:
		AppendFloat64(b, rv.Float())
	default:
		for _, c := range []reflect.Value{orig, rv} {
			if c.CanInterface() {
				if s, ok := c.Interface().(fmt.Stringer); ok {
					return renderValue(b, Stringer{s}, escaped)
				}
			}
		}
		return errors.Unsupported(errors.PhaseRender, rv.Type().String())
	}
	return nil
}
