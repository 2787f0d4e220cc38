// Package render implements Renderer for the primitive Go types and the
// adapters templates use to compose values.
//
// # Primitives
//
// Named types wrap the built-in kinds: Str, Char, Bool, Path, Int through
// Int64, Uint through Uintptr, Float32, Float64 and BigInt. Each has value
// receivers, so *Str renders exactly like Str. Deeper pointer chains such
// as **Str are not Renderers; pass them to Value, which dereferences them.
//
//	b := buffer.New()
//	_ = render.Str("a<b").RenderEscaped(b) // a&lt;b
//	_ = render.Float64(2.5).Render(b)      // 2.5
//
// Numbers are formatted directly into the buffer's spare capacity after a
// single reservation of the widest possible output. Floats use the shortest
// representation that parses back to the same value, switching to
// scientific notation for very large or very small magnitudes. Non-finite
// values render as NaN, inf and -inf. Numbers and booleans never need
// escaping.
//
// # Helpers
//
// The Append functions are the generic forms behind the primitives. They
// accept any type whose underlying type is an integer, so domain types such
// as `type UserID uint32` format without conversion.
//
// # Composition
//
//   - Func and DefaultEscaped give raw-only renderers an escaped form.
//   - Seq and Join render slices.
//   - Locked, RLocked and Atomic render values guarded by a lock or held
//     behind an atomic pointer.
//   - Stringer and Fmt bridge to the fmt package.
//   - Sanitized renders trusted markup through a bluemonday policy.
//   - Value and ValueEscaped render an arbitrary value chosen at run time.
package render
