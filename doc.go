// Package renderruntime is the runtime support layer for compiled templates.
//
// Generated template code turns typed Go values into text by appending them
// to a single Buffer that is threaded through the whole render call tree;
// at the end the Buffer is handed over as a string without copying.
//
// # Architecture Overview
//
//	renderruntime/       Root package with the core Renderer interface
//	├── buffer/          Growable output buffer, direct writes, pooling
//	├── escape/          Five-character HTML escaping into a buffer
//	├── render/          Renderer implementations, delegation, dynamic values
//	├── template/        Compiled template glue and adaptive size hints
//	├── errors/          Structured error types
//	├── internal/numfmt/ Integer and float writers for reserved memory
//	└── cmd/render/      Renders a YAML/JSON document as an HTML page
//
// # Quick Start
//
//	b := buffer.New()
//	render.AppendString(b, "<p>")
//	render.AppendStringEscaped(b, user.Name)
//	render.AppendString(b, " has ")
//	render.AppendInt(b, user.Posts)
//	render.AppendString(b, " posts</p>")
//	page := b.IntoString()
//
// # Escaping
//
// Escaped output replaces ", &, <, > and ' with HTML entities. Values that
// only produce digits, signs and literals (numbers, booleans) skip the
// escaping pass; text is escaped in a single scan; other values are rendered
// into a scratch buffer and escape-copied.
//
// # Thread Safety
//
// A Buffer belongs to one render call chain and is not safe for concurrent
// use. Renderers are stateless; the Locked and Atomic wrappers only consume
// synchronization the caller already owns.
package renderruntime
