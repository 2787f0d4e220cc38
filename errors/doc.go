// Package errors provides structured error types for the render runtime.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: element path, Go type name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRender, errors.KindUnsupported).
//		Path("rows", "[3]").
//		GoType("chan int").
//		Detail("cannot render channels").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NilPointer(errors.PhaseRender, path, "*big.Int")
//	err := errors.RenderFailed(errors.PhaseTemplate, []string{"index"}, cause)
//
// Buffer capacity overflow is not returned: the buffer panics with a
// CapacityOverflow error.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
