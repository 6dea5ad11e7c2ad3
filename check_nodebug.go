//go:build !debug

package gcontract

// Without the debug build tag, every check compiles to an empty body.
// Predicates are never invoked, Valid is never called,
// and ExpectPanic does not execute its function,
// so conditions must not rely on side effects.

// Requires asserts a precondition.
// It is a no-op in builds without the debug tag; cond is not evaluated.
func Requires(cond func() bool, format string, args ...any) {}

// Ensures asserts a postcondition.
// It is a no-op in builds without the debug tag; cond is not evaluated.
func Ensures(cond func() bool, format string, args ...any) {}

// Validate asserts that obj's invariants hold.
// It is a no-op in builds without the debug tag; obj.Valid is not called.
func Validate(obj Validator) {}

// ExpectPanic asserts that fn panics with a value matching E.
// It is a no-op in builds without the debug tag; fn is not executed.
func ExpectPanic[E any](fn func()) {}
