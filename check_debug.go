//go:build debug

package gcontract

import (
	"fmt"
	"reflect"
	"runtime"
)

// Requires asserts a precondition:
// a condition the caller of the enclosing function must have established.
// The condition is a closure so that in builds without the debug tag,
// it is never evaluated at all.
//
// On failure, format and args become the violation message,
// which is reported according to the compiled failure mode
// (stderr and process termination by default,
// a recoverable [Violation] panic under the exdebug tag).
func Requires(cond func() bool, format string, args ...any) {
	if cond() {
		return
	}
	file, line := caller(1)
	fail(Violation{
		Kind:    KindPrecondition,
		File:    file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// Ensures asserts a postcondition:
// a condition the enclosing function guarantees to its caller.
// It behaves identically to [Requires] apart from the reported kind.
func Ensures(cond func() bool, format string, args ...any) {
	if cond() {
		return
	}
	file, line := caller(1)
	fail(Violation{
		Kind:    KindPostcondition,
		File:    file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// Validate asserts that obj's invariants hold,
// as reported by its [Validator.Valid] method.
func Validate(obj Validator) {
	if obj.Valid() {
		return
	}
	file, line := caller(1)
	fail(Violation{
		Kind:    KindInvariant,
		File:    file,
		Line:    line,
		Message: fmt.Sprintf("%T reported itself invalid", obj),
	})
}

// ExpectPanic runs fn and asserts that it panics with a value
// whose type is assignable to E.
// E may be a concrete type or an interface.
//
// A normal return from fn, or a panic whose value does not match E,
// is a contract violation.
// The two cases are deliberately reported under the same kind,
// differing only in message.
//
// In builds without the debug tag, fn is not executed,
// so callers must not depend on its side effects.
func ExpectPanic[E any](fn func()) {
	file, line := caller(1)
	// Equivalent to reflect.TypeFor[E](), which needs Go 1.22+;
	// spelled out so the module still builds with Go 1.21.
	expected := reflect.TypeOf((*E)(nil)).Elem()

	panicked := true
	defer func() {
		if !panicked {
			fail(Violation{
				Kind:    KindPanicExpectation,
				File:    file,
				Line:    line,
				Message: fmt.Sprintf("no panic has been raised (expected: %s)", expected),
			})
			return
		}

		if _, ok := recover().(E); ok {
			return
		}
		fail(Violation{
			Kind:    KindPanicExpectation,
			File:    file,
			Line:    line,
			Message: fmt.Sprintf("an unexpected panic has been raised (expected: %s)", expected),
		})
	}()

	fn()
	panicked = false
}

// caller resolves the file and line of the check's call site.
// skip counts frames above the exported check function.
func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???", 0
	}
	return file, line
}
