//go:build !debug

package gcontract

// Enabled reports at compile time whether contract checking is built in.
// Because it is a constant, blocks guarded by it are removed entirely
// from builds where it is false.
const Enabled = false

// IfDebug calls fn in debug builds.
// In builds without the debug tag, IfDebug does nothing
// and fn is never called.
func IfDebug(fn func()) {}

// IfNotDebug calls fn.
// In debug builds, it does nothing.
func IfNotDebug(fn func()) {
	fn()
}

// IfElseDebug returns debugVal in debug builds and releaseVal otherwise.
// Exactly one operand is selected per build configuration.
// Note that, unlike conditionally compiled code,
// both argument expressions are still evaluated by the caller;
// for side-effecting work use [IfElseDebugFn] or [IfDebug] instead.
func IfElseDebug[T any](debugVal, releaseVal T) T {
	return releaseVal
}

// IfElseDebugFn calls debugFn in debug builds and releaseFn otherwise.
// Unlike [IfElseDebug], the unselected function is never executed,
// so this is the form to use when either branch has side effects.
func IfElseDebugFn(debugFn, releaseFn func()) {
	releaseFn()
}
