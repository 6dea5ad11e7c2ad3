//go:build !debug

package gcontract

// Env is the scoped-check environment handle.
//
// Long-lived types that support scoped contract checks
// should always carry a gcontract.Env.
// In non-debug builds, Env is an empty struct so as to not consume
// any memory.
// In debug builds, Env is a type alias to *Environment
// (a type which is only compiled into debug builds).
//
// The non-debug Env deliberately has no methods.
// Code depending on the environment should itself be guarded
// behind the debug build tag.
type Env struct{}
