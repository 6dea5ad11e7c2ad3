// Package gcontract (Gordian contract) provides design-by-contract checks:
// preconditions, postconditions, object invariants, and panic expectations.
//
// Contract checking is assumed to be too expensive for production builds,
// so none of it is compiled in by default.
// All behavior is decided at compile time through two build tags:
//
//   - Without the "debug" build tag, every check compiles to an empty
//     function body. Condition predicates are never invoked and
//     [Validator.Valid] is never called, so conditions must not rely
//     on side effects.
//   - With "go build -tags debug", checks are compiled in and a failed
//     check writes "*** assertion failed at file:line" plus the failure
//     message to stderr and terminates the process.
//   - With "go build -tags debug,exdebug", a failed check instead panics
//     with a [Violation], leaving the process alive so an enclosing frame
//     (typically a test harness) can recover it. The exdebug tag has no
//     effect without the debug tag.
//
// Every [Violation] wraps the [ErrViolated] category error,
// so a handler that only cares that some contract failed can match it
// with errors.Is regardless of which check fired.
//
// Compile-time branching around contract-only code uses the [Enabled]
// constant together with [IfDebug], [IfNotDebug], and [IfElseDebug];
// exactly one branch survives in the compiled output.
//
// Even in debug builds, validating every invariant at every entrypoint
// of a long-running system can be prohibitively expensive.
// The [Environment] type scopes such checks by dot-separated path,
// in the same way per-package log filters work:
// call sites guard expensive checks with [*Environment.Enabled]
// or run them through [*Environment.Check],
// and operators select which paths are active via [NewEnvironment]
// or [ParseEnvironment] rule sets.
// No rules are enabled by default; "*" enables everything;
// "foo.*" enables a subtree; "!foo.bar" carves an exact path
// out of a wildcard match.
package gcontract
