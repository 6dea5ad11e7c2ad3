//go:build debug && exdebug

package gcontracttest

import "github.com/gordian-engine/gcontract"

// CaptureViolation runs fn and recovers the [gcontract.Violation]
// it raises, if any, reporting whether one unwound out of fn.
//
// Only available in exdebug builds,
// where contract failures panic instead of terminating the process.
// A panic with any other value is re-raised untouched.
func CaptureViolation(fn func()) (v gcontract.Violation, ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		var isViolation bool
		v, isViolation = r.(gcontract.Violation)
		if !isViolation {
			panic(r)
		}
		ok = true
	}()

	fn()
	return gcontract.Violation{}, false
}
