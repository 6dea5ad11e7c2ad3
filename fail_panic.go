//go:build debug && exdebug

package gcontract

// fail raises v as a panic so an enclosing frame can recover it.
// This keeps the process alive for test harnesses
// asserting that a contract violation actually fired.
func fail(v Violation) {
	panic(v)
}
