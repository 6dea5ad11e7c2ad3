package gcontract

// Kind identifies which contract operation produced a [Violation].
type Kind uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type Kind -trimprefix Kind

const (
	// KindPrecondition is a failed [Requires] check.
	KindPrecondition Kind = iota

	// KindPostcondition is a failed [Ensures] check.
	KindPostcondition

	// KindInvariant is a failed [Validate] check.
	KindInvariant

	// KindPanicExpectation is a failed [ExpectPanic] check.
	KindPanicExpectation
)
