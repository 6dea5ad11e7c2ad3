package gcontract

import (
	"errors"
	"fmt"
)

// ErrViolated is the category error shared by every contract violation.
// Handlers that only care that some contract failed, not which one,
// can match with errors.Is(err, gcontract.ErrViolated).
var ErrViolated = errors.New("contract violated")

// Violation describes a failed contract check:
// which kind of contract, where the check appears in the source,
// and the human-readable text of the failed condition.
//
// In exdebug builds a Violation is the panic value raised on failure,
// so a recovering frame can inspect it directly.
type Violation struct {
	Kind Kind

	// File and Line identify the call site of the failed check,
	// not the line inside this package that detected the failure.
	File string
	Line int

	Message string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s contract violated at %s:%d: %s", v.Kind, v.File, v.Line, v.Message)
}

// Unwrap ties every Violation to the [ErrViolated] category.
func (v Violation) Unwrap() error {
	return ErrViolated
}

// Validator is the capability consulted by [Validate]:
// Valid reports whether the object's invariants currently hold.
// Implementations must be side-effect free,
// as Valid is never called in builds without the debug tag.
type Validator interface {
	Valid() bool
}
