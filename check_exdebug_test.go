// These tests rely on contract failures panicking rather than
// terminating the process, so they only run in exdebug builds:
// go test -tags debug,exdebug ./...

//go:build debug && exdebug

package gcontract_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/gordian-engine/gcontract"
	"github.com/gordian-engine/gcontract/gcontracttest"
	"github.com/stretchr/testify/require"
)

// account is a small Validator used across these tests.
type account struct {
	balance int
}

func (a account) Valid() bool {
	return a.balance >= 0
}

func TestRequires_exdebug(t *testing.T) {
	t.Parallel()

	_, violated := gcontracttest.CaptureViolation(func() {
		gcontract.Requires(func() bool { return true }, "never reported")
	})
	require.False(t, violated)

	v, violated := gcontracttest.CaptureViolation(func() {
		gcontract.Requires(func() bool { return false }, "balance %d must be positive", -3)
	})
	require.True(t, violated)
	require.Equal(t, gcontract.KindPrecondition, v.Kind)
	require.Equal(t, "balance -3 must be positive", v.Message)
	require.Contains(t, v.File, "check_exdebug_test.go")
	require.Positive(t, v.Line)
}

func TestEnsures_exdebug(t *testing.T) {
	t.Parallel()

	v, violated := gcontracttest.CaptureViolation(func() {
		gcontract.Ensures(func() bool { return false }, "resulting balance %d must be positive", -1)
	})
	require.True(t, violated)
	require.Equal(t, gcontract.KindPostcondition, v.Kind)
	require.Equal(t, "resulting balance -1 must be positive", v.Message)
}

func TestValidate_exdebug(t *testing.T) {
	t.Parallel()

	_, violated := gcontracttest.CaptureViolation(func() {
		gcontract.Validate(account{balance: 7})
	})
	require.False(t, violated)

	v, violated := gcontracttest.CaptureViolation(func() {
		gcontract.Validate(account{balance: -1})
	})
	require.True(t, violated)
	require.Equal(t, gcontract.KindInvariant, v.Kind)
	require.Contains(t, v.Message, "account reported itself invalid")
}

// A violation is catchable by category:
// a frame that recovers any error can match ErrViolated
// without knowing which check fired.
func TestViolation_catchByCategory_exdebug(t *testing.T) {
	t.Parallel()

	caught := func(fn func()) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = r.(error)
			}
		}()
		fn()
		return nil
	}

	err := caught(func() {
		gcontract.Requires(func() bool { return false }, "nope")
	})
	require.ErrorIs(t, err, gcontract.ErrViolated)

	var v gcontract.Violation
	require.ErrorAs(t, err, &v)
	require.Equal(t, "nope", v.Message)
}

func TestExpectPanic_matching_exdebug(t *testing.T) {
	t.Parallel()

	// Side effects up to the panic are observed exactly once.
	observed := 0
	_, violated := gcontracttest.CaptureViolation(func() {
		gcontract.ExpectPanic[*strconv.NumError](func() {
			observed++
			if _, err := strconv.Atoi("not a number"); err != nil {
				panic(err)
			}
		})
	})
	require.False(t, violated)
	require.Equal(t, 1, observed)
}

func TestExpectPanic_interfaceTarget_exdebug(t *testing.T) {
	t.Parallel()

	// An interface type parameter matches any panic value implementing it.
	_, violated := gcontracttest.CaptureViolation(func() {
		gcontract.ExpectPanic[error](func() {
			panic(errors.New("some failure"))
		})
	})
	require.False(t, violated)
}

func TestExpectPanic_noPanic_exdebug(t *testing.T) {
	t.Parallel()

	v, violated := gcontracttest.CaptureViolation(func() {
		gcontract.ExpectPanic[error](func() {})
	})
	require.True(t, violated)
	require.Equal(t, gcontract.KindPanicExpectation, v.Kind)
	require.Equal(t, "no panic has been raised (expected: error)", v.Message)
}

func TestExpectPanic_wrongType_exdebug(t *testing.T) {
	t.Parallel()

	v, violated := gcontracttest.CaptureViolation(func() {
		gcontract.ExpectPanic[*strconv.NumError](func() {
			panic("a string, not a NumError")
		})
	})
	require.True(t, violated)
	require.Equal(t, gcontract.KindPanicExpectation, v.Kind)
	require.Equal(t,
		"an unexpected panic has been raised (expected: *strconv.NumError)",
		v.Message,
	)
}

// CaptureViolation must not swallow panics that are not violations.
func TestCaptureViolation_repanicsForeignValues_exdebug(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "foreign", func() {
		gcontracttest.CaptureViolation(func() {
			panic("foreign")
		})
	})
}
