//go:build !debug

package gcontracttest

import "github.com/gordian-engine/gcontract"

// DefaultEnv returns the no-op Env, in non-debug builds.
func DefaultEnv() gcontract.Env {
	return gcontract.Env{}
}

// NopEnv returns the no-op Env.
// This should generally not be used,
// but maybe it is helpful in already expensive tests,
// when debug builds are enabled.
func NopEnv() gcontract.Env {
	return gcontract.Env{}
}
