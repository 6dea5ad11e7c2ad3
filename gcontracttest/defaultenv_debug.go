//go:build debug

package gcontracttest

import "github.com/gordian-engine/gcontract"

// DefaultEnv returns an environment with every scoped check enabled.
func DefaultEnv() gcontract.Env {
	env, err := gcontract.NewEnvironment("*")
	if err != nil {
		panic(err)
	}
	env.UseCaching()
	return env
}

// NopEnv returns an environment with every scoped check disabled.
// This should generally not be used,
// but maybe it is helpful in already expensive tests.
func NopEnv() gcontract.Env {
	env, err := gcontract.NewEnvironment("")
	if err != nil {
		panic(err)
	}
	env.UseCaching()
	return env
}
