//go:build tools

// For the tools.go pattern, see:
// https://go.dev/wiki/Modules#how-can-i-track-tool-dependencies-for-a-module

package gcontract

import (
	// For stringer, used by the Kind go:generate directive.
	_ "golang.org/x/tools/cmd/stringer"
)
