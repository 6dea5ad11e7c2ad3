// Package gcontracttest provides helpers for tests exercising code
// that uses the gcontract package:
// canned environments matching the current build tags,
// and violation capture for exdebug builds.
package gcontracttest
