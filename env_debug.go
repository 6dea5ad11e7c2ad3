//go:build debug

package gcontract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Env is an alias to the Environment type.
// This allows consumers to have a field of type Env
// which is an empty struct in non-debug builds
// and is a pointer to a proper environment in debug builds.
type Env = *Environment

// Environment holds the set of rules deciding which scoped contract
// checks are active at runtime, within a debug build.
//
// Checks are identified by dot-separated paths such as
// "engine.mirror.kernel.replayed_response".
// A rule is an exact path, a subtree wildcard ("engine.mirror.*"),
// the global wildcard ("*"), or an exclusion ("!engine.mirror.slow_check")
// carving an exact path out of a wildcard match.
//
// Methods on Environment are safe for concurrent use,
// except UseCaching and OnlyLogFailures,
// which must be called before any other methods, if called at all.
type Environment struct {
	rules []envRule

	// Memoized Enabled results, guarded by mu.
	// Nil means caching is disabled.
	mu    sync.RWMutex
	cache map[string]bool

	// Nil means violations routed through the environment panic.
	// OnlyLogFailures sets this to log them instead.
	log *slog.Logger
}

type envRule struct {
	parts []string

	// Rule ended in ".*", or was the bare "*"
	// (in which case parts is empty).
	wildcard bool

	// Rule began with "!".
	exclude bool
}

// NewEnvironment parses a comma-separated list of rules.
func NewEnvironment(rules string) (*Environment, error) {
	var e Environment
	if rules == "" {
		// Splitting the empty string would yield one empty rule
		// and therefore an error, so treat it as "no rules".
		return &e, nil
	}

	for _, r := range strings.Split(rules, ",") {
		if err := e.addRule(r); err != nil {
			return nil, err
		}
	}

	return &e, nil
}

// ParseEnvironment reads rules from r, one per line.
// Unlike [NewEnvironment], it allows blank lines
// and comment lines whose first character is "#".
func ParseEnvironment(r io.Reader) (*Environment, error) {
	var e Environment

	scanner := bufio.NewScanner(r)
	// Scanner buffer defaults to 64k.
	// No sane rule comes anywhere close to that,
	// so shrink the allocation.
	scanner.Buffer(make([]byte, 0, 512), 511)

	nErrs := 0
	const errLimit = 5
	var errs error
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := e.addRule(line); err != nil {
			errs = errors.Join(errs, err)
			nErrs++
			if nErrs >= errLimit {
				errs = errors.Join(errs, fmt.Errorf("stopped parsing after %d errors", nErrs))
				return nil, errs
			}
		}
	}

	// An oversized line or a failed read stops the scan early;
	// without this check the remaining rules would be silently dropped.
	if err := scanner.Err(); err != nil {
		errs = errors.Join(errs, fmt.Errorf("failed to read rules: %w", err))
	}

	if errs != nil {
		return nil, errs
	}

	return &e, nil
}

func (e *Environment) addRule(r string) error {
	if len(r) == 0 {
		return errors.New("received empty rule")
	}

	if strings.Contains(r, "..") {
		return fmt.Errorf("invalid rule %q: dot-separated sections may not be empty", r)
	}

	if strings.Contains(r, "!") {
		body, leading := strings.CutPrefix(r, "!")
		if !leading {
			return fmt.Errorf("invalid rule %q: ! may only occur at the start of the rule, indicating an exclusion", r)
		}
		if strings.Contains(body, "*") {
			// Wildcard exclusions could be supported later,
			// but the matching rules get complicated.
			return fmt.Errorf("invalid rule %q: wildcards are not allowed within exclusion rules", r)
		}
		e.rules = append(e.rules, envRule{parts: strings.Split(body, "."), exclude: true})
		return nil
	}

	switch strings.Count(r, "*") {
	case 0:
		e.rules = append(e.rules, envRule{parts: strings.Split(r, ".")})
		return nil
	case 1:
		if r == "*" {
			e.rules = append(e.rules, envRule{parts: []string{}, wildcard: true})
			return nil
		}

		prefix, trailing := strings.CutSuffix(r, ".*")
		if !trailing {
			return fmt.Errorf("invalid rule %q: * only allowed as last element of dot-separated rule", r)
		}
		e.rules = append(e.rules, envRule{parts: strings.Split(prefix, "."), wildcard: true})
		return nil
	default:
		return fmt.Errorf("invalid rule %q: may contain at most one *, and it must be at the end", r)
	}
}

// UseCaching configures e to memoize Enabled results.
// Worth it when the same handful of paths are checked in hot loops.
//
// UseCaching must be called before any concurrent use of e.
// Once caching is enabled, it may not be disabled.
func (e *Environment) UseCaching() {
	if e.cache != nil {
		panic(errors.New("BUG: UseCaching called twice"))
	}

	e.cache = make(map[string]bool)
}

// OnlyLogFailures configures e to log violations routed through it
// at Error level to the given logger,
// instead of the default behavior of panicking.
// This suits long-running debug processes
// that should record violations without dying on the first one.
//
// OnlyLogFailures must be called before any concurrent use of e.
// Once failure logging is enabled, it may not be disabled.
func (e *Environment) OnlyLogFailures(log *slog.Logger) {
	e.log = log
}

// Enabled reports whether the scoped check identified by path is active.
//
// A wildcard rule matching a strict prefix of path enables it,
// unless an exclusion rule matches path exactly.
// Otherwise path is enabled only by an exact rule.
// Note that "foo.*" does not enable "foo" itself.
func (e *Environment) Enabled(path string) bool {
	if len(e.rules) == 0 {
		return false
	}

	if e.cache == nil {
		return e.evaluate(path)
	}

	e.mu.RLock()
	val, ok := e.cache[path]
	e.mu.RUnlock()
	if ok {
		return val
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Another goroutine may have stored the same path
	// between the read unlock and the write lock.
	if val, ok := e.cache[path]; ok {
		return val
	}

	val = e.evaluate(path)
	e.cache[path] = val
	return val
}

// evaluate applies the rules to path without consulting the cache.
func (e *Environment) evaluate(path string) bool {
	parts := strings.Split(path, ".")

	wildcardMatch := false
	for _, r := range e.rules {
		if !r.wildcard || r.exclude {
			continue
		}
		if len(r.parts) < len(parts) && slices.Equal(r.parts, parts[:len(r.parts)]) {
			wildcardMatch = true
			break
		}
	}

	if wildcardMatch {
		// Exclusions are exact negative matches carved out of wildcards.
		for _, r := range e.rules {
			if r.exclude && slices.Equal(r.parts, parts) {
				return false
			}
		}
		return true
	}

	for _, r := range e.rules {
		if !r.exclude && !r.wildcard && slices.Equal(r.parts, parts) {
			return true
		}
	}

	return false
}

// Check runs a scoped contract check.
// It does nothing unless path is enabled in e;
// in particular, cond is not evaluated for disabled paths.
// On a false condition, the resulting [Violation] is routed
// through [*Environment.HandleViolation].
func (e *Environment) Check(path string, kind Kind, cond func() bool, format string, args ...any) {
	if !e.Enabled(path) {
		return
	}
	if cond() {
		return
	}

	file, line := caller(1)
	e.HandleViolation(Violation{
		Kind:    kind,
		File:    file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// HandleViolation reports a violation detected by a scoped check.
// The default behavior is to panic with v,
// which remains catchable by category through [ErrViolated].
// If OnlyLogFailures was called, v is logged instead.
//
// Call sites that assemble their own Violation
// (for instance invariant helpers guarded by Enabled)
// should route it through HandleViolation
// rather than panicking directly.
func (e *Environment) HandleViolation(v Violation) {
	if e.log == nil {
		panic(v)
	}

	e.log.Error("Contract violation",
		"kind", v.Kind.String(),
		"file", v.File,
		"line", v.Line,
		"message", v.Message,
	)
}
