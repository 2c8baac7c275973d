// Package check runs static pre-execution validations over script text.
//
// Checks are advisory heuristics (a known-incompatible import, a forbidden
// output directive). They inspect the whole script text and nothing else:
// no file system, no network, no execution. A failing fold rejects the
// script before any process is spawned.
package check

import (
	"strings"

	"go.uber.org/multierr"
)

// Check is a single validation over raw script text.
type Check func(script string) Result

// Result is the outcome of one check, or of a fold of checks.
// The zero value is Passed.
type Result struct {
	err error
}

// Passed is the identity of the combine operator.
var Passed = Result{}

// Failed returns a failing result carrying message.
func Failed(message string) Result {
	return Result{err: failure(message)}
}

// OK reports whether the result is a pass.
func (r Result) OK() bool { return r.err == nil }

// Message returns the accumulated failure text, one message per line.
// Empty for a passing result.
func (r Result) Message() string {
	if r.err == nil {
		return ""
	}
	parts := multierr.Errors(r.err)
	msgs := make([]string, len(parts))
	for i, e := range parts {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// And combines two results. Passed is the identity; two failures accumulate
// their messages in order; a failure absorbs any subsequent pass.
func (r Result) And(other Result) Result {
	return Result{err: multierr.Append(r.err, other.err)}
}

// Fold runs every check against the script unconditionally and combines the
// results under And, starting from Passed. Message accumulation order is the
// order of checks.
func Fold(checks []Check, script string) Result {
	acc := Passed
	for _, c := range checks {
		acc = acc.And(c(script))
	}
	return acc
}

// failure is a plain message error. Distinct type so check failures are
// never confused with environment errors.
type failure string

func (f failure) Error() string { return string(f) }
