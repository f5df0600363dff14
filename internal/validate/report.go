// Package validate implements the template-output validation engine: the
// structural rule set mapping a feature vector to path obligations, content
// checks against specific generated files, and the format/remnant scanners.
//
// The engine never prints and never mutates the generated tree. Each check
// returns a Report; callers merge and render them.
package validate

import "fmt"

// Report accumulates errors and their diagnostics for one validation pass.
// Checks never short-circuit: a single pass reports every violation.
type Report struct {
	Errors      int
	Diagnostics []string
}

// Errorf records one error with a formatted diagnostic.
func (r *Report) Errorf(format string, args ...any) {
	r.Errors++
	r.Diagnostics = append(r.Diagnostics, fmt.Sprintf(format, args...))
}

// Merge appends another report's errors and diagnostics, preserving order.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors += other.Errors
	r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
}

// Passed reports whether the pass accumulated zero errors.
func (r *Report) Passed() bool {
	return r.Errors == 0
}
