// Package display formats values and types for diagnostics and for the
// value backend's Inspect() output.
package display

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Int renders an Int constant the way error messages and Inspect()
// output show it: grouped with thousands separators for readability,
// e.g. "1,000" rather than "1000".
func Int(v int32) string {
	return humanize.Comma(int64(v))
}

// Float renders a Float constant.
func Float(v float32) string {
	return fmt.Sprintf("%g", v)
}

// String renders a String constant, quoted.
func String(v string) string {
	return fmt.Sprintf("%q", v)
}

// Arity renders an argument/parameter count the way arity-mismatch
// errors report it, e.g. "1,000 arguments".
func Arity(n int) string {
	noun := "arguments"
	if n == 1 {
		noun = "argument"
	}
	return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), noun)
}
