// Package langconfig holds the handful of runtime-tunable knobs for the
// core: a small set of package-level vars/consts, the same shape as the
// teacher's own config package rather than a flags/viper-style library.
package langconfig

// MaxCallDepth guards the tree-walking evaluator against runaway
// recursion (e.g. a lambda capturing itself without a base case)
// overflowing the Go call stack. Exceeding it is a runtime error, not a
// panic.
var MaxCallDepth = 10000

// SelfFnName is the reserved name both the checker and the evaluator
// bind inside a function body to the function itself, enabling
// anonymous recursion.
const SelfFnName = "self_fn"
