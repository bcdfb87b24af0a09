// Package runenv is the embedding surface: RunEnv accumulates modules
// (parse, verify, evaluate, bind) and lets a host run ad-hoc
// expressions against the result, the way pkg/embed's VM wraps the
// pipeline for a host program in the teacher's own layering.
package runenv

import (
	"github.com/google/uuid"

	"github.com/mira-lang/mira/internal/checker"
	"github.com/mira-lang/mira/internal/evaluator"
	"github.com/mira-lang/mira/internal/parser"
	"github.com/mira-lang/mira/internal/typesystem"
	"github.com/mira-lang/mira/internal/values"
)

// TraceEntry records one ParseAndAdd call, correlated by the module's
// ID, for host-side observability (e.g. attaching a module's bindings
// to a request log by UUID).
type TraceEntry struct {
	ModuleID   uuid.UUID
	Name       string
	BoundNames []string
}

// RunEnv is a running instance of the language: a symbol table for
// checking, a variable stack for evaluation, and the value backend both
// are built against. Modules and expressions added later can reference
// names bound by anything added earlier.
type RunEnv struct {
	backend values.Backend
	vm      *checker.VariableManager
	stack   *evaluator.VariableStack
	trace   []TraceEntry
}

// New creates an empty RunEnv over the Basic value backend.
func New() *RunEnv {
	return &RunEnv{
		backend: values.Basic{},
		vm:      checker.NewVariableManager(),
		stack:   evaluator.NewVariableStack(),
	}
}

// ParseAndAdd parses source as a module, verifies it against the
// environment accumulated so far, evaluates it, and binds its top-level
// definitions into the environment. name labels the resulting
// TraceEntry; it need not be unique.
func (r *RunEnv) ParseAndAdd(name, source string) error {
	unverified, err := parser.Parse(source)
	if err != nil {
		return err
	}
	unverified.ID = uuid.New()
	verified, err := checker.VerifyIn(unverified, r.vm)
	if err != nil {
		return err
	}
	if err := evaluator.EvalModule(verified, r.stack, r.backend); err != nil {
		return err
	}

	bound := make([]string, len(verified.Variables))
	for i, v := range verified.Variables {
		bound[i] = v.Name
	}
	r.trace = append(r.trace, TraceEntry{ModuleID: verified.ID, Name: name, BoundNames: bound})
	return nil
}

// FindVariable looks up a name bound by any module added so far.
func (r *RunEnv) FindVariable(name string) (*values.Cell, bool) {
	return r.stack.Find(name)
}

// Run type-checks and evaluates a standalone expression — not wrapped
// in a `let` — against the environment accumulated so far. It does not
// bind anything new.
func (r *RunEnv) Run(expressionSource string) (typesystem.VariableType, *values.Cell, error) {
	expr, err := parser.ParseExpr(expressionSource)
	if err != nil {
		return typesystem.VariableType{}, nil, err
	}
	vtype, err := checker.CheckExpr(expr, r.vm)
	if err != nil {
		return typesystem.VariableType{}, nil, err
	}
	cell, err := evaluator.EvalExpr(expr, r.stack, r.backend, 0)
	if err != nil {
		return typesystem.VariableType{}, nil, err
	}
	return vtype, cell, nil
}

// Trace returns one TraceEntry per successful ParseAndAdd call, in
// call order.
func (r *RunEnv) Trace() []TraceEntry {
	out := make([]TraceEntry, len(r.trace))
	copy(out, r.trace)
	return out
}
