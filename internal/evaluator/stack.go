package evaluator

import "github.com/mira-lang/mira/internal/values"

// VariableStack is a stack of scopes mapping names to shared value
// cells. find_variable (Find) searches from innermost outward; missing
// is a fatal runtime error, raised by the caller. The stack is never
// empty: popping the last remaining scope immediately pushes a fresh
// empty one, so lookup can always dereference the top without a
// special case.
type VariableStack struct {
	scopes []map[string]*values.Cell
}

// NewVariableStack creates a stack with a single, outermost scope.
func NewVariableStack() *VariableStack {
	return &VariableStack{scopes: []map[string]*values.Cell{{}}}
}

// Push allocates a fresh scope frame — used once per function
// activation (see §4.3's call convention).
func (s *VariableStack) Push() {
	s.scopes = append(s.scopes, map[string]*values.Cell{})
}

// Pop releases the innermost scope frame. Scope exit must occur on all
// paths, including error paths, from the operation that pushed it —
// callers pair Push with `defer stack.Pop()`.
func (s *VariableStack) Pop() {
	s.scopes = s.scopes[:len(s.scopes)-1]
	if len(s.scopes) == 0 {
		s.scopes = append(s.scopes, map[string]*values.Cell{})
	}
}

// Bind installs cell under name in the innermost scope.
func (s *VariableStack) Bind(name string, cell *values.Cell) {
	s.scopes[len(s.scopes)-1][name] = cell
}

// BindModule installs cell under name in the outermost (module) scope.
// Module evaluation never pushes a scope of its own, so this and Bind
// coincide there; it's named separately so call-site intent is clear.
func (s *VariableStack) BindModule(name string, cell *values.Cell) {
	s.scopes[0][name] = cell
}

// Find searches from the innermost scope outward.
func (s *VariableStack) Find(name string) (*values.Cell, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if cell, ok := s.scopes[i][name]; ok {
			return cell, true
		}
	}
	return nil, false
}

// Depth reports how many scope frames are live — exposed for tests that
// assert the "stack never empty" and "caller's stack unchanged after a
// call returns" invariants.
func (s *VariableStack) Depth() int {
	return len(s.scopes)
}
