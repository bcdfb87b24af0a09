package checker

import "github.com/mira-lang/mira/internal/typesystem"

// VariableManager is a scoped symbol table used during verification: a
// stack of name->type maps. A lambda body is checked against a brand
// new, disconnected VariableManager (see checker.checkLambdaNamed)
// rather than a layer pushed onto the enclosing one, so a function's
// scope never reaches past its declared parameters, closure captures
// and self_fn/selfName — mirroring evaluator.NewVariableStack()'s own
// per-activation isolation.
type VariableManager struct {
	scopes []map[string]typesystem.VariableType
}

// NewVariableManager creates a manager with a single, outermost scope.
func NewVariableManager() *VariableManager {
	return &VariableManager{scopes: []map[string]typesystem.VariableType{{}}}
}

// Bind binds name in the innermost scope.
func (m *VariableManager) Bind(name string, vtype typesystem.VariableType) {
	m.scopes[len(m.scopes)-1][name] = vtype
}

// BindOutermost binds name in the outermost (module) scope, regardless
// of which scope is currently innermost. Used by verify to make each
// module-level binding visible to every later definition.
func (m *VariableManager) BindOutermost(name string, vtype typesystem.VariableType) {
	m.scopes[0][name] = vtype
}

// Lookup searches from innermost scope outward.
func (m *VariableManager) Lookup(name string) (typesystem.VariableType, bool) {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if vt, ok := m.scopes[i][name]; ok {
			return vt, true
		}
	}
	return typesystem.VariableType{}, false
}
