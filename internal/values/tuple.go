package values

import (
	"strings"

	"github.com/mira-lang/mira/internal/typesystem"
)

// TupleObj is the minimal N-ary product runtime value the evaluator
// produces for a Tuple expression (open question #3: implemented as a
// by-position product rather than left as a hard runtime error). It
// sits outside the pluggable Backend — the value backend capability set
// the spec defines covers only Int/Float/String/Bool/Func/Empty, so a
// Tuple's representation isn't swappable the way those six are.
type TupleObj struct {
	Items []*Cell
}

func (t TupleObj) Kind() Kind { return kindTuple }

func (t TupleObj) Inspect() string {
	parts := make([]string, len(t.Items))
	for i, c := range t.Items {
		parts[i] = c.Get().Inspect()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t TupleObj) RuntimeType() typesystem.Type {
	items := make([]typesystem.Type, len(t.Items))
	for i, c := range t.Items {
		items[i] = c.Get().RuntimeType()
	}
	return typesystem.TupleType{Items: items}
}

// kindTuple extends the Kind enum beyond the spec's six-variant backend,
// since Tuple is not one of the pluggable capabilities.
const kindTuple Kind = 100
