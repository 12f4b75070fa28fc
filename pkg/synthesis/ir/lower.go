package ir

import (
	"github.com/go-air/gini/z"

	"github.com/operator-framework/label-synthesizer/pkg/synthesis/solver"
)

// Form selects one of the two dual encodings of a shape.
type Form int

const (
	// Disjunctive reads the top of a shape as a disjunction of
	// conjunctive clauses.
	Disjunctive Form = iota
	// Conjunctive reads the top of a shape as a conjunction of
	// disjunctive clauses.
	Conjunctive
)

func (f Form) String() string {
	if f == Conjunctive {
		return "conjunctive"
	}
	return "disjunctive"
}

func lowerAll(ns []Node, o *solver.Optimizer, form Form) []z.Lit {
	ms := make([]z.Lit, len(ns))
	for i, n := range ns {
		ms[i] = Lower(n, o, form)
	}
	return ms
}

// childToggles returns the literals of the toggles of ns, skipping
// untoggled children.
func childToggles(ns []Node) []z.Lit {
	var ms []z.Lit
	for _, n := range ns {
		if t := n.Toggle(); t != nil {
			ms = append(ms, t.Lit())
		}
	}
	return ms
}

// guard attaches the toggle t to the atom x of a leaf. In the
// disjunctive form a disabled leaf is neutral for the enclosing
// conjunction; in the conjunctive form it is neutral for the enclosing
// disjunction.
func guard(o *solver.Optimizer, form Form, t *solver.Bool, x z.Lit) z.Lit {
	if t == nil {
		return x
	}
	if form == Conjunctive {
		return o.And(t.Lit(), x)
	}
	return o.Implies(t.Lit(), x)
}

// Lower returns a literal equivalent to the reified node n in the given
// form. Lowering a node that still refers to variables records an
// *InvariantError on o and returns the null literal.
func Lower(n Node, o *solver.Optimizer, form Form) z.Lit {
	switch n := n.(type) {
	case Or:
		some := o.Or(lowerAll(n.Children, o, form)...)
		switch {
		case n.T != nil && form == Conjunctive:
			return o.And(n.T.Lit(), some)
		case n.T != nil:
			return o.Implies(n.T.Lit(), some)
		case form == Conjunctive:
			// A clause without enabled terms places no constraint.
			return o.Or(o.Or(childToggles(n.Children)...).Not(), some)
		}
		return some
	case And:
		all := o.And(lowerAll(n.Children, o, form)...)
		switch {
		case n.T != nil && form == Conjunctive:
			return o.And(n.T.Lit(), all)
		case n.T != nil:
			return o.Implies(n.T.Lit(), all)
		case form == Disjunctive:
			// A clause without enabled terms holds for nothing.
			return o.And(o.Or(childToggles(n.Children)...), all)
		}
		return all
	case Boolean:
		x := o.False()
		if n.Value {
			x = o.True()
		}
		return guard(o, form, n.T, x)
	case Geq:
		return guard(o, form, n.T, o.AtMost(n.Threshold, n.Value))
	case ColorApplied:
		return guard(o, form, n.T, lowerColor(n, o))
	case nil:
		return o.Fail(&InvariantError{Kind: Unreified, Detail: "lowered an empty node"})
	}
	return o.Fail(&InvariantError{Kind: Unreified, Node: n})
}

// lowerColor relies on Radius taking only the values it reports: for
// each of them, the observed color is accepted when the radius reaches
// that value and every channel is within it.
func lowerColor(n ColorApplied, o *solver.Optimizer) z.Lit {
	values := n.Radius.Values()
	ms := make([]z.Lit, len(values))
	for i, r := range values {
		ms[i] = o.And(
			o.AtLeast(n.Radius, r),
			within(o, n.Center.Y, n.Observed.Y, r),
			within(o, n.Center.U, n.Observed.U, r),
			within(o, n.Center.V, n.Observed.V, r),
		)
	}
	return o.Or(ms...)
}

// within encodes one channel of color.Within with the same arithmetic.
func within(o *solver.Optimizer, center *solver.Real, v, r float64) z.Lit {
	return o.And(o.AtLeast(center, v-r), o.AtMost(center, v+r))
}
