package ir

import (
	"fmt"

	"github.com/operator-framework/label-synthesizer/pkg/example"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ast"
)

func unbound(n Node, v ast.ObjectVariable) error {
	return &InvariantError{Kind: UnboundVariable, Node: n, Detail: fmt.Sprintf("%s is not bound", v)}
}

func lookupPair(n Node, env Env, a, b ast.ObjectVariable) (Binding, Binding, error) {
	x, ok := env.Lookup(a)
	if !ok {
		return Binding{}, Binding{}, unbound(n, a)
	}
	y, ok := env.Lookup(b)
	if !ok {
		return Binding{}, Binding{}, unbound(n, b)
	}
	return x, y, nil
}

func applyAll(ns []Node, env Env, ex example.Example) ([]Node, error) {
	result := make([]Node, len(ns))
	for i, n := range ns {
		a, err := Apply(n, env, ex)
		if err != nil {
			return nil, err
		}
		result[i] = a
	}
	return result, nil
}

func unroll(body Node, v ast.ObjectVariable, env Env, ex example.Example) ([]Node, error) {
	boxes := ex.Boxes()
	result := make([]Node, len(boxes))
	for i, b := range boxes {
		a, err := Apply(body, env.Bind(v, Binding{Box: b, Label: ex.Base(b)}), ex)
		if err != nil {
			return nil, err
		}
		result[i] = a
	}
	return result, nil
}

// Apply reifies n against one example: variable references are replaced
// by the bindings of env and quantifiers are unrolled into one branch per
// object of ex. Toggles and unknowns are shared with n. Applying an
// already reified node returns it unchanged.
func Apply(n Node, env Env, ex example.Example) (Node, error) {
	switch n := n.(type) {
	case Or:
		cs, err := applyAll(n.Children, env, ex)
		if err != nil {
			return nil, err
		}
		return Or{T: n.T, Children: cs}, nil
	case And:
		cs, err := applyAll(n.Children, env, ex)
		if err != nil {
			return nil, err
		}
		return And{T: n.T, Children: cs}, nil
	case Any:
		cs, err := unroll(n.Body, n.Var, env, ex)
		if err != nil {
			return nil, err
		}
		return Or{T: n.T, Children: cs}, nil
	case All:
		cs, err := unroll(n.Body, n.Var, env, ex)
		if err != nil {
			return nil, err
		}
		return And{T: n.T, Children: cs}, nil
	case Boolean, Geq, ColorApplied:
		return n, nil
	case LabelIs:
		b, ok := env.Lookup(n.Var)
		if !ok {
			return nil, unbound(n, n.Var)
		}
		return Boolean{T: n.T, Value: (b.Label == n.Label.Label) != n.Negated}, nil
	case EqualLabel:
		a, b, err := lookupPair(n, env, n.A, n.B)
		if err != nil {
			return nil, err
		}
		return Boolean{T: n.T, Value: (a.Label == b.Label) != n.Negated}, nil
	case IOU:
		a, b, err := lookupPair(n, env, n.A, n.B)
		if err != nil {
			return nil, err
		}
		return Geq{T: n.T, Value: a.Box.IOU(b.Box), Threshold: n.Threshold}, nil
	case Containment:
		a, b, err := lookupPair(n, env, n.Container, n.Contained)
		if err != nil {
			return nil, err
		}
		return Geq{T: n.T, Value: a.Box.ContainmentFraction(b.Box), Threshold: n.Threshold}, nil
	case Left:
		a, b, err := lookupPair(n, env, n.A, n.B)
		if err != nil {
			return nil, err
		}
		return Boolean{T: n.T, Value: a.Box.CenterX() <= b.Box.CenterX()}, nil
	case Right:
		a, b, err := lookupPair(n, env, n.A, n.B)
		if err != nil {
			return nil, err
		}
		return Boolean{T: n.T, Value: a.Box.CenterX() >= b.Box.CenterX()}, nil
	case Above:
		a, b, err := lookupPair(n, env, n.A, n.B)
		if err != nil {
			return nil, err
		}
		return Boolean{T: n.T, Value: a.Box.CenterY() <= b.Box.CenterY()}, nil
	case Below:
		a, b, err := lookupPair(n, env, n.A, n.B)
		if err != nil {
			return nil, err
		}
		return Boolean{T: n.T, Value: a.Box.CenterY() >= b.Box.CenterY()}, nil
	case ColorComparison:
		b, ok := env.Lookup(n.Var)
		if !ok {
			return nil, unbound(n, n.Var)
		}
		return ColorApplied{
			T:        n.T,
			Observed: ex.AverageColor(b.Box),
			Center:   n.Center,
			Radius:   n.Radius,
		}, nil
	}
	return nil, fmt.Errorf("unknown node %T", n)
}
