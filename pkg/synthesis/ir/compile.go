package ir

import (
	"fmt"

	"github.com/operator-framework/label-synthesizer/pkg/color"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ast"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/solver"
)

// Weight returns the cost of enabling n.
func Weight(n Node) int {
	switch n := n.(type) {
	case LabelIs:
		if n.Negated {
			return 2
		}
		return 1
	case EqualLabel:
		if n.Negated {
			return 3
		}
		return 2
	case ColorComparison, ColorApplied:
		return 4
	}
	return 1
}

// WeightedToggle pairs a toggle with the cost of enabling it.
type WeightedToggle struct {
	Toggle *solver.Bool
	Weight int
}

// Objective returns every toggle of n with its weight, in preorder. A
// toggle reachable along several paths, such as the body shared by the
// quantifiers of a clause, is listed once.
func Objective(n Node) []WeightedToggle {
	c := collector{seen: make(map[*solver.Bool]struct{})}
	c.collect(n)
	return c.toggles
}

type collector struct {
	seen    map[*solver.Bool]struct{}
	toggles []WeightedToggle
}

func (c *collector) collect(n Node) {
	if n == nil {
		return
	}
	if t := n.Toggle(); t != nil {
		if _, ok := c.seen[t]; ok {
			return
		}
		c.seen[t] = struct{}{}
		c.toggles = append(c.toggles, WeightedToggle{Toggle: t, Weight: Weight(n)})
	}
	switch n := n.(type) {
	case Or:
		for _, child := range n.Children {
			c.collect(child)
		}
	case And:
		for _, child := range n.Children {
			c.collect(child)
		}
	case Any:
		c.collect(n.Body)
	case All:
		c.collect(n.Body)
	}
}

// Cost returns the total weight of the toggles of n enabled in m.
func Cost(n Node, m solver.Model) int {
	cost := 0
	for _, wt := range Objective(n) {
		if m.Bool(wt.Toggle) {
			cost += wt.Weight
		}
	}
	return cost
}

func enabled(n Node, m solver.Model) bool {
	t := n.Toggle()
	return t == nil || m.Bool(t)
}

func compileAll(ns []Node, m solver.Model) ([]ast.BoolExpr, error) {
	var result []ast.BoolExpr
	for _, n := range ns {
		e, err := Compile(n, m)
		if err != nil {
			return nil, err
		}
		if e != nil {
			result = append(result, e)
		}
	}
	return result, nil
}

func negate(e ast.BoolExpr, negated bool) ast.BoolExpr {
	if negated {
		return ast.Not{Inner: e}
	}
	return e
}

// Compile reconstructs the predicate selected by m from the unreified
// node n. It returns nil when n contributes nothing: its toggle is
// disabled, or all of its children compile to nothing.
func Compile(n Node, m solver.Model) (ast.BoolExpr, error) {
	switch n := n.(type) {
	case Boolean, Geq, ColorApplied:
		return nil, &InvariantError{Kind: Uncompilable, Node: n, Detail: "reified nodes have no surface form"}
	case nil:
		return nil, &InvariantError{Kind: Uncompilable, Detail: "compiled an empty node"}
	}
	if !enabled(n, m) {
		return nil, nil
	}

	switch n := n.(type) {
	case Or:
		cs, err := compileAll(n.Children, m)
		return ast.Ors(cs...), err
	case And:
		cs, err := compileAll(n.Children, m)
		return ast.Ands(cs...), err
	case Any:
		body, err := Compile(n.Body, m)
		if err != nil || body == nil {
			return nil, err
		}
		return ast.Exists{Var: n.Var, Body: body}, nil
	case All:
		body, err := Compile(n.Body, m)
		if err != nil || body == nil {
			return nil, err
		}
		return ast.Forall{Var: n.Var, Body: body}, nil
	case LabelIs:
		return negate(ast.LabelIs{Var: n.Var, Label: n.Label}, n.Negated), nil
	case EqualLabel:
		return negate(ast.EqualLabel{A: n.A, B: n.B}, n.Negated), nil
	case IOU:
		return ast.IOU{A: n.A, B: n.B, Threshold: m.Real(n.Threshold)}, nil
	case Containment:
		return ast.Containment{Container: n.Container, Contained: n.Contained, Threshold: m.Real(n.Threshold)}, nil
	case Left:
		return ast.Left{A: n.A, B: n.B}, nil
	case Right:
		return ast.Right{A: n.A, B: n.B}, nil
	case Above:
		return ast.Above{A: n.A, B: n.B}, nil
	case Below:
		return ast.Below{A: n.A, B: n.B}, nil
	case ColorComparison:
		if n.Center.Y == nil || n.Center.U == nil || n.Center.V == nil {
			return nil, &InvariantError{Kind: Uncompilable, Node: n, Detail: "color center without channels"}
		}
		center := color.YUV{Y: m.Real(n.Center.Y), U: m.Real(n.Center.U), V: m.Real(n.Center.V)}
		return ast.ColorComparison{Obj: n.Var, Color: center, Threshold: m.Real(n.Radius)}, nil
	}
	return nil, fmt.Errorf("unknown node %T", n)
}
