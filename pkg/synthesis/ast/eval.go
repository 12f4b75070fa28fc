package ast

import (
	"fmt"

	"github.com/operator-framework/label-synthesizer/pkg/color"
	"github.com/operator-framework/label-synthesizer/pkg/example"
	"github.com/operator-framework/label-synthesizer/pkg/geometry"
)

// Bindings maps variables to the boxes they are bound to while a
// predicate is evaluated.
type Bindings map[ObjectVariable]geometry.Box

// Bind returns a copy of the receiver with v bound to b.
func (bs Bindings) Bind(v ObjectVariable, b geometry.Box) Bindings {
	result := make(Bindings, len(bs)+1)
	for k, x := range bs {
		result[k] = x
	}
	result[v] = b
	return result
}

func (bs Bindings) resolve(o ObjectExpr) (geometry.Box, error) {
	v, ok := o.(ObjectVariable)
	if !ok {
		return geometry.Box{}, fmt.Errorf("cannot resolve %s to an object", o)
	}
	b, ok := bs[v]
	if !ok {
		return geometry.Box{}, fmt.Errorf("variable %s is not bound", v)
	}
	return b, nil
}

func (bs Bindings) resolvePair(a, b ObjectExpr) (geometry.Box, geometry.Box, error) {
	x, err := bs.resolve(a)
	if err != nil {
		return geometry.Box{}, geometry.Box{}, err
	}
	y, err := bs.resolve(b)
	if err != nil {
		return geometry.Box{}, geometry.Box{}, err
	}
	return x, y, nil
}

// Eval evaluates e against ex under the given bindings. Quantifiers range
// over every box of ex.
func Eval(e BoolExpr, bs Bindings, ex example.Example) (bool, error) {
	switch e := e.(type) {
	case True:
		return true, nil
	case False:
		return false, nil
	case LabelIs:
		b, err := bs.resolve(e.Var)
		if err != nil {
			return false, err
		}
		return ex.Base(b) == e.Label.Label, nil
	case EqualLabel:
		a, b, err := bs.resolvePair(e.A, e.B)
		if err != nil {
			return false, err
		}
		return ex.Base(a) == ex.Base(b), nil
	case Not:
		v, err := Eval(e.Inner, bs, ex)
		return !v, err
	case And:
		l, err := Eval(e.Left, bs, ex)
		if err != nil || !l {
			return false, err
		}
		return Eval(e.Right, bs, ex)
	case Or:
		l, err := Eval(e.Left, bs, ex)
		if err != nil || l {
			return l, err
		}
		return Eval(e.Right, bs, ex)
	case Exists:
		for _, b := range ex.Boxes() {
			v, err := Eval(e.Body, bs.Bind(e.Var, b), ex)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil
	case Forall:
		for _, b := range ex.Boxes() {
			v, err := Eval(e.Body, bs.Bind(e.Var, b), ex)
			if err != nil {
				return false, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil
	case Left:
		a, b, err := bs.resolvePair(e.A, e.B)
		return err == nil && a.CenterX() <= b.CenterX(), err
	case Right:
		a, b, err := bs.resolvePair(e.A, e.B)
		return err == nil && a.CenterX() >= b.CenterX(), err
	case Above:
		a, b, err := bs.resolvePair(e.A, e.B)
		return err == nil && a.CenterY() <= b.CenterY(), err
	case Below:
		a, b, err := bs.resolvePair(e.A, e.B)
		return err == nil && a.CenterY() >= b.CenterY(), err
	case IOU:
		a, b, err := bs.resolvePair(e.A, e.B)
		return err == nil && a.IOU(b) >= e.Threshold, err
	case Containment:
		a, b, err := bs.resolvePair(e.Container, e.Contained)
		return err == nil && a.ContainmentFraction(b) >= e.Threshold, err
	case ColorComparison:
		b, err := bs.resolve(e.Obj)
		if err != nil {
			return false, err
		}
		return color.Within(ex.AverageColor(b), e.Color, e.Threshold), nil
	case nil:
		return false, fmt.Errorf("cannot evaluate an empty predicate")
	}
	return false, fmt.Errorf("unknown predicate %T", e)
}

// Select returns the boxes of ex chosen by l, in the order of ex.Boxes().
func Select(l ObjectList, ex example.Example) ([]geometry.Box, error) {
	switch l := l.(type) {
	case AllObjects:
		return ex.Boxes(), nil
	case Filter:
		candidates, err := Select(l.Objects, ex)
		if err != nil {
			return nil, err
		}
		var result []geometry.Box
		for _, b := range candidates {
			ok, err := Eval(l.Predicate.Body, Bindings{l.Predicate.Var: b}, ex)
			if err != nil {
				return nil, err
			}
			if ok {
				result = append(result, b)
			}
		}
		return result, nil
	}
	return nil, fmt.Errorf("unknown object list %T", l)
}
