// Package ast defines the surface form of synthesized programs: label and
// group applications over filtered object lists, with predicates written
// in a small first-order logic over the objects of one image.
//
// Trees are immutable once built. Only the leaves (literals and
// variables) are comparable; compound nodes have no structural equality.
package ast

import (
	"fmt"
	"strings"

	"github.com/operator-framework/label-synthesizer/pkg/color"
)

// ObjectLiteral names a base or precise label.
type ObjectLiteral struct {
	Label string
}

func (l ObjectLiteral) String() string {
	return fmt.Sprintf("%q", l.Label)
}

func (ObjectLiteral) isObject() {}

// GroupLiteral names a group label.
type GroupLiteral struct {
	Label string
}

func (l GroupLiteral) String() string {
	return fmt.Sprintf("%q", l.Label)
}

// ObjectVariable is a placeholder bound by a lambda or a quantifier.
type ObjectVariable struct {
	Name string
}

func (v ObjectVariable) String() string {
	return v.Name
}

func (ObjectVariable) isObject() {}

// ObjectExpr is either an ObjectLiteral or an ObjectVariable.
type ObjectExpr interface {
	fmt.Stringer
	isObject()
}

// BoolExpr is a predicate over objects. The set of implementations is
// closed.
type BoolExpr interface {
	fmt.Stringer
	isBool()
}

type True struct{}

type False struct{}

// LabelIs holds when the base label of Var is Label.
type LabelIs struct {
	Var   ObjectVariable
	Label ObjectLiteral
}

// EqualLabel holds when A and B carry the same base label.
type EqualLabel struct {
	A, B ObjectVariable
}

type Not struct {
	Inner BoolExpr
}

type And struct {
	Left, Right BoolExpr
}

type Or struct {
	Left, Right BoolExpr
}

type Exists struct {
	Var  ObjectVariable
	Body BoolExpr
}

type Forall struct {
	Var  ObjectVariable
	Body BoolExpr
}

// Left holds when the horizontal center of A is not right of B's.
type Left struct {
	A, B ObjectExpr
}

// Right holds when the horizontal center of A is not left of B's.
type Right struct {
	A, B ObjectExpr
}

// Above holds when the vertical center of A is not below B's.
type Above struct {
	A, B ObjectExpr
}

// Below holds when the vertical center of A is not above B's.
type Below struct {
	A, B ObjectExpr
}

// IOU holds when the overlap ratio of A and B is at least Threshold.
type IOU struct {
	A, B      ObjectExpr
	Threshold float64
}

// Containment holds when at least Threshold of Contained's area lies
// inside Container.
type Containment struct {
	Container, Contained ObjectExpr
	Threshold            float64
}

// ColorComparison holds when every channel of Obj's average color is
// within Threshold of Color.
type ColorComparison struct {
	Obj       ObjectExpr
	Color     color.YUV
	Threshold float64
}

func (True) isBool()            {}
func (False) isBool()           {}
func (LabelIs) isBool()         {}
func (EqualLabel) isBool()      {}
func (Not) isBool()             {}
func (And) isBool()             {}
func (Or) isBool()              {}
func (Exists) isBool()          {}
func (Forall) isBool()          {}
func (Left) isBool()            {}
func (Right) isBool()           {}
func (Above) isBool()           {}
func (Below) isBool()           {}
func (IOU) isBool()             {}
func (Containment) isBool()     {}
func (ColorComparison) isBool() {}

func (True) String() string  { return "true" }
func (False) String() string { return "false" }

func (e LabelIs) String() string {
	return fmt.Sprintf("LabelIs(%s, %s)", e.Var, e.Label)
}

func (e EqualLabel) String() string {
	return fmt.Sprintf("EqualLabel(%s, %s)", e.A, e.B)
}

func (e Not) String() string {
	return fmt.Sprintf("!%s", e.Inner)
}

func (e And) String() string {
	return fmt.Sprintf("(%s && %s)", e.Left, e.Right)
}

func (e Or) String() string {
	return fmt.Sprintf("(%s || %s)", e.Left, e.Right)
}

func (e Exists) String() string {
	return fmt.Sprintf("exists %s . (%s)", e.Var, e.Body)
}

func (e Forall) String() string {
	return fmt.Sprintf("forall %s . (%s)", e.Var, e.Body)
}

func (e Left) String() string {
	return fmt.Sprintf("Left(%s, %s)", e.A, e.B)
}

func (e Right) String() string {
	return fmt.Sprintf("Right(%s, %s)", e.A, e.B)
}

func (e Above) String() string {
	return fmt.Sprintf("Above(%s, %s)", e.A, e.B)
}

func (e Below) String() string {
	return fmt.Sprintf("Below(%s, %s)", e.A, e.B)
}

func (e IOU) String() string {
	return fmt.Sprintf("IOU(%s, %s) >= %g", e.A, e.B, e.Threshold)
}

func (e Containment) String() string {
	return fmt.Sprintf("Containment(%s, %s) >= %g", e.Container, e.Contained, e.Threshold)
}

func (e ColorComparison) String() string {
	return fmt.Sprintf("ColorContainment(%s, %s, %g)", e.Obj, e.Color.RGB(), e.Threshold)
}

// Ands folds the operands into a left-nested conjunction. It returns nil
// for no operands.
func Ands(es ...BoolExpr) BoolExpr {
	return fold(es, func(l, r BoolExpr) BoolExpr { return And{Left: l, Right: r} })
}

// Ors folds the operands into a left-nested disjunction. It returns nil
// for no operands.
func Ors(es ...BoolExpr) BoolExpr {
	return fold(es, func(l, r BoolExpr) BoolExpr { return Or{Left: l, Right: r} })
}

func fold(es []BoolExpr, op func(l, r BoolExpr) BoolExpr) BoolExpr {
	if len(es) == 0 {
		return nil
	}
	result := es[0]
	for _, e := range es[1:] {
		result = op(result, e)
	}
	return result
}

// PredicateLambda binds Var in Body.
type PredicateLambda struct {
	Var  ObjectVariable
	Body BoolExpr
}

func (p PredicateLambda) String() string {
	return fmt.Sprintf("fun %s -> %s", p.Var, p.Body)
}

// ObjectList selects objects of an image.
type ObjectList interface {
	fmt.Stringer
	isObjectList()
}

// AllObjects selects every object of the image.
type AllObjects struct{}

func (AllObjects) isObjectList() {}

func (AllObjects) String() string {
	return "AllObjects()"
}

// Filter keeps the objects of Objects that satisfy Predicate.
type Filter struct {
	Predicate PredicateLambda
	Objects   ObjectList
}

func (Filter) isObjectList() {}

func (f Filter) String() string {
	return fmt.Sprintf("Filter(%s, %s)", f.Predicate, f.Objects)
}

// LabelApply attaches the precise label Action to every selected object.
type LabelApply struct {
	Action  ObjectLiteral
	Objects ObjectList
}

func (a LabelApply) String() string {
	return fmt.Sprintf("LabelApply(%s, %s)", a.Action, a.Objects)
}

// GroupApply attaches the group label Action to every selected object.
type GroupApply struct {
	Action  GroupLiteral
	Objects ObjectList
}

func (a GroupApply) String() string {
	return fmt.Sprintf("GroupApply(%s, %s)", a.Action, a.Objects)
}

// Program is an ordered list of label applications.
type Program struct {
	Applies []LabelApply
}

func (p Program) String() string {
	s := make([]string, len(p.Applies))
	for i, a := range p.Applies {
		s[i] = a.String()
	}
	return fmt.Sprintf("Program(%s)", strings.Join(s, ", "))
}
