// Package ir is the solver-facing form of the predicate grammar. Every
// optional production carries a toggle deciding whether it takes part in
// the synthesized predicate, and numeric productions carry unknowns for
// their thresholds.
//
// A node moves through these states: it is built over object variables,
// reified against one example with Apply, lowered to a solver literal
// with Lower, and finally compiled back to the grammar with Compile once
// the solver has found a model.
package ir

import (
	"fmt"
	"strings"

	"github.com/operator-framework/label-synthesizer/pkg/color"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ast"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/solver"
)

// Node is one production of the instrumented grammar. The set of
// implementations is closed.
type Node interface {
	fmt.Stringer
	// Toggle returns the decision variable enabling the node, or nil
	// for the untoggled connectives at the top of a shape.
	Toggle() *solver.Bool
	isNode()
}

// Or holds when any enabled child holds.
type Or struct {
	T        *solver.Bool
	Children []Node
}

// And holds when every enabled child holds.
type And struct {
	T        *solver.Bool
	Children []Node
}

// Any quantifies Var existentially over the objects of an example.
type Any struct {
	T    *solver.Bool
	Var  ast.ObjectVariable
	Body Node
}

// All quantifies Var universally over the objects of an example.
type All struct {
	T    *solver.Bool
	Var  ast.ObjectVariable
	Body Node
}

// Boolean is a comparison already decided by the data.
type Boolean struct {
	T     *solver.Bool
	Value bool
}

// Geq holds when Value is at least Threshold.
type Geq struct {
	T         *solver.Bool
	Value     float64
	Threshold *solver.Real
}

type LabelIs struct {
	T       *solver.Bool
	Var     ast.ObjectVariable
	Label   ast.ObjectLiteral
	Negated bool
}

type EqualLabel struct {
	T       *solver.Bool
	A, B    ast.ObjectVariable
	Negated bool
}

type IOU struct {
	T         *solver.Bool
	A, B      ast.ObjectVariable
	Threshold *solver.Real
}

type Containment struct {
	T                    *solver.Bool
	Container, Contained ast.ObjectVariable
	Threshold            *solver.Real
}

type Left struct {
	T    *solver.Bool
	A, B ast.ObjectVariable
}

type Right struct {
	T    *solver.Bool
	A, B ast.ObjectVariable
}

type Above struct {
	T    *solver.Bool
	A, B ast.ObjectVariable
}

type Below struct {
	T    *solver.Bool
	A, B ast.ObjectVariable
}

// ColorCenter holds one unknown per channel of a YUV color.
type ColorCenter struct {
	Y, U, V *solver.Real
}

func (c ColorCenter) String() string {
	return fmt.Sprintf("(%s, %s, %s)", c.Y, c.U, c.V)
}

// ColorComparison holds when every channel of the average color of Var
// is within Radius of Center.
type ColorComparison struct {
	T      *solver.Bool
	Var    ast.ObjectVariable
	Center ColorCenter
	Radius *solver.Real
}

// ColorApplied is a ColorComparison whose object has been resolved to
// its average color.
type ColorApplied struct {
	T        *solver.Bool
	Observed color.YUV
	Center   ColorCenter
	Radius   *solver.Real
}

func (n Or) Toggle() *solver.Bool              { return n.T }
func (n And) Toggle() *solver.Bool             { return n.T }
func (n Any) Toggle() *solver.Bool             { return n.T }
func (n All) Toggle() *solver.Bool             { return n.T }
func (n Boolean) Toggle() *solver.Bool         { return n.T }
func (n Geq) Toggle() *solver.Bool             { return n.T }
func (n LabelIs) Toggle() *solver.Bool         { return n.T }
func (n EqualLabel) Toggle() *solver.Bool      { return n.T }
func (n IOU) Toggle() *solver.Bool             { return n.T }
func (n Containment) Toggle() *solver.Bool     { return n.T }
func (n Left) Toggle() *solver.Bool            { return n.T }
func (n Right) Toggle() *solver.Bool           { return n.T }
func (n Above) Toggle() *solver.Bool           { return n.T }
func (n Below) Toggle() *solver.Bool           { return n.T }
func (n ColorComparison) Toggle() *solver.Bool { return n.T }
func (n ColorApplied) Toggle() *solver.Bool    { return n.T }

func (Or) isNode()              {}
func (And) isNode()             {}
func (Any) isNode()             {}
func (All) isNode()             {}
func (Boolean) isNode()         {}
func (Geq) isNode()             {}
func (LabelIs) isNode()         {}
func (EqualLabel) isNode()      {}
func (IOU) isNode()             {}
func (Containment) isNode()     {}
func (Left) isNode()            {}
func (Right) isNode()           {}
func (Above) isNode()           {}
func (Below) isNode()           {}
func (ColorComparison) isNode() {}
func (ColorApplied) isNode()    {}

func toggleName(t *solver.Bool) string {
	if t == nil {
		return "-"
	}
	return t.String()
}

func children(ns []Node) string {
	s := make([]string, len(ns))
	for i, n := range ns {
		s[i] = n.String()
	}
	return strings.Join(s, ", ")
}

func negation(negated bool) string {
	if negated {
		return "!"
	}
	return ""
}

func (n Or) String() string {
	return fmt.Sprintf("Or[%s](%s)", toggleName(n.T), children(n.Children))
}

func (n And) String() string {
	return fmt.Sprintf("And[%s](%s)", toggleName(n.T), children(n.Children))
}

func (n Any) String() string {
	return fmt.Sprintf("Any[%s](%s . %s)", toggleName(n.T), n.Var, n.Body)
}

func (n All) String() string {
	return fmt.Sprintf("All[%s](%s . %s)", toggleName(n.T), n.Var, n.Body)
}

func (n Boolean) String() string {
	return fmt.Sprintf("Boolean[%s](%t)", toggleName(n.T), n.Value)
}

func (n Geq) String() string {
	return fmt.Sprintf("Geq[%s](%g >= %s)", toggleName(n.T), n.Value, n.Threshold)
}

func (n LabelIs) String() string {
	return fmt.Sprintf("%sLabelIs[%s](%s, %s)", negation(n.Negated), toggleName(n.T), n.Var, n.Label)
}

func (n EqualLabel) String() string {
	return fmt.Sprintf("%sEqualLabel[%s](%s, %s)", negation(n.Negated), toggleName(n.T), n.A, n.B)
}

func (n IOU) String() string {
	return fmt.Sprintf("IOU[%s](%s, %s) >= %s", toggleName(n.T), n.A, n.B, n.Threshold)
}

func (n Containment) String() string {
	return fmt.Sprintf("Containment[%s](%s, %s) >= %s", toggleName(n.T), n.Container, n.Contained, n.Threshold)
}

func (n Left) String() string {
	return fmt.Sprintf("Left[%s](%s, %s)", toggleName(n.T), n.A, n.B)
}

func (n Right) String() string {
	return fmt.Sprintf("Right[%s](%s, %s)", toggleName(n.T), n.A, n.B)
}

func (n Above) String() string {
	return fmt.Sprintf("Above[%s](%s, %s)", toggleName(n.T), n.A, n.B)
}

func (n Below) String() string {
	return fmt.Sprintf("Below[%s](%s, %s)", toggleName(n.T), n.A, n.B)
}

func (n ColorComparison) String() string {
	return fmt.Sprintf("Color[%s](%s, %s, %s)", toggleName(n.T), n.Var, n.Center, n.Radius)
}

func (n ColorApplied) String() string {
	return fmt.Sprintf("Color[%s](%s, %s, %s)", toggleName(n.T), n.Observed, n.Center, n.Radius)
}
