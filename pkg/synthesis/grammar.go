package synthesis

import (
	"fmt"

	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ast"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ir"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/solver"
)

// minColorRadius is the smallest tolerance a color comparison may use.
const minColorRadius = 0.1

// grammar instantiates candidate shapes. Every unknown it declares
// belongs to ctx.
// Color comparisons are instantiated only when colors is set.
type grammar struct {
	ctx    *solver.Context
	labels []ast.ObjectLiteral
	colors *colorDomain

	placement   bool
	containment bool
}

func newGrammar(ctx *solver.Context, lib *library, cfg Config) *grammar {
	g := &grammar{
		ctx:         ctx,
		labels:      lib.base,
		placement:   cfg.UsePlacementSynthesis,
		containment: cfg.UseContainmentSynthesis,
	}
	if cfg.UseColorSynthesis {
		g.colors = lib.colors
	}
	return g
}

// variable names the object bound at the given nesting level. The
// outermost variable carries the largest index.
func variable(level int) ast.ObjectVariable {
	return ast.ObjectVariable{Name: fmt.Sprintf("x%d", level)}
}

// shape returns a tree of the given quantifier depth with the given
// number of clauses per level, along with the variable of its predicate
// lambda. In the disjunctive form the top is a disjunction of
// conjunctive clauses; the conjunctive form is its dual.
func (g *grammar) shape(depth, clauses int, form ir.Form) (ir.Node, ast.ObjectVariable) {
	outer := variable(depth)
	return g.level(depth, clauses, []ast.ObjectVariable{outer}, form), outer
}

func (g *grammar) level(level, clauses int, bound []ast.ObjectVariable, form ir.Form) ir.Node {
	cs := make([]ir.Node, clauses)
	for i := range cs {
		terms := g.clause(level, clauses, bound, form)
		if form == ir.Conjunctive {
			cs[i] = ir.Or{Children: terms}
		} else {
			cs[i] = ir.And{Children: terms}
		}
	}
	if form == ir.Conjunctive {
		return ir.And{Children: cs}
	}
	return ir.Or{Children: cs}
}

func (g *grammar) clause(level, clauses int, bound []ast.ObjectVariable, form ir.Form) []ir.Node {
	v := variable(level)
	var terms []ir.Node

	for _, l := range g.labels {
		terms = append(terms,
			ir.LabelIs{T: g.ctx.NewBool(), Var: v, Label: l},
			ir.LabelIs{T: g.ctx.NewBool(), Var: v, Label: l, Negated: true},
		)
	}

	if g.colors != nil {
		terms = append(terms, ir.ColorComparison{
			T:      g.ctx.NewBool(),
			Var:    v,
			Center: g.colors.center(g.ctx),
			Radius: g.colors.radius(g.ctx),
		})
	}

	for i := range bound {
		for j := i + 1; j < len(bound); j++ {
			a, b := bound[i], bound[j]
			terms = append(terms,
				ir.EqualLabel{T: g.ctx.NewBool(), A: a, B: b},
				ir.EqualLabel{T: g.ctx.NewBool(), A: a, B: b, Negated: true},
			)
			if g.containment {
				terms = append(terms,
					ir.IOU{T: g.ctx.NewBool(), A: a, B: b, Threshold: g.ctx.NewReal(0)},
					ir.Containment{T: g.ctx.NewBool(), Container: a, Contained: b, Threshold: g.ctx.NewReal(0)},
					ir.Containment{T: g.ctx.NewBool(), Container: b, Contained: a, Threshold: g.ctx.NewReal(0)},
				)
			}
			if g.placement {
				terms = append(terms,
					ir.Left{T: g.ctx.NewBool(), A: a, B: b},
					ir.Right{T: g.ctx.NewBool(), A: a, B: b},
					ir.Below{T: g.ctx.NewBool(), A: a, B: b},
					ir.Above{T: g.ctx.NewBool(), A: a, B: b},
				)
			}
		}
	}

	if level > 0 {
		next := variable(level - 1)
		// Both quantifiers range over the same nested tree.
		body := g.level(level-1, clauses, append(bound[:len(bound):len(bound)], next), form)
		terms = append(terms,
			ir.Any{T: g.ctx.NewBool(), Var: next, Body: body},
			ir.All{T: g.ctx.NewBool(), Var: next, Body: body},
		)
	}
	return terms
}
