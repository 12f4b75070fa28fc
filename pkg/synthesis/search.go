package synthesis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/operator-framework/label-synthesizer/pkg/example"
	"github.com/operator-framework/label-synthesizer/pkg/geometry"
	"github.com/operator-framework/label-synthesizer/pkg/metrics"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ast"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ir"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/solver"
)

// ErrSearchExhausted is returned by a session that visited every point
// allowed by its bounds without finding a candidate.
var ErrSearchExhausted = errors.New("search bounds exhausted before a candidate was found")

// Candidate is one synthesized application, along with the cost of its
// predicate and the search point it was found at.
type Candidate[A any] struct {
	Apply   A
	Cost    int
	Form    ir.Form
	Depth   int
	Clauses int
}

// target describes what one session synthesizes: the boxes its predicate
// must select and how the predicate becomes an application.
type target[A any] struct {
	kind  string
	name  string
	holds func(ex example.Example, b geometry.Box) bool
	wrap  func(objects ast.ObjectList) A
}

// session searches for the applications of a single target.
type session[A any] struct {
	examples []example.Example
	lib      *library
	cfg      Config
	target   target[A]
	log      logrus.FieldLogger
}

func newSession[A any](examples []example.Example, lib *library, cfg Config, t target[A]) *session[A] {
	return &session[A]{
		examples: examples,
		lib:      lib,
		cfg:      cfg,
		target:   t,
		log:      cfg.Logger.WithFields(logrus.Fields{"kind": t.kind, "target": t.name}),
	}
}

// run visits search points until one of them yields candidates. The
// disjunctive form of a point is tried before the conjunctive one.
func (s *session[A]) run(ctx context.Context) ([]Candidate[A], error) {
	d := newDeepening(s.cfg)
	for {
		if ctx.Err() != nil {
			return nil, solver.Incomplete
		}
		p := d.point()
		metrics.EmitDepth(s.target.kind, p.Depth)
		for _, form := range []ir.Form{ir.Disjunctive, ir.Conjunctive} {
			found, err := s.attempt(ctx, p, form)
			if err != nil {
				return nil, err
			}
			if len(found) > 0 {
				return found, nil
			}
		}
		if !d.next() {
			return nil, ErrSearchExhausted
		}
	}
}

// attempt encodes the shape of one search point against every example
// and enumerates its cheapest solutions.
func (s *session[A]) attempt(ctx context.Context, p point, form ir.Form) ([]Candidate[A], error) {
	log := s.log.WithFields(logrus.Fields{"depth": p.Depth, "clauses": p.Clauses, "form": form})
	log.Debug("searching")

	sctx := solver.NewContext()
	shape, outer := newGrammar(sctx, s.lib, s.cfg).shape(p.Depth, p.Clauses, form)
	o, err := solver.NewOptimizer(sctx,
		solver.WithName(fmt.Sprintf("%s/%s/%d/%d/%s", s.target.kind, s.target.name, p.Depth, p.Clauses, form)),
		solver.WithTracer(s.cfg.Tracer),
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		metrics.EmitSolverCalls(o.Solves())
	}()

	if err := s.encode(o, shape, outer, form); err != nil {
		return nil, err
	}
	for _, wt := range ir.Objective(shape) {
		o.AssertSoft(wt.Toggle.Lit().Not(), wt.Weight, wt.Toggle.String())
	}

	var (
		found    []Candidate[A]
		smallest = -1
	)
	for len(found) < s.cfg.MaxCandidates {
		outcome, err := o.Check(ctx)
		if err != nil {
			return nil, err
		}
		if outcome != solver.Satisfiable {
			break
		}
		m := o.Model()
		if err := o.Error(); err != nil {
			return nil, err
		}
		cost := m.Cost()
		if smallest >= 0 && cost > smallest {
			break
		}
		smallest = cost

		pred, err := ir.Compile(shape, m)
		if err != nil {
			return nil, errors.Wrap(err, "compiling candidate")
		}
		if pred == nil {
			pred = neutral(form)
		}
		c := Candidate[A]{
			Apply: s.target.wrap(ast.Filter{
				Predicate: ast.PredicateLambda{Var: outer, Body: pred},
				Objects:   ast.AllObjects{},
			}),
			Cost:    cost,
			Form:    form,
			Depth:   p.Depth,
			Clauses: p.Clauses,
		}
		log.WithField("cost", cost).Infof("found %s", pred)
		found = append(found, c)

		o.Assert(block(o, shape, m))
	}
	metrics.EmitSearchPoint(form.String(), len(found) > 0)
	return found, nil
}

// encode requires the shape, applied to every box of every example, to
// hold exactly when the target holds for that box.
func (s *session[A]) encode(o *solver.Optimizer, shape ir.Node, outer ast.ObjectVariable, form ir.Form) error {
	for _, ex := range s.examples {
		for _, b := range ex.Boxes() {
			applied, err := ir.Apply(shape, ir.Env{}.Bind(outer, ir.Binding{Box: b, Label: ex.Base(b)}), ex)
			if err != nil {
				return err
			}
			holds := o.False()
			if s.target.holds(ex, b) {
				holds = o.True()
			}
			o.Assert(o.Iff(ir.Lower(applied, o, form), holds))
		}
	}
	return o.Error()
}

// block excludes the toggle assignment of m: at least one of its enabled
// toggles must be disabled.
func block(o *solver.Optimizer, shape ir.Node, m solver.Model) z.Lit {
	var ms []z.Lit
	for _, wt := range ir.Objective(shape) {
		if m.Bool(wt.Toggle) {
			ms = append(ms, wt.Toggle.Lit().Not())
		}
	}
	return o.Or(ms...)
}

// neutral is the predicate of a shape with nothing enabled.
func neutral(form ir.Form) ast.BoolExpr {
	if form == ir.Conjunctive {
		return ast.True{}
	}
	return ast.False{}
}

// search runs one session and accounts for its outcome. Exhausting the
// bounds is not an error: the target is reported without candidates.
func search[A any](ctx context.Context, s *session[A]) ([]Candidate[A], bool, error) {
	start := time.Now()
	found, err := s.run(ctx)
	switch {
	case errors.Is(err, ErrSearchExhausted):
		s.log.Warn("no candidate found within the search bounds")
		metrics.RegisterSessionExhausted(s.target.kind, time.Since(start))
		return nil, true, nil
	case err != nil:
		metrics.RegisterSessionFailure(s.target.kind, time.Since(start))
		return nil, false, errors.Wrapf(err, "synthesizing %s %q", s.target.kind, s.target.name)
	}
	metrics.RegisterSessionSuccess(s.target.kind, time.Since(start))
	metrics.EmitCandidates(s.target.kind, len(found))
	s.log.WithField("candidates", len(found)).Info("synthesized")
	return found, false, nil
}
