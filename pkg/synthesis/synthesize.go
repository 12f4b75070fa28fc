// Package synthesis searches for label and group applications whose
// predicates select exactly the annotated objects of a set of examples.
//
// Every target is searched independently. A target's search visits
// points of increasing quantifier depth and clause count; at each point
// a shape is instantiated, encoded against every example, and handed to
// a MaxSAT optimizer that enables as few grammar productions as
// possible. The cheapest solutions of the first point that has any are
// returned as candidates.
package synthesis

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/operator-framework/label-synthesizer/pkg/example"
	"github.com/operator-framework/label-synthesizer/pkg/geometry"
	"github.com/operator-framework/label-synthesizer/pkg/metrics"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ast"
)

// LabelCandidates are the candidates found for one precise label.
// Exhausted is set when the search bounds were reached first.
type LabelCandidates struct {
	Label      ast.ObjectLiteral
	Candidates []Candidate[ast.LabelApply]
	Exhausted  bool
}

// GroupCandidates are the candidates found for one group label.
type GroupCandidates struct {
	Group      ast.GroupLiteral
	Candidates []Candidate[ast.GroupApply]
	Exhausted  bool
}

// Result holds the candidates of every precise label and group label
// observed in the examples, in sorted label order.
type Result struct {
	Labels []LabelCandidates
	Groups []GroupCandidates
}

// Synthesize searches for candidates for every precise label and every
// group label of examples. Unset fields of cfg take their defaults. Up to
// cfg.Workers targets are searched at once; the first failing target
// cancels the others and its error is returned.
func Synthesize(ctx context.Context, examples []example.Example, cfg Config) (*Result, error) {
	cfg = cfg.Complete()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lib := extractLibrary(examples)
	if cfg.UseColorSynthesis {
		lib.withColors()
	}
	cfg.Logger.WithFields(logrus.Fields{
		"examples": len(examples),
		"base":     len(lib.base),
		"precise":  len(lib.precise),
		"groups":   len(lib.groups),
		"palette":  len(lib.palette),
	}).Info("starting synthesis")
	if lib.colors != nil {
		cfg.Logger.WithFields(logrus.Fields{
			"radii":   len(lib.colors.radii),
			"centers": len(lib.colors.centers[0]) + len(lib.colors.centers[1]) + len(lib.colors.centers[2]),
		}).Debug("derived color domain")
	}

	result := &Result{
		Labels: make([]LabelCandidates, len(lib.precise)),
		Groups: make([]GroupCandidates, len(lib.groups)),
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, label := range lib.precise {
		s := newSession(examples, lib, cfg, labelTarget(label))
		g.Go(func() error {
			found, exhausted, err := search(gctx, s)
			if err != nil {
				return err
			}
			result.Labels[i] = LabelCandidates{Label: label, Candidates: found, Exhausted: exhausted}
			return nil
		})
	}
	for i, group := range lib.groups {
		s := newSession(examples, lib, cfg, groupTarget(group))
		g.Go(func() error {
			found, exhausted, err := search(gctx, s)
			if err != nil {
				return err
			}
			result.Groups[i] = GroupCandidates{Group: group, Candidates: found, Exhausted: exhausted}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func labelTarget(label ast.ObjectLiteral) target[ast.LabelApply] {
	return target[ast.LabelApply]{
		kind: metrics.LabelKind,
		name: label.Label,
		holds: func(ex example.Example, b geometry.Box) bool {
			return ex.Precise(b).Has(label.Label)
		},
		wrap: func(objects ast.ObjectList) ast.LabelApply {
			return ast.LabelApply{Action: label, Objects: objects}
		},
	}
}

func groupTarget(group ast.GroupLiteral) target[ast.GroupApply] {
	return target[ast.GroupApply]{
		kind: metrics.GroupKind,
		name: group.Label,
		holds: func(ex example.Example, b geometry.Box) bool {
			return ex.Groups(b).Has(group.Label)
		},
		wrap: func(objects ast.ObjectList) ast.GroupApply {
			return ast.GroupApply{Action: group, Objects: objects}
		},
	}
}

// verify checks that objects selects exactly the boxes of each example
// for which holds is true.
func verify(name string, objects ast.ObjectList, examples []example.Example, holds func(example.Example, geometry.Box) bool) error {
	var errs []error
	for i, ex := range examples {
		selected, err := ast.Select(objects, ex)
		if err != nil {
			return err
		}
		got := sets.New(selected...)
		for _, b := range ex.Boxes() {
			if got.Has(b) != holds(ex, b) {
				errs = append(errs, fmt.Errorf("%s: example %d: box %v selected=%t, want %t", name, i, b, got.Has(b), !got.Has(b)))
			}
		}
	}
	return utilerrors.NewAggregate(errs)
}

// Verify evaluates every candidate of r against examples and reports
// each box a candidate selects wrongly.
func (r *Result) Verify(examples []example.Example) error {
	var errs []error
	for _, l := range r.Labels {
		t := labelTarget(l.Label)
		for _, c := range l.Candidates {
			if err := verify(c.Apply.String(), c.Apply.Objects, examples, t.holds); err != nil {
				errs = append(errs, err)
			}
		}
	}
	for _, g := range r.Groups {
		t := groupTarget(g.Group)
		for _, c := range g.Candidates {
			if err := verify(c.Apply.String(), c.Apply.Objects, examples, t.holds); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return utilerrors.NewAggregate(errs)
}
