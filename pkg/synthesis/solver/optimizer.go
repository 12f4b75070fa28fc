package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

var Incomplete = errors.New("cancelled before a solution could be found")

// Outcome is the result of a call to Check.
type Outcome int

const (
	Unknown Outcome = iota
	Satisfiable
	Unsatisfiable
)

func (o Outcome) String() string {
	switch o {
	case Satisfiable:
		return "satisfiable"
	case Unsatisfiable:
		return "unsatisfiable"
	}
	return "unknown"
}

const (
	satisfiable   = 1
	unsatisfiable = -1
)

type soft struct {
	m      z.Lit
	weight int
	id     string
}

// Optimizer searches for models of its hard constraints that minimise
// the total weight of violated soft constraints. Literals passed to an
// Optimizer must come from the circuit of the Context it was created
// with.
//
// Successive calls to Check may only add constraints, so the optimum
// never decreases and each Check resumes the search from the previous
// optimum.
type Optimizer struct {
	ctx     *Context
	g       *gini.Gini
	name    string
	tracer  Tracer
	marks   []int8
	pending []z.Lit
	softs   []soft
	domains []domain
	known   map[domain]struct{}
	flushed int
	cs      *logic.CardSort
	floor   int
	bound   int
	sat     bool
	solves  int
	errs    internalErrors
}

// NewOptimizer returns an Optimizer with no constraints over the circuit
// of ctx.
func NewOptimizer(ctx *Context, options ...Option) (*Optimizer, error) {
	o := Optimizer{
		ctx:   ctx,
		g:     gini.New(),
		known: make(map[domain]struct{}),
	}
	for _, option := range append(options, defaults...) {
		if err := option(&o); err != nil {
			return nil, err
		}
	}
	return &o, nil
}

type Option func(o *Optimizer) error

func WithTracer(t Tracer) Option {
	return func(o *Optimizer) error {
		o.tracer = t
		return nil
	}
}

// WithName sets the name reported to the Tracer.
func WithName(name string) Option {
	return func(o *Optimizer) error {
		if name == "" {
			return errors.New("optimizer name must not be empty")
		}
		o.name = name
		return nil
	}
}

var defaults = []Option{
	func(o *Optimizer) error {
		if o.tracer == nil {
			o.tracer = DefaultTracer{}
		}
		return nil
	},
	func(o *Optimizer) error {
		if o.name == "" {
			o.name = "optimizer"
		}
		return nil
	},
}

func (o *Optimizer) True() z.Lit {
	return o.ctx.c.T
}

func (o *Optimizer) False() z.Lit {
	return o.ctx.c.F
}

// And returns a literal equivalent to the conjunction of ms, or True if
// ms is empty.
func (o *Optimizer) And(ms ...z.Lit) z.Lit {
	return o.ctx.c.Ands(ms...)
}

// Or returns a literal equivalent to the disjunction of ms, or False if
// ms is empty.
func (o *Optimizer) Or(ms ...z.Lit) z.Lit {
	return o.ctx.c.Ors(ms...)
}

func (o *Optimizer) Implies(a, b z.Lit) z.Lit {
	return o.ctx.c.Implies(a, b)
}

func (o *Optimizer) Iff(a, b z.Lit) z.Lit {
	return o.ctx.c.Xor(a, b).Not()
}

func (o *Optimizer) use(d domain) {
	if _, ok := o.known[d]; ok {
		return
	}
	o.known[d] = struct{}{}
	o.domains = append(o.domains, d)
}

// AtLeast returns a literal equivalent to r >= v.
func (o *Optimizer) AtLeast(r *Real, v float64) z.Lit {
	o.use(r)
	m, err := r.atLeast(v)
	if err != nil {
		return o.Fail(err)
	}
	return m
}

// AtMost returns a literal equivalent to r <= v.
func (o *Optimizer) AtMost(r *Real, v float64) z.Lit {
	o.use(r)
	m, err := r.atMost(v)
	if err != nil {
		return o.Fail(err)
	}
	return m
}

// Assert adds m as a hard constraint.
func (o *Optimizer) Assert(m z.Lit) {
	if m == z.LitNull {
		o.Fail(errors.New("asserted a null literal"))
		return
	}
	o.pending = append(o.pending, m)
}

// AssertSoft adds m as a soft constraint. Every model in which m does
// not hold costs weight. The id names the constraint in traces.
func (o *Optimizer) AssertSoft(m z.Lit, weight int, id string) {
	if m == z.LitNull {
		o.Fail(fmt.Errorf("soft constraint %s has a null literal", id))
		return
	}
	if weight < 1 {
		o.Fail(fmt.Errorf("soft constraint %s has non-positive weight %d", id, weight))
		return
	}
	o.softs = append(o.softs, soft{m: m, weight: weight, id: id})
	o.cs = nil
	o.floor = 0
}

// Fail records err as an internal failure, to be reported by the next
// Check, and returns the null literal.
func (o *Optimizer) Fail(err error) z.Lit {
	o.errs = append(o.errs, err)
	return z.LitNull
}

// Error returns an aggregation of every internal failure recorded so
// far, or nil.
func (o *Optimizer) Error() error {
	if len(o.errs) == 0 {
		return nil
	}
	return o.errs
}

func (o *Optimizer) flush() {
	for _, d := range o.domains[o.flushed:] {
		o.pending = append(o.pending, d.constraints(o.ctx.c))
	}
	o.flushed = len(o.domains)
	o.encode(o.pending...)
	for _, m := range o.pending {
		o.g.Add(m)
		o.g.Add(0)
	}
	o.pending = o.pending[:0]
}

// encode teaches the solver the definitions of every circuit node
// reachable from ms that it has not seen yet.
func (o *Optimizer) encode(ms ...z.Lit) {
	o.marks, _ = o.ctx.c.CnfSince(o.g, o.marks, ms...)
}

func (o *Optimizer) cardinality() *logic.CardSort {
	if o.cs != nil || len(o.softs) == 0 {
		return o.cs
	}
	var ms []z.Lit
	for _, s := range o.softs {
		for i := 0; i < s.weight; i++ {
			ms = append(ms, s.m.Not())
		}
	}
	o.cs = o.ctx.c.CardSort(ms)
	return o.cs
}

func (o *Optimizer) solve(assumptions ...z.Lit) bool {
	o.g.Assume(assumptions...)
	o.solves++
	o.sat = o.g.Solve() == satisfiable
	return o.sat
}

// Check searches for a model of the hard constraints with the least
// soft constraint cost. If the provided Context is cancelled between
// solver calls, Incomplete is returned.
func (o *Optimizer) Check(ctx context.Context) (result Outcome, err error) {
	defer func() {
		// This likely indicates a bug, so discard whatever
		// return values were produced.
		if derr := o.Error(); derr != nil {
			result = Unknown
			err = derr
		}
	}()
	if len(o.errs) > 0 {
		return Unknown, nil
	}
	if ctx.Err() != nil {
		return Unknown, Incomplete
	}

	o.flush()
	o.bound = -1
	if !o.solve() {
		o.tracer.Trace(o)
		return Unsatisfiable, nil
	}
	cs := o.cardinality()
	if cs == nil {
		o.bound = 0
		o.tracer.Trace(o)
		return Satisfiable, nil
	}
	for w := o.floor; w <= cs.N(); w++ {
		if ctx.Err() != nil {
			o.sat = false
			return Unknown, Incomplete
		}
		o.bound = w
		leq := cs.Leq(w)
		o.encode(leq)
		found := o.solve(leq)
		o.tracer.Trace(o)
		if found {
			o.floor = w
			return Satisfiable, nil
		}
	}
	// Something is wrong if we can't find a model anymore
	// after optimizing for cost.
	o.sat = false
	return Unknown, fmt.Errorf("unexpected internal error")
}

// Name returns the name of o.
func (o *Optimizer) Name() string {
	return o.name
}

// Bound returns the cost bound of the most recent solver call, or -1 if
// it was unbounded.
func (o *Optimizer) Bound() int {
	return o.bound
}

// Satisfiable reports whether the most recent solver call found a model.
func (o *Optimizer) Satisfiable() bool {
	return o.sat
}

// Violated returns the ids of the soft constraints violated by the
// current model, in the order they were asserted.
func (o *Optimizer) Violated() []string {
	if !o.sat {
		return nil
	}
	var ids []string
	for _, s := range o.softs {
		if !o.value(s.m) {
			ids = append(ids, s.id)
		}
	}
	return ids
}

// Solves returns the number of calls made to the underlying SAT solver.
func (o *Optimizer) Solves() int {
	return o.solves
}

func (o *Optimizer) value(m z.Lit) bool {
	if m.Var() > o.g.MaxVar() {
		return false
	}
	return o.g.Value(m)
}

// Model provides the values of unknowns in the model found by the most
// recent successful Check.
type Model interface {
	Bool(b *Bool) bool
	Real(r *Real) float64
	Cost() int
}

// Model returns the current model. It is only valid until the next call
// to Check.
func (o *Optimizer) Model() Model {
	if !o.sat {
		o.Fail(errors.New("model requested without a satisfying assignment"))
	}
	return model{o: o}
}

type model struct {
	o *Optimizer
}

func (m model) Bool(b *Bool) bool {
	return m.o.value(b.lit)
}

func (m model) Real(r *Real) float64 {
	return r.value(m.o.value)
}

func (m model) Cost() int {
	cost := 0
	for _, s := range m.o.softs {
		if !m.o.value(s.m) {
			cost += s.weight
		}
	}
	return cost
}
