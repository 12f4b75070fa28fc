// Package solver is a small MaxSAT layer over gini. A Context owns a
// combinational circuit and allocates decision variables; Optimizers
// built from it accept hard and weighted soft constraints and search for
// cost-optimal models.
//
// gini has no arithmetic theory. Real-valued unknowns are order encoded
// over the finite set of constants they are compared against (see Real),
// which is exact as long as every comparison is against a constant known
// before the first Check.
package solver

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Context holds the circuit shared by every variable and constraint of
// one synthesis session, along with the counter used to name fresh
// variables. A Context is not safe for concurrent use and must not be
// shared between sessions.
type Context struct {
	c    *logic.C
	next int
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{c: logic.NewC()}
}

func (ctx *Context) fresh(prefix string) string {
	name := fmt.Sprintf("%s%d", prefix, ctx.next)
	ctx.next++
	return name
}

// NewBool declares a fresh boolean decision variable.
func (ctx *Context) NewBool() *Bool {
	return &Bool{name: ctx.fresh("v"), lit: ctx.c.Lit()}
}

// NewReal declares a fresh real-valued unknown bounded below by lower.
// Besides the constants it is later compared against, it may take any of
// values that is not below lower.
func (ctx *Context) NewReal(lower float64, values ...float64) *Real {
	return ctx.NewInterval(lower, math.Inf(1), values...)
}

// NewInterval declares a fresh real-valued unknown in [lower, upper].
// Values outside the interval are ignored.
func (ctx *Context) NewInterval(lower, upper float64, values ...float64) *Real {
	r := &Real{
		name:  ctx.fresh("r"),
		c:     ctx.c,
		lower: lower,
		upper: upper,
		geq:   make(map[float64]z.Lit),
		leq:   make(map[float64]z.Lit),
	}
	r.point(lower)
	for _, v := range values {
		if v > lower && v <= upper {
			r.point(v)
		}
	}
	return r
}

// internalErrors aggregates failures that indicate a bug in the caller
// or in this package rather than a property of the problem.
type internalErrors []error

func (e internalErrors) Error() string {
	s := make([]string, len(e))
	for i, err := range e {
		s[i] = err.Error()
	}
	return fmt.Sprintf("internal solver failure: %d errors encountered: %s", len(s), strings.Join(s, ", "))
}

func (e internalErrors) Unwrap() []error {
	return e
}
