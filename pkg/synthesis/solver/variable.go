package solver

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Bool is a boolean decision variable.
type Bool struct {
	name string
	lit  z.Lit
}

// Lit returns the positive literal of b.
func (b *Bool) Lit() z.Lit {
	return b.lit
}

func (b *Bool) String() string {
	return b.name
}

// domain is implemented by unknowns whose encoding needs constraints of
// its own, beyond the atoms built from it.
type domain interface {
	fmt.Stringer
	// constraints returns a literal that must hold in every model. The
	// first call seals the domain.
	constraints(c *logic.C) z.Lit
}

// Real is a real-valued unknown in [lower, upper], order encoded over the
// constants it is compared against and the values it was declared with.
// Each such constant p gets a literal meaning r >= p; the literals are
// chained so that r >= q implies r >= p for every p < q. In a model the
// value of r is the largest constant whose literal is true.
//
// Atoms can only be created before the first Check of an Optimizer that
// uses r. After that the set of constants is sealed.
type Real struct {
	name   string
	c      *logic.C
	lower  float64
	upper  float64
	geq    map[float64]z.Lit
	leq    map[float64]z.Lit
	points []float64
	sealed bool
	root   z.Lit
}

func (r *Real) String() string {
	return r.name
}

// Values returns, in increasing order, every value r can currently take
// in a model.
func (r *Real) Values() []float64 {
	vs := make([]float64, 0, len(r.geq))
	for p := range r.geq {
		vs = append(vs, p)
	}
	sort.Float64s(vs)
	return vs
}

func (r *Real) point(v float64) z.Lit {
	m, ok := r.geq[v]
	if !ok {
		m = r.c.Lit()
		r.geq[v] = m
	}
	return m
}

func (r *Real) sealedError(op string, v float64) error {
	return fmt.Errorf("%s %s %g: constant introduced after %s was sealed", r.name, op, v, r.name)
}

// atLeast returns a literal equivalent to r >= v.
func (r *Real) atLeast(v float64) (z.Lit, error) {
	if v <= r.lower {
		return r.c.T, nil
	}
	if v > r.upper {
		return r.c.F, nil
	}
	if _, ok := r.geq[v]; !ok && r.sealed {
		return z.LitNull, r.sealedError(">=", v)
	}
	return r.point(v), nil
}

// atMost returns a literal equivalent to r <= v.
func (r *Real) atMost(v float64) (z.Lit, error) {
	if v < r.lower {
		return r.c.F, nil
	}
	if v >= r.upper {
		return r.c.T, nil
	}
	if m, ok := r.leq[v]; ok {
		return m, nil
	}
	if r.sealed {
		return z.LitNull, r.sealedError("<=", v)
	}
	r.point(v)
	m := r.c.Lit()
	r.leq[v] = m
	return m, nil
}

func (r *Real) constraints(c *logic.C) z.Lit {
	if r.sealed {
		return r.root
	}
	r.sealed = true

	r.points = make([]float64, 0, len(r.geq)+1)
	for p := range r.geq {
		r.points = append(r.points, p)
	}
	sort.Float64s(r.points)

	// r <= max(points) needs a larger value to be falsifiable. Such a
	// top is always below upper.
	top := r.points[len(r.points)-1]
	if _, ok := r.leq[top]; ok {
		next := top + 1
		if !math.IsInf(r.upper, 1) {
			next = r.upper
		}
		r.point(next)
		r.points = append(r.points, next)
	}

	ms := []z.Lit{r.geq[r.lower]}
	for i := 1; i < len(r.points); i++ {
		ms = append(ms, c.Implies(r.geq[r.points[i]], r.geq[r.points[i-1]]))
	}
	for i, p := range r.points {
		if le, ok := r.leq[p]; ok {
			ms = append(ms, c.Xor(le, r.geq[r.points[i+1]]))
		}
	}
	r.root = c.Ands(ms...)
	return r.root
}

// value returns the value of r under the given literal valuation.
func (r *Real) value(holds func(z.Lit) bool) float64 {
	result := r.lower
	for _, p := range r.points {
		if p < r.lower {
			continue
		}
		if !holds(r.geq[p]) {
			break
		}
		result = p
	}
	return result
}
