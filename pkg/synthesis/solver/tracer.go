package solver

import (
	"fmt"
	"io"
)

// SearchPosition describes one step of the cost optimisation.
type SearchPosition interface {
	Name() string
	Bound() int
	Satisfiable() bool
	Violated() []string
}

type Tracer interface {
	Trace(p SearchPosition)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	fmt.Fprintf(t.Writer, "---\nOptimizer: %s\n", p.Name())
	if !p.Satisfiable() {
		fmt.Fprintf(t.Writer, "Bound: %d (unsatisfiable)\n", p.Bound())
		return
	}
	fmt.Fprintf(t.Writer, "Bound: %d\nViolated:\n", p.Bound())
	for _, id := range p.Violated() {
		fmt.Fprintf(t.Writer, "- %s\n", id)
	}
}
