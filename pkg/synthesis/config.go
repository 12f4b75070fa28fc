package synthesis

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/operator-framework/label-synthesizer/pkg/synthesis/solver"
)

const (
	DefaultInitialDepth   = 1
	DefaultInitialClauses = 5
	DefaultClauseStep     = 2
	DefaultMaxDepth       = 3
	DefaultMaxClauses     = 11
	DefaultMaxCandidates  = 5
	DefaultWorkers        = 1
)

// Config controls the grammar and the bounds of the search.
type Config struct {
	// UseColorSynthesis enables average color comparisons.
	UseColorSynthesis bool
	// UsePlacementSynthesis enables Left, Right, Above and Below.
	UsePlacementSynthesis bool
	// UseContainmentSynthesis enables overlap and containment thresholds.
	UseContainmentSynthesis bool

	// InitialDepth is the quantifier nesting tried first.
	InitialDepth int
	// InitialClauses is the number of clauses per level the first time a
	// depth is tried.
	InitialClauses int
	// ClauseStep is added to the clause count of a depth each time it
	// fails.
	ClauseStep int
	// MaxDepth and MaxClauses bound the search. A target for which no
	// admissible point yields a candidate is reported as exhausted.
	MaxDepth   int
	MaxClauses int

	// MaxCandidates bounds the number of candidates per target.
	MaxCandidates int
	// Workers is the number of targets searched concurrently.
	Workers int

	Logger logrus.FieldLogger
	Tracer solver.Tracer
}

// Complete returns a copy of c with every unset field defaulted. Boolean
// flags are left alone. Depth zero is a valid bound, so the depths are
// only defaulted when both are unset.
func (c Config) Complete() Config {
	if c.InitialClauses == 0 {
		c.InitialClauses = DefaultInitialClauses
	}
	if c.ClauseStep == 0 {
		c.ClauseStep = DefaultClauseStep
	}
	if c.MaxDepth == 0 && c.InitialDepth == 0 {
		c.InitialDepth = DefaultInitialDepth
		c.MaxDepth = DefaultMaxDepth
	}
	if c.MaxClauses == 0 {
		c.MaxClauses = DefaultMaxClauses
		if c.InitialClauses > c.MaxClauses {
			c.MaxClauses = c.InitialClauses
		}
	}
	if c.MaxCandidates == 0 {
		c.MaxCandidates = DefaultMaxCandidates
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.Logger = l
	}
	if c.Tracer == nil {
		c.Tracer = solver.DefaultTracer{}
	}
	return c
}

// Validate reports every inconsistent setting of c.
func (c Config) Validate() error {
	var errs []error
	if c.InitialDepth < 0 {
		errs = append(errs, fmt.Errorf("initial depth %d is negative", c.InitialDepth))
	}
	if c.InitialDepth > c.MaxDepth {
		errs = append(errs, fmt.Errorf("initial depth %d exceeds max depth %d", c.InitialDepth, c.MaxDepth))
	}
	if c.InitialClauses < 1 {
		errs = append(errs, fmt.Errorf("initial clause count %d must be positive", c.InitialClauses))
	}
	if c.InitialClauses > c.MaxClauses {
		errs = append(errs, fmt.Errorf("initial clause count %d exceeds max clause count %d", c.InitialClauses, c.MaxClauses))
	}
	if c.ClauseStep < 1 {
		errs = append(errs, fmt.Errorf("clause step %d must be positive", c.ClauseStep))
	}
	if c.MaxCandidates < 1 {
		errs = append(errs, fmt.Errorf("candidate limit %d must be positive", c.MaxCandidates))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("worker count %d must be positive", c.Workers))
	}
	return utilerrors.NewAggregate(errs)
}
