package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	KindLabel    = "kind"
	FormLabel    = "form"
	Outcome      = "outcome"
	Succeeded    = "succeeded"
	Failed       = "failed"
	Exhausted    = "exhausted"
	Satisfied    = "satisfiable"
	Unsatisfied  = "unsatisfiable"
	LabelKind    = "label"
	GroupKind    = "group"
	Disjunctive  = "disjunctive"
	Conjunctive  = "conjunctive"
	unknownValue = "unknown"
)

// To add new metrics:
// 1. Register new metrics in RegisterSynthesisWith() below.
// 2. Add a helper updating them and call it from the search.
var (
	searchPointsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synthesis_search_points_total",
			Help: "Monotonic count of (depth, clauses, form) points handed to the optimizer",
		},
		[]string{FormLabel, Outcome},
	)
	candidatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synthesis_candidates_total",
			Help: "Monotonic count of candidate predicates produced",
		},
		[]string{KindLabel},
	)
	solverCallsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "synthesis_solver_calls_total",
			Help: "Monotonic count of calls made to the SAT solver",
		},
	)
	sessionSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "synthesis_session_duration_seconds",
			Help:       "The duration of the search for a single label or group",
			Objectives: map[float64]float64{0.95: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{KindLabel, Outcome},
	)
	maxDepthReached = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "synthesis_max_depth_reached",
			Help: "Deepest quantifier nesting tried by any search of the given kind",
		},
		[]string{KindLabel},
	)
	depthLock sync.Mutex
	depths    = make(map[string]int)
)

// RegisterSynthesisWith registers every synthesis metric with r.
func RegisterSynthesisWith(r prometheus.Registerer) {
	r.MustRegister(searchPointsTotal)
	r.MustRegister(candidatesTotal)
	r.MustRegister(solverCallsTotal)
	r.MustRegister(sessionSummary)
	r.MustRegister(maxDepthReached)
}

func formValue(form string) string {
	if form != Disjunctive && form != Conjunctive {
		return unknownValue
	}
	return form
}

// EmitSearchPoint records one optimizer run and whether it produced a
// candidate.
func EmitSearchPoint(form string, satisfiable bool) {
	outcome := Unsatisfied
	if satisfiable {
		outcome = Satisfied
	}
	searchPointsTotal.WithLabelValues(formValue(form), outcome).Inc()
}

func EmitCandidates(kind string, n int) {
	candidatesTotal.WithLabelValues(kind).Add(float64(n))
}

func EmitSolverCalls(n int) {
	solverCallsTotal.Add(float64(n))
}

// EmitDepth raises the deepest nesting recorded for kind to depth.
func EmitDepth(kind string, depth int) {
	depthLock.Lock()
	defer depthLock.Unlock()
	if d, ok := depths[kind]; ok && d >= depth {
		return
	}
	depths[kind] = depth
	maxDepthReached.WithLabelValues(kind).Set(float64(depth))
}

func RegisterSessionSuccess(kind string, duration time.Duration) {
	sessionSummary.WithLabelValues(kind, Succeeded).Observe(duration.Seconds())
}

func RegisterSessionFailure(kind string, duration time.Duration) {
	sessionSummary.WithLabelValues(kind, Failed).Observe(duration.Seconds())
}

func RegisterSessionExhausted(kind string, duration time.Duration) {
	sessionSummary.WithLabelValues(kind, Exhausted).Observe(duration.Seconds())
}
