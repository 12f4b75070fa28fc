package synthesis

// point is one (depth, clauses) pair visited by the search.
type point struct {
	Depth   int
	Clauses int
}

// deepening schedules search points. Every depth carries its own clause
// count, which grows by the clause step each time that depth fails. After
// a failure the search rotates to the next depth; a new depth is only
// opened once every existing depth has been retried since the last one
// was opened.
type deepening struct {
	clauses    []int
	depth      int
	grown      bool
	initial    int
	step       int
	maxDepth   int
	maxClauses int
}

func newDeepening(cfg Config) *deepening {
	levels := 3
	if cfg.InitialDepth+1 > levels {
		levels = cfg.InitialDepth + 1
	}
	d := &deepening{
		clauses:    make([]int, levels),
		depth:      cfg.InitialDepth,
		grown:      true,
		initial:    cfg.InitialClauses,
		step:       cfg.ClauseStep,
		maxDepth:   cfg.MaxDepth,
		maxClauses: cfg.MaxClauses,
	}
	for i := range d.clauses {
		d.clauses[i] = d.initial
	}
	return d
}

// point returns the current search point.
func (d *deepening) point() point {
	return point{Depth: d.depth, Clauses: d.clauses[d.depth]}
}

func (d *deepening) admissible() bool {
	return d.depth <= d.maxDepth && d.clauses[d.depth] <= d.maxClauses
}

// exhausted reports whether no admissible point remains, either among the
// opened depths or among those that could still be opened.
func (d *deepening) exhausted() bool {
	for i, n := range d.clauses {
		if i > d.maxDepth {
			break
		}
		if n <= d.maxClauses {
			return false
		}
	}
	return len(d.clauses) > d.maxDepth
}

func (d *deepening) rotate() {
	d.depth++
	if d.depth < len(d.clauses) {
		return
	}
	if !d.grown && len(d.clauses) <= d.maxDepth {
		d.clauses = append(d.clauses, d.initial)
		d.grown = true
		return
	}
	d.depth = 0
	d.grown = false
}

// next records a failure at the current point and moves to the next
// admissible one. It returns false when the bounds are exhausted.
func (d *deepening) next() bool {
	d.clauses[d.depth] += d.step
	for !d.exhausted() {
		d.rotate()
		if d.admissible() {
			return true
		}
	}
	return false
}
