package main

import (
	"github.com/operator-framework/label-synthesizer/pkg/synthesis"
)

type candidateReport struct {
	Program string `json:"program"`
	Cost    int    `json:"cost"`
	Form    string `json:"form"`
	Depth   int    `json:"depth"`
	Clauses int    `json:"clauses"`
}

type targetReport struct {
	Name       string            `json:"name"`
	Exhausted  bool              `json:"exhausted,omitempty"`
	Candidates []candidateReport `json:"candidates,omitempty"`
}

// report is the serialized form of a synthesis.Result.
type report struct {
	Labels []targetReport `json:"labels,omitempty"`
	Groups []targetReport `json:"groups,omitempty"`
}

func candidates[A interface{ String() string }](cs []synthesis.Candidate[A]) []candidateReport {
	var result []candidateReport
	for _, c := range cs {
		result = append(result, candidateReport{
			Program: c.Apply.String(),
			Cost:    c.Cost,
			Form:    c.Form.String(),
			Depth:   c.Depth,
			Clauses: c.Clauses,
		})
	}
	return result
}

func newReport(r *synthesis.Result) report {
	var rep report
	for _, l := range r.Labels {
		rep.Labels = append(rep.Labels, targetReport{
			Name:       l.Label.Label,
			Exhausted:  l.Exhausted,
			Candidates: candidates(l.Candidates),
		})
	}
	for _, g := range r.Groups {
		rep.Groups = append(rep.Groups, targetReport{
			Name:       g.Group.Label,
			Exhausted:  g.Exhausted,
			Candidates: candidates(g.Candidates),
		})
	}
	return rep
}
