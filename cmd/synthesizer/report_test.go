package main

import (
	"testing"

	"github.com/ghodss/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operator-framework/label-synthesizer/pkg/synthesis"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ast"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ir"
)

func TestReport(t *testing.T) {
	x := ast.ObjectVariable{Name: "x1"}
	objects := ast.Filter{
		Predicate: ast.PredicateLambda{Var: x, Body: ast.LabelIs{Var: x, Label: ast.ObjectLiteral{Label: "circle"}}},
		Objects:   ast.AllObjects{},
	}
	result := &synthesis.Result{
		Labels: []synthesis.LabelCandidates{
			{
				Label: ast.ObjectLiteral{Label: "target"},
				Candidates: []synthesis.Candidate[ast.LabelApply]{{
					Apply:   ast.LabelApply{Action: ast.ObjectLiteral{Label: "target"}, Objects: objects},
					Cost:    1,
					Form:    ir.Disjunctive,
					Depth:   1,
					Clauses: 5,
				}},
			},
			{
				Label:     ast.ObjectLiteral{Label: "other"},
				Exhausted: true,
			},
		},
		Groups: []synthesis.GroupCandidates{{
			Group: ast.GroupLiteral{Label: "round"},
			Candidates: []synthesis.Candidate[ast.GroupApply]{{
				Apply: ast.GroupApply{Action: ast.GroupLiteral{Label: "round"}, Objects: objects},
				Cost:  1,
				Form:  ir.Conjunctive,
			}},
		}},
	}

	data, err := yaml.Marshal(newReport(result))
	require.NoError(t, err)

	var decoded report
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded.Labels, 2)
	assert.Equal(t, "target", decoded.Labels[0].Name)
	assert.Equal(t, `LabelApply("target", Filter(fun x1 -> LabelIs(x1, "circle"), AllObjects()))`, decoded.Labels[0].Candidates[0].Program)
	assert.Equal(t, "disjunctive", decoded.Labels[0].Candidates[0].Form)
	assert.True(t, decoded.Labels[1].Exhausted)
	assert.Empty(t, decoded.Labels[1].Candidates)
	require.Len(t, decoded.Groups, 1)
	assert.Equal(t, "conjunctive", decoded.Groups[0].Candidates[0].Form)
	assert.Contains(t, string(data), "exhausted: true")
}

func TestConfigFromFlags(t *testing.T) {
	o := options{corpus: "corpus.yaml", maxDepth: 2, maxClauses: 7, candidates: 2, workers: 3, placement: true}
	require.NoError(t, o.validate())
	cfg := o.config(nil)
	assert.Equal(t, synthesis.DefaultInitialDepth, cfg.InitialDepth)
	assert.Equal(t, 2, cfg.MaxDepth)
	assert.Equal(t, 7, cfg.MaxClauses)
	assert.Equal(t, 2, cfg.MaxCandidates)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.UsePlacementSynthesis)
	assert.Nil(t, cfg.Tracer)
}

func TestValidateFlags(t *testing.T) {
	type tc struct {
		Name    string
		Options options
		Error   string
	}

	for _, tt := range []tc{
		{
			Name:    "defaults",
			Options: options{corpus: "corpus.yaml", maxDepth: synthesis.DefaultMaxDepth, maxClauses: synthesis.DefaultMaxClauses},
		},
		{
			Name:    "no corpus",
			Options: options{maxDepth: 1, maxClauses: 5},
			Error:   "--corpus is required",
		},
		{
			Name:    "depth below the first point",
			Options: options{corpus: "corpus.yaml", maxDepth: 0, maxClauses: synthesis.DefaultMaxClauses},
			Error:   "--max-depth must be at least 1",
		},
		{
			Name:    "clauses below the first point",
			Options: options{corpus: "corpus.yaml", maxDepth: 1, maxClauses: 4},
			Error:   "--max-clauses must be at least 5",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			err := tt.Options.validate()
			if tt.Error == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.Error)
		})
	}
}
