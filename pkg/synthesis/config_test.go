package synthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operator-framework/label-synthesizer/pkg/synthesis/solver"
)

func TestConfigComplete(t *testing.T) {
	cfg := Config{UsePlacementSynthesis: true}.Complete()
	assert.True(t, cfg.UsePlacementSynthesis)
	assert.False(t, cfg.UseColorSynthesis)
	assert.Equal(t, DefaultInitialDepth, cfg.InitialDepth)
	assert.Equal(t, DefaultInitialClauses, cfg.InitialClauses)
	assert.Equal(t, DefaultClauseStep, cfg.ClauseStep)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, DefaultMaxClauses, cfg.MaxClauses)
	assert.Equal(t, DefaultMaxCandidates, cfg.MaxCandidates)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.NotNil(t, cfg.Logger)
	assert.Equal(t, solver.DefaultTracer{}, cfg.Tracer)
	require.NoError(t, cfg.Validate())
}

func TestConfigCompleteKeepsExplicitValues(t *testing.T) {
	cfg := Config{InitialDepth: 0, MaxDepth: 1, InitialClauses: 20}.Complete()
	assert.Equal(t, 0, cfg.InitialDepth)
	assert.Equal(t, 1, cfg.MaxDepth)
	assert.Equal(t, 20, cfg.InitialClauses)
	assert.Equal(t, 20, cfg.MaxClauses)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	type tc struct {
		Name   string
		Config Config
		Errors []string
	}

	valid := Config{}.Complete()
	for _, tt := range []tc{
		{
			Name:   "defaults",
			Config: valid,
		},
		{
			Name: "negative depth",
			Config: func() Config {
				c := valid
				c.InitialDepth = -1
				return c
			}(),
			Errors: []string{"initial depth -1 is negative"},
		},
		{
			Name: "initial point out of bounds",
			Config: func() Config {
				c := valid
				c.InitialDepth = 5
				c.InitialClauses = 20
				return c
			}(),
			Errors: []string{
				"initial depth 5 exceeds max depth 3",
				"initial clause count 20 exceeds max clause count 11",
			},
		},
		{
			Name: "non-positive counts",
			Config: func() Config {
				c := valid
				c.ClauseStep = -2
				c.MaxCandidates = -1
				c.Workers = -3
				return c
			}(),
			Errors: []string{
				"clause step -2 must be positive",
				"candidate limit -1 must be positive",
				"worker count -3 must be positive",
			},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			err := tt.Config.Validate()
			if len(tt.Errors) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, e := range tt.Errors {
				assert.Contains(t, err.Error(), e)
			}
		})
	}
}
