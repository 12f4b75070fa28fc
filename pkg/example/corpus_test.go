package example

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operator-framework/label-synthesizer/pkg/color"
	"github.com/operator-framework/label-synthesizer/pkg/geometry"
)

const corpusYAML = `
examples:
- name: a
  objects:
  - box: {left: 0, top: 0, width: 10, height: 10}
    base: circle
    precise: [target]
    groups: [g1]
    color: {r: 255, g: 0, b: 0}
  - box: {left: 20, top: 0, width: 10, height: 10}
    base: square
- objects:
  - box: {left: 0, top: 0, width: 5, height: 5}
    base: square
    color: {yuv: {y: 0.5, u: 0.1, v: -0.1}}
`

func TestParseCorpus(t *testing.T) {
	images, err := ParseCorpus([]byte(corpusYAML))
	require.NoError(t, err)
	require.Len(t, images, 2)

	a := images[0]
	assert.Equal(t, "a", a.Name())
	require.Len(t, a.Boxes(), 2)

	first := a.Boxes()[0]
	assert.Equal(t, geometry.Box{Left: 0, Top: 0, Width: 10, Height: 10}, first)
	assert.Equal(t, "circle", a.Base(first))
	assert.True(t, a.Precise(first).Has("target"))
	assert.True(t, a.Groups(first).Has("g1"))
	assert.Equal(t, color.FromBytes(255, 0, 0).YUV(), a.AverageColor(first))

	second := a.Boxes()[1]
	assert.Equal(t, "square", a.Base(second))
	assert.Equal(t, 0, a.Precise(second).Len())
	assert.Equal(t, color.YUV{}, a.AverageColor(second))

	b := images[1]
	assert.Equal(t, "example-1", b.Name())
	assert.Equal(t, color.YUV{Y: 0.5, U: 0.1, V: -0.1}, b.AverageColor(b.Boxes()[0]))
}

func TestParseCorpusErrors(t *testing.T) {
	type tc struct {
		Name  string
		Input string
		Error string
	}

	for _, tt := range []tc{
		{
			Name:  "empty corpus",
			Input: "examples: []",
			Error: "corpus contains no examples",
		},
		{
			Name: "degenerate box",
			Input: `
examples:
- name: bad
  objects:
  - box: {left: 0, top: 0, width: 0, height: 10}
    base: circle`,
			Error: "bad: object 0 has degenerate box",
		},
		{
			Name: "missing base label",
			Input: `
examples:
- name: bad
  objects:
  - box: {left: 0, top: 0, width: 1, height: 1}`,
			Error: "bad: object 0 has no base label",
		},
		{
			Name: "duplicate box",
			Input: `
examples:
- name: bad
  objects:
  - box: {left: 0, top: 0, width: 1, height: 1}
    base: a
  - box: {left: 0, top: 0, width: 1, height: 1}
    base: b`,
			Error: "bad: object 1 duplicates box",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := ParseCorpus([]byte(tt.Input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.Error)
		})
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(corpusYAML), 0o600))

	images, err := LoadCorpus(path)
	require.NoError(t, err)
	assert.Len(t, Examples(images), 2)

	_, err = LoadCorpus(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading corpus")
}
