package synthesis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/operator-framework/label-synthesizer/pkg/color"
	"github.com/operator-framework/label-synthesizer/pkg/example"
	"github.com/operator-framework/label-synthesizer/pkg/example/examplefakes"
	"github.com/operator-framework/label-synthesizer/pkg/geometry"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ast"
)

func TestExtractLibrary(t *testing.T) {
	red := color.FromBytes(255, 0, 0).YUV()
	blue := color.FromBytes(0, 0, 255).YUV()

	a, err := example.NewImage("a",
		example.Object{Box: geometry.Box{Width: 1, Height: 1}, Base: "square", Precise: []string{"top", "left"}, Groups: []string{"pair"}, Color: blue},
		example.Object{Box: geometry.Box{Left: 2, Width: 1, Height: 1}, Base: "circle", Color: red},
	)
	require.NoError(t, err)
	b, err := example.NewImage("b",
		example.Object{Box: geometry.Box{Width: 1, Height: 1}, Base: "circle", Precise: []string{"top"}, Color: blue},
	)
	require.NoError(t, err)

	lib := extractLibrary([]example.Example{a, b})
	expected := &library{
		base:    []ast.ObjectLiteral{{Label: "circle"}, {Label: "square"}},
		precise: []ast.ObjectLiteral{{Label: "left"}, {Label: "top"}},
		groups:  []ast.GroupLiteral{{Label: "pair"}},
		palette: []color.YUV{blue, red},
	}
	if diff := cmp.Diff(expected, lib, cmp.AllowUnexported(library{})); diff != "" {
		t.Errorf("unexpected library (-want +got):\n%s", diff)
	}
}

func TestExtractLibraryQueriesEveryBox(t *testing.T) {
	boxes := []geometry.Box{{Width: 1, Height: 1}, {Left: 5, Width: 1, Height: 1}}
	fake := &examplefakes.FakeExample{}
	fake.BoxesReturns(boxes)
	fake.BaseStub = func(b geometry.Box) string {
		if b.Left > 0 {
			return "triangle"
		}
		return "square"
	}
	fake.PreciseReturns(sets.New[string]("marked"))

	lib := extractLibrary([]example.Example{fake})
	assert.Equal(t, []ast.ObjectLiteral{{Label: "square"}, {Label: "triangle"}}, lib.base)
	assert.Equal(t, []ast.ObjectLiteral{{Label: "marked"}}, lib.precise)
	assert.Empty(t, lib.groups)
	assert.Equal(t, []color.YUV{{}}, lib.palette)

	assert.Equal(t, 1, fake.BoxesCallCount())
	assert.Equal(t, len(boxes), fake.BaseCallCount())
	assert.Equal(t, len(boxes), fake.GroupsCallCount())
	assert.Equal(t, len(boxes), fake.AverageColorCallCount())
}
