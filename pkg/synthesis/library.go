package synthesis

import (
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/operator-framework/label-synthesizer/pkg/color"
	"github.com/operator-framework/label-synthesizer/pkg/example"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ast"
)

// library holds the vocabulary observed across a set of examples.
type library struct {
	base    []ast.ObjectLiteral
	precise []ast.ObjectLiteral
	groups  []ast.GroupLiteral
	palette []color.YUV
	// colors is derived from palette on demand, see withColors.
	colors *colorDomain
}

// withColors derives the color domain of the palette.
func (l *library) withColors() *library {
	l.colors = newColorDomain(l.palette)
	return l
}

// extractLibrary collects the base, precise and group labels of every
// box, sorted, and the distinct average colors in order of first
// appearance.
func extractLibrary(examples []example.Example) *library {
	base := sets.New[string]()
	precise := sets.New[string]()
	groups := sets.New[string]()
	seen := make(map[color.YUV]struct{})
	lib := &library{}

	for _, ex := range examples {
		for _, b := range ex.Boxes() {
			base.Insert(ex.Base(b))
			precise = precise.Union(ex.Precise(b))
			groups = groups.Union(ex.Groups(b))
			c := ex.AverageColor(b)
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				lib.palette = append(lib.palette, c)
			}
		}
	}

	for _, l := range sets.List(base) {
		lib.base = append(lib.base, ast.ObjectLiteral{Label: l})
	}
	for _, l := range sets.List(precise) {
		lib.precise = append(lib.precise, ast.ObjectLiteral{Label: l})
	}
	for _, l := range sets.List(groups) {
		lib.groups = append(lib.groups, ast.GroupLiteral{Label: l})
	}
	return lib
}
