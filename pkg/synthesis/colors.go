package synthesis

import (
	"math"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/operator-framework/label-synthesizer/pkg/color"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/ir"
	"github.com/operator-framework/label-synthesizer/pkg/synthesis/solver"
)

// colorDomain holds the values the unknowns of a color comparison may
// take. Only observed colors are ever compared, and every set of them
// that some center and radius select is also selected by a center and
// radius from the domain.
type colorDomain struct {
	radii   []float64
	centers [3][]float64
}

// newColorDomain derives the candidate radii and channel centers of
// palette, or returns nil for an empty palette.
//
// Any set of observed colors that some center and radius select is also
// selected with the radius set to half the largest per-channel spread of
// the set, so radii are minColorRadius and every per-channel half
// distance above it. For a fixed radius r the selected set changes only
// where a center crosses v-r or v+r for an observed channel value v;
// centers are those breakpoints and the midpoints between them, clamped
// to the channel bounds.
func newColorDomain(palette []color.YUV) *colorDomain {
	if len(palette) == 0 {
		return nil
	}
	channels := [3][]float64{}
	for _, c := range palette {
		channels[0] = append(channels[0], c.Y)
		channels[1] = append(channels[1], c.U)
		channels[2] = append(channels[2], c.V)
	}

	radii := sets.New(minColorRadius)
	for _, vs := range channels {
		for i := range vs {
			for j := i + 1; j < len(vs); j++ {
				if r := math.Abs(vs[i]-vs[j]) / 2; r > minColorRadius {
					radii.Insert(r)
				}
			}
		}
	}

	d := &colorDomain{radii: sets.List(radii)}
	bounds := [3][2]float64{
		{color.MinY, color.MaxY},
		{color.MinU, color.MaxU},
		{color.MinV, color.MaxV},
	}
	for i, vs := range channels {
		d.centers[i] = centers(vs, d.radii, bounds[i][0], bounds[i][1])
	}
	return d
}

func centers(values, radii []float64, lower, upper float64) []float64 {
	clamp := func(x float64) float64 {
		return math.Max(lower, math.Min(upper, x))
	}
	breakpoints := sets.New(lower, upper)
	for _, v := range values {
		for _, r := range radii {
			breakpoints.Insert(clamp(v-r), clamp(v+r))
		}
	}
	sorted := sets.List(breakpoints)
	result := sets.New(sorted...)
	for i := 1; i < len(sorted); i++ {
		result.Insert((sorted[i-1] + sorted[i]) / 2)
	}
	return sets.List(result)
}

// center declares the channel unknowns of one color comparison.
func (d *colorDomain) center(ctx *solver.Context) ir.ColorCenter {
	return ir.ColorCenter{
		Y: ctx.NewInterval(color.MinY, color.MaxY, d.centers[0]...),
		U: ctx.NewInterval(color.MinU, color.MaxU, d.centers[1]...),
		V: ctx.NewInterval(color.MinV, color.MaxV, d.centers[2]...),
	}
}

// radius declares the radius unknown of one color comparison.
func (d *colorDomain) radius(ctx *solver.Context) *solver.Real {
	return ctx.NewReal(minColorRadius, d.radii...)
}
