package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	for _, rgb := range []RGB{
		{R: 0, G: 0, B: 0},
		{R: 1, G: 1, B: 1},
		{R: 1, G: 0, B: 0},
		{R: 0.2, G: 0.6, B: 0.4},
	} {
		yuv := rgb.YUV()
		assert.GreaterOrEqual(t, yuv.Y, MinY)
		assert.LessOrEqual(t, yuv.Y, MaxY)
		assert.GreaterOrEqual(t, yuv.U, MinU)
		assert.LessOrEqual(t, yuv.U, MaxU)
		assert.GreaterOrEqual(t, yuv.V, MinV)
		assert.LessOrEqual(t, yuv.V, MaxV)

		back := yuv.RGB()
		assert.InDelta(t, rgb.R, back.R, 1e-2)
		assert.InDelta(t, rgb.G, back.G, 1e-2)
		assert.InDelta(t, rgb.B, back.B, 1e-2)
	}
}

func TestWithin(t *testing.T) {
	type tc struct {
		Name     string
		Color    YUV
		Center   YUV
		Radius   float64
		Expected bool
	}

	for _, tt := range []tc{
		{
			Name:     "same color",
			Color:    YUV{Y: 0.5, U: 0.1, V: -0.1},
			Center:   YUV{Y: 0.5, U: 0.1, V: -0.1},
			Expected: true,
		},
		{
			Name:     "on the boundary",
			Color:    YUV{Y: 0.25},
			Center:   YUV{Y: 0.5},
			Radius:   0.25,
			Expected: true,
		},
		{
			Name:     "one channel too far",
			Color:    YUV{Y: 0.5, U: 0.1, V: -0.1},
			Center:   YUV{Y: 0.4, U: 0.3, V: -0.1},
			Radius:   0.15,
			Expected: false,
		},
		{
			Name:     "every channel close",
			Color:    YUV{Y: 0.5, U: 0.1, V: -0.1},
			Center:   YUV{Y: 0.4, U: 0.3, V: -0.1},
			Radius:   0.25,
			Expected: true,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, Within(tt.Color, tt.Center, tt.Radius))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "(255, 0, 0)", RGB{R: 1}.String())
	assert.Equal(t, RGB{R: 1, G: 0, B: 1}, FromBytes(255, 0, 255))
}

func TestBytesRound(t *testing.T) {
	r, g, b := YUV{Y: 0.25}.RGB().Bytes()
	assert.Equal(t, []int{64, 64, 64}, []int{r, g, b})
	assert.Equal(t, "(191, 191, 191)", YUV{Y: 0.75}.RGB().String())

	// Rendering a color built from bytes gives the bytes back.
	for _, v := range []uint8{0, 1, 63, 64, 127, 128, 254, 255} {
		r, _, _ := FromBytes(v, 0, 0).Bytes()
		assert.Equal(t, int(v), r)
	}
}
