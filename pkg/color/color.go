// Package color holds the three-channel color values sampled from
// labeled objects. Colors are compared in YUV space; RGB is used only for
// display.
package color

import (
	"fmt"
	"math"
)

// YUV is an analog-YUV color (BT.601 weights).
type YUV struct {
	Y float64 `json:"y"`
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// RGB is a color with each channel in [0, 1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

const (
	MinY = 0.0
	MaxY = 1.0
	MinU = -0.436
	MaxU = 0.436
	MinV = -0.615
	MaxV = 0.615
)

// YUV converts an RGB color to YUV.
func (c RGB) YUV() YUV {
	y := 0.299*c.R + 0.587*c.G + 0.114*c.B
	return YUV{
		Y: y,
		U: 0.492 * (c.B - y),
		V: 0.877 * (c.R - y),
	}
}

// RGB converts a YUV color back to RGB, clamping each channel to [0, 1].
func (c YUV) RGB() RGB {
	return RGB{
		R: clamp(c.Y + c.V/0.877),
		G: clamp(c.Y - 0.395*c.U - 0.581*c.V),
		B: clamp(c.Y + c.U/0.492),
	}
}

// Bytes returns the 8-bit channel values used when rendering a color.
func (c RGB) Bytes() (r, g, b int) {
	return channelByte(c.R), channelByte(c.G), channelByte(c.B)
}

func (c RGB) String() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("(%d, %d, %d)", r, g, b)
}

func (c YUV) String() string {
	return fmt.Sprintf("yuv(%g, %g, %g)", c.Y, c.U, c.V)
}

// FromBytes builds an RGB color from 8-bit channel values.
func FromBytes(r, g, b uint8) RGB {
	return RGB{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// Within reports whether center lies within radius of c on every
// channel, that is c-radius <= center <= c+radius.
func Within(c, center YUV, radius float64) bool {
	return inRange(c.Y, center.Y, radius) && inRange(c.U, center.U, radius) && inRange(c.V, center.V, radius)
}

// inRange is the single channel test of Within.
func inRange(v, center, radius float64) bool {
	return center >= v-radius && center <= v+radius
}

func channelByte(x float64) int {
	return int(math.Round(x * 255.0))
}

func clamp(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
