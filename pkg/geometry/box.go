package geometry

import "math"

// Box is an axis-aligned bounding box in image coordinates. Top grows
// downwards, so a smaller center Y means "higher" in the image.
type Box struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b Box) Right() float64 {
	return b.Left + b.Width
}

func (b Box) Bottom() float64 {
	return b.Top + b.Height
}

func (b Box) Area() float64 {
	return b.Width * b.Height
}

// CenterX returns the horizontal midpoint of the box.
func (b Box) CenterX() float64 {
	return b.Left + b.Width/2.0
}

// CenterY returns the vertical midpoint of the box.
func (b Box) CenterY() float64 {
	return b.Top + b.Height/2.0
}

// Intersection returns the area shared by both boxes.
func (b Box) Intersection(other Box) float64 {
	w := math.Min(b.Right(), other.Right()) - math.Max(b.Left, other.Left)
	h := math.Min(b.Bottom(), other.Bottom()) - math.Max(b.Top, other.Top)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// IOU returns the Jaccard index (intersection over union) of the two
// boxes, a value in [0, 1].
func (b Box) IOU(other Box) float64 {
	inter := b.Intersection(other)
	union := b.Area() + other.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// ContainmentFraction returns the fraction of other's area that lies
// inside b, a value in [0, 1].
func (b Box) ContainmentFraction(other Box) float64 {
	area := other.Area()
	if area <= 0 {
		return 0
	}
	return b.Intersection(other) / area
}

// Valid reports whether the box has a strictly positive size.
func (b Box) Valid() bool {
	return b.Width > 0 && b.Height > 0 &&
		!math.IsNaN(b.Left) && !math.IsNaN(b.Top) &&
		!math.IsInf(b.Width, 0) && !math.IsInf(b.Height, 0)
}
