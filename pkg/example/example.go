//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o examplefakes/fake_example.go . Example

package example

import (
	"fmt"
	"strings"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/operator-framework/label-synthesizer/pkg/color"
	"github.com/operator-framework/label-synthesizer/pkg/geometry"
)

// Example is one labeled image: a finite set of boxes, each carrying a
// base label, a set of precise labels, a set of group labels and an
// average color. Implementations must be deterministic and read-only.
type Example interface {
	// Boxes returns the boxes of the image in a stable order.
	Boxes() []geometry.Box
	// Base returns the base label of the box.
	Base(b geometry.Box) string
	// Precise returns the precise labels attached to the box.
	Precise(b geometry.Box) sets.Set[string]
	// Groups returns the group labels attached to the box.
	Groups(b geometry.Box) sets.Set[string]
	// AverageColor returns the mean color of the pixels under the box.
	AverageColor(b geometry.Box) color.YUV
}

// Object describes a single labeled box.
type Object struct {
	Box     geometry.Box
	Base    string
	Precise []string
	Groups  []string
	Color   color.YUV
}

type entry struct {
	base    string
	precise sets.Set[string]
	groups  sets.Set[string]
	color   color.YUV
}

// Image is an in-memory Example.
type Image struct {
	name    string
	boxes   []geometry.Box
	entries map[geometry.Box]entry
}

var _ Example = &Image{}

// NewImage validates the objects and returns an Image holding them in
// the given order. Boxes must be well-formed, unique within the image and
// carry a base label.
func NewImage(name string, objects ...Object) (*Image, error) {
	img := &Image{
		name:    name,
		boxes:   make([]geometry.Box, 0, len(objects)),
		entries: make(map[geometry.Box]entry, len(objects)),
	}

	var errs []error
	for i, o := range objects {
		if !o.Box.Valid() {
			errs = append(errs, fmt.Errorf("%s: object %d has degenerate box %+v", name, i, o.Box))
			continue
		}
		if strings.TrimSpace(o.Base) == "" {
			errs = append(errs, fmt.Errorf("%s: object %d has no base label", name, i))
			continue
		}
		if _, ok := img.entries[o.Box]; ok {
			errs = append(errs, fmt.Errorf("%s: object %d duplicates box %+v", name, i, o.Box))
			continue
		}
		img.boxes = append(img.boxes, o.Box)
		img.entries[o.Box] = entry{
			base:    o.Base,
			precise: sets.New[string](o.Precise...),
			groups:  sets.New[string](o.Groups...),
			color:   o.Color,
		}
	}
	if err := utilerrors.NewAggregate(errs); err != nil {
		return nil, err
	}

	return img, nil
}

// Name identifies the image in diagnostics.
func (img *Image) Name() string {
	return img.name
}

func (img *Image) Boxes() []geometry.Box {
	return img.boxes
}

func (img *Image) Base(b geometry.Box) string {
	return img.entries[b].base
}

func (img *Image) Precise(b geometry.Box) sets.Set[string] {
	return img.entries[b].precise
}

func (img *Image) Groups(b geometry.Box) sets.Set[string] {
	return img.entries[b].groups
}

func (img *Image) AverageColor(b geometry.Box) color.YUV {
	return img.entries[b].color
}

func (img *Image) String() string {
	return fmt.Sprintf("Image(%s, %d objects)", img.name, len(img.boxes))
}
