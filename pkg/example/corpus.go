package example

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/operator-framework/label-synthesizer/pkg/color"
	"github.com/operator-framework/label-synthesizer/pkg/geometry"
)

// Corpus is the on-disk form of a set of labeled images.
//
//	examples:
//	- name: street-01
//	  objects:
//	  - box: {left: 10, top: 20, width: 30, height: 40}
//	    base: car
//	    precise: [parked]
//	    groups: [row-1]
//	    color: {r: 200, g: 10, b: 10}
type Corpus struct {
	Examples []ImageSpec `json:"examples"`
}

type ImageSpec struct {
	Name    string       `json:"name"`
	Objects []ObjectSpec `json:"objects"`
}

type ObjectSpec struct {
	Box     geometry.Box `json:"box"`
	Base    string       `json:"base"`
	Precise []string     `json:"precise,omitempty"`
	Groups  []string     `json:"groups,omitempty"`
	Color   *ColorSpec   `json:"color,omitempty"`
}

// ColorSpec is an 8-bit RGB triple. YUV, when set, takes precedence.
type ColorSpec struct {
	R   uint8      `json:"r"`
	G   uint8      `json:"g"`
	B   uint8      `json:"b"`
	YUV *color.YUV `json:"yuv,omitempty"`
}

func (c *ColorSpec) yuv() color.YUV {
	if c == nil {
		return color.YUV{}
	}
	if c.YUV != nil {
		return *c.YUV
	}
	return color.FromBytes(c.R, c.G, c.B).YUV()
}

// LoadCorpus reads a YAML or JSON corpus from path.
func LoadCorpus(path string) ([]*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading corpus %s", path)
	}
	images, err := ParseCorpus(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing corpus %s", path)
	}
	return images, nil
}

// ParseCorpus decodes a YAML or JSON corpus and validates every image.
func ParseCorpus(data []byte) ([]*Image, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "decoding corpus")
	}
	if len(c.Examples) == 0 {
		return nil, fmt.Errorf("corpus contains no examples")
	}

	var (
		images []*Image
		errs   []error
	)
	for i, doc := range c.Examples {
		name := doc.Name
		if name == "" {
			name = fmt.Sprintf("example-%d", i)
		}
		objects := make([]Object, len(doc.Objects))
		for j, o := range doc.Objects {
			objects[j] = Object{
				Box:     o.Box,
				Base:    o.Base,
				Precise: o.Precise,
				Groups:  o.Groups,
				Color:   o.Color.yuv(),
			}
		}
		img, err := NewImage(name, objects...)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		images = append(images, img)
	}
	if err := utilerrors.NewAggregate(errs); err != nil {
		return nil, err
	}

	return images, nil
}

// Examples widens a slice of images to the Example interface.
func Examples(images []*Image) []Example {
	result := make([]Example, len(images))
	for i, img := range images {
		result[i] = img
	}
	return result
}
