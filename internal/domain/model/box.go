// Package model defines the core domain entities for the boxfit service.
package model

import (
	"fmt"

	"github.com/packwise/boxfit-service/internal/boxfit"
)

// Box type discriminators for catalog entries.
const (
	BoxTypeNormal = "normal"
	BoxTypeCustom = "custom"
)

// BoxSpec is the catalog representation of a box. It is the document form
// stored in MongoDB and accepted over HTTP and YAML; ToBox converts it into
// the engine's evaluated form.
//
// Normal boxes open on their smallest side. Custom boxes carry an explicit
// open dimension index into Dimensions.
//
// @Description Catalog box with dimensions, opening and pricing
// @Example {"name": "medium cube", "type": "normal", "dimensions": [6, 6, 6], "prices": [5.97, 8.82, 10.77, 12.49]}
type BoxSpec struct {
	// Name is a human-readable label for the box
	Name string `bson:"name" json:"name" yaml:"name" example:"medium cube"`
	// Type is either "normal" or "custom"
	Type string `bson:"type" json:"type" yaml:"type" example:"normal"`
	// Dimensions are the box side lengths in inches, any order
	Dimensions [3]float64 `bson:"dimensions" json:"dimensions" yaml:"dimensions"`
	// OpenDim indexes the open side in Dimensions (custom boxes only)
	OpenDim *int `bson:"open_dim,omitempty" json:"open_dim,omitempty" yaml:"open_dim,omitempty"`
	// Prices is the flat per-level price list [no pack, standard, fragile, custom]
	Prices []float64 `bson:"prices,omitempty" json:"prices,omitempty" yaml:"prices,omitempty"`
	// Pricing is the itemized alternative to Prices
	Pricing *boxfit.ItemizedPricing `bson:"pricing,omitempty" json:"pricing,omitempty" yaml:"pricing,omitempty"`
}

// Validate checks that the spec describes a usable box.
func (s BoxSpec) Validate() error {
	switch s.Type {
	case BoxTypeNormal:
		if s.OpenDim != nil {
			return fmt.Errorf("box %q: normal boxes derive their opening, open_dim must be unset", s.Name)
		}
	case BoxTypeCustom:
		if s.OpenDim == nil {
			return fmt.Errorf("box %q: custom boxes require open_dim", s.Name)
		}
		if *s.OpenDim < 0 || *s.OpenDim > 2 {
			return fmt.Errorf("box %q: open_dim %d out of range [0,2]", s.Name, *s.OpenDim)
		}
	default:
		return fmt.Errorf("box %q: unknown type %q", s.Name, s.Type)
	}

	for i, d := range s.Dimensions {
		if d <= 0 {
			return fmt.Errorf("box %q: dimension %d must be positive, got %v", s.Name, i, d)
		}
	}

	if len(s.Prices) > 0 && s.Pricing != nil {
		return fmt.Errorf("box %q: prices and pricing are mutually exclusive", s.Name)
	}
	if len(s.Prices) > 0 && len(s.Prices) != boxfit.NumLevels {
		return fmt.Errorf("box %q: prices must list %d levels, got %d", s.Name, boxfit.NumLevels, len(s.Prices))
	}
	return nil
}

// ToBox converts the spec into an engine box.
func (s BoxSpec) ToBox() (boxfit.Box, error) {
	if err := s.Validate(); err != nil {
		return boxfit.Box{}, err
	}

	var pricing boxfit.Pricing
	switch {
	case s.Pricing != nil:
		pricing = *s.Pricing
	case len(s.Prices) == boxfit.NumLevels:
		var flat boxfit.FlatPricing
		copy(flat[:], s.Prices)
		pricing = flat
	}

	dims := boxfit.Dims(s.Dimensions)
	if s.Type == BoxTypeCustom {
		return boxfit.NewBox(dims, *s.OpenDim, pricing), nil
	}
	return boxfit.NewNormalBox(dims, pricing), nil
}

// ToBoxes converts a list of specs, reporting the first invalid entry.
func ToBoxes(specs []BoxSpec) ([]boxfit.Box, error) {
	boxes := make([]boxfit.Box, 0, len(specs))
	for _, spec := range specs {
		box, err := spec.ToBox()
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, box)
	}
	return boxes, nil
}
