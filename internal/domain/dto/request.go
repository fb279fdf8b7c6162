// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"

	"github.com/packwise/boxfit-service/internal/boxfit"
	"github.com/packwise/boxfit-service/internal/domain/model"
)

// RecommendRequest represents the JSON request body for the recommendation endpoint.
//
// ItemDimensions is required; the remaining fields narrow or reorder the
// evaluation. Boxes is optional - if not provided, the active catalog is used.
//
// @Description Request to score the catalog against an item
// @Example {"item_dimensions": [7, 5, 3]}
// @Example {"item_dimensions": [7, 5, 3], "levels": ["Standard Pack"], "strategies": ["Normal", "Cut Down"], "sort_by": "price"}
type RecommendRequest struct {
	// ItemDimensions are the item side lengths in inches, any order.
	ItemDimensions [3]float64 `json:"item_dimensions" binding:"required"`
	// Levels restricts evaluation to the named packing levels.
	// Empty means all levels.
	Levels []string `json:"levels,omitempty" example:"Standard Pack"`
	// Strategies restricts evaluation to the named strategies.
	// Empty means all strategies.
	Strategies []string `json:"strategies,omitempty" example:"Normal,Telescoping"`
	// Tiers restricts results to the named recommendation tiers.
	// Fits results always pass. Empty means all tiers.
	Tiers []string `json:"tiers,omitempty" example:"fits,possible"`
	// SortBy orders results by "score" (default) or "price".
	SortBy string `json:"sort_by,omitempty" example:"score"`
	// Boxes is an optional ad-hoc catalog evaluated instead of the stored one.
	Boxes []model.BoxSpec `json:"boxes,omitempty"`
} // @name RecommendRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *RecommendRequest) Validate() error {
	for _, d := range r.ItemDimensions {
		if d < 0 {
			return &ValidationError{
				Field:   "item_dimensions",
				Message: "dimensions must not be negative",
			}
		}
	}
	if r.ItemDimensions == [3]float64{} {
		return &ValidationError{
			Field:   "item_dimensions",
			Message: "at least one dimension must be positive",
		}
	}
	switch r.SortBy {
	case "", "score", "price":
	default:
		return &ValidationError{
			Field:   "sort_by",
			Message: `must be "score" or "price"`,
		}
	}
	for _, spec := range r.Boxes {
		if err := spec.Validate(); err != nil {
			return &ValidationError{Field: "boxes", Message: err.Error()}
		}
	}
	return nil
}

// ToQuery converts the request filters into an engine query.
func (r *RecommendRequest) ToQuery() (boxfit.Query, error) {
	q := boxfit.Query{
		ItemDims: boxfit.Dims(r.ItemDimensions),
	}
	if r.SortBy == "price" {
		q.SortMode = boxfit.SortPriceFirst
	}

	for _, name := range r.Levels {
		level, ok := boxfit.ParseLevel(name)
		if !ok {
			return boxfit.Query{}, &ValidationError{Field: "levels", Message: fmt.Sprintf("unknown level %q", name)}
		}
		q.Levels = append(q.Levels, level)
	}
	for _, name := range r.Strategies {
		strategy, ok := boxfit.ParseStrategy(name)
		if !ok {
			return boxfit.Query{}, &ValidationError{Field: "strategies", Message: fmt.Sprintf("unknown strategy %q", name)}
		}
		q.Strategies = append(q.Strategies, strategy)
	}
	for _, name := range r.Tiers {
		tier, ok := boxfit.ParseRecommendation(name)
		if !ok {
			return boxfit.Query{}, &ValidationError{Field: "tiers", Message: fmt.Sprintf("unknown tier %q", name)}
		}
		q.Tiers = append(q.Tiers, tier)
	}
	return q, nil
}

// UpdateCatalogRequest represents the JSON request body for replacing the box catalog.
type UpdateCatalogRequest struct {
	// Boxes is the list of catalog boxes to store.
	Boxes []model.BoxSpec `json:"boxes" binding:"required,min=1"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateCatalogRequest

// Validate checks every box in the catalog update.
func (r *UpdateCatalogRequest) Validate() error {
	if len(r.Boxes) == 0 {
		return &ValidationError{Field: "boxes", Message: "at least one box is required"}
	}
	for _, spec := range r.Boxes {
		if err := spec.Validate(); err != nil {
			return &ValidationError{Field: "boxes", Message: err.Error()}
		}
	}
	return nil
}
