package boxfit

import (
	"fmt"
	"math"
	"strconv"
)

// Strategy identifies one of the five packing-strategy models.
type Strategy int

const (
	// Normal places the item straight into the box, axes paired by rank.
	Normal Strategy = iota
	// CutDown trims the box along its opening axis to the item plus clearance.
	CutDown
	// Telescoping stacks identical boxes along the opening axis.
	Telescoping
	// Cheating rotates the item diagonally inside the box cross-section.
	Cheating
	// Flattened folds the box into an oversized flat sleeve.
	Flattened

	// NumStrategies is the number of packing strategies.
	NumStrategies = 5
)

// Strategies lists all strategies in evaluation order.
var Strategies = [NumStrategies]Strategy{Normal, CutDown, Telescoping, Cheating, Flattened}

var strategyNames = [NumStrategies]string{"Normal", "Cut Down", "Telescoping", "Cheating", "Flattened"}

// String returns the display name of the strategy.
func (s Strategy) String() string {
	if s < 0 || s >= NumStrategies {
		return "Unknown"
	}
	return strategyNames[s]
}

// MarshalJSON renders the strategy as its display name.
func (s Strategy) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

// ParseStrategy resolves a display name back to a Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), true
		}
	}
	return Normal, false
}

// Result is one candidate produced per box, packing level, and strategy.
// Score is the sum of squares of the three (possibly negative) per-axis
// clearances used by the strategy's geometric model; it is comparable only
// within that convention.
type Result struct {
	// Dims are the box's sorted dimensions.
	Dims Dims `json:"dimensions"`
	// Level is the packing level evaluated.
	Level PackingLevel `json:"pack_level"`
	// Price in the catalog's currency.
	Price float64 `json:"price"`
	// Recommendation is the feasibility tier.
	Recommendation Recommendation `json:"recommendation"`
	// Comment is a free-text explanation of how the box would be
	// modified; empty for the Normal strategy.
	Comment string `json:"comment,omitempty"`
	// Score is the tightness metric, lower is a closer fit.
	Score float64 `json:"score"`
	// Strategy identifies the packing model that produced this result.
	Strategy Strategy `json:"strategy"`
}

// fmtDim renders a dimension without trailing zeros ("6", "4.5").
func fmtDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fmtDim1 renders a dimension rounded to one decimal place.
func fmtDim1(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

func dimsComment(prefix string, a, b, c string) string {
	return fmt.Sprintf("%s %s x %s x %s", prefix, a, b, c)
}
