package boxfit

import "strconv"

// Recommendation is the feasibility tier of a candidate result.
// The order is fixed: Impossible < NoSpace < Possible < Fits.
type Recommendation int

const (
	// Impossible means the item does not physically fit.
	Impossible Recommendation = iota
	// NoSpace means the item fits with zero margin but the packing level
	// promised nonzero clearance.
	NoSpace
	// Possible means the item fits but the clearance target is not fully met.
	Possible
	// Fits means the clearance target is met.
	Fits

	// NumRecommendations is the number of feasibility tiers.
	NumRecommendations = 4
)

var recommendationNames = [NumRecommendations]string{"impossible", "no space", "possible", "fits"}

// String returns the display name of the tier.
func (r Recommendation) String() string {
	if r < 0 || r >= NumRecommendations {
		return "unknown"
	}
	return recommendationNames[r]
}

// MarshalJSON renders the tier as its display name.
func (r Recommendation) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

// ParseRecommendation resolves a display name back to a Recommendation.
func ParseRecommendation(name string) (Recommendation, bool) {
	for i, n := range recommendationNames {
		if n == name {
			return Recommendation(i), true
		}
	}
	return Impossible, false
}

// Classify maps per-dimension clearances to a feasibility tier for the
// given packing level. Increasing every clearance never downgrades the
// tier.
func Classify(clearances Dims, level PackingLevel) Recommendation {
	m := clearances.Min()
	switch {
	case m < 0:
		return Impossible
	case m == 0 && level != NoPack:
		return NoSpace
	case m < level.Clearance():
		return Possible
	default:
		return Fits
	}
}
