package boxfit

import "sort"

// SortMode selects the composite ranking key.
//
// Both keys fold score and price into a single ascending number with a
// x1000 weight on the leading term. The weighting assumes both terms stay
// in the low hundreds; catalogs producing scores or prices at 1000 and
// beyond silently degrade the ordering. The formula is preserved as-is
// for compatibility with existing catalogs.
type SortMode int

const (
	// SortScoreFirst prioritizes tightness, price as tiebreak.
	SortScoreFirst SortMode = iota
	// SortPriceFirst prioritizes price, tightness as tiebreak.
	SortPriceFirst
)

// Query is the immutable input for one evaluation pass: the item to pack
// and the display filters. Empty filter slices select everything. Results
// in the Fits tier always pass the tier filter.
type Query struct {
	// ItemDims are the item's dimensions in any order.
	ItemDims Dims
	// Levels restricts the packing levels evaluated for display.
	Levels []PackingLevel
	// Strategies restricts the packing strategies for display.
	Strategies []Strategy
	// Tiers restricts the feasibility tiers shown.
	Tiers []Recommendation
	// SortMode selects the ranking key.
	SortMode SortMode
}

// sortKey folds a result into the composite ranking number.
func (m SortMode) sortKey(r Result) float64 {
	if m == SortPriceFirst {
		return r.Price*1000 + r.Score
	}
	return r.Score*1000 + r.Price
}

// Evaluate computes the full cross product of boxes, packing levels, and
// strategies for the queried item, filters by the query's enabled sets,
// and orders by the composite key, ascending. The catalog is small (tens
// of boxes) and each evaluation is O(1), so the whole product is always
// recomputed; there is no caching or partial invalidation at this layer.
func Evaluate(catalog []Box, q Query) []Result {
	item := q.ItemDims.Sorted()

	levelEnabled := enabledSet(q.Levels, NumLevels)
	strategyEnabled := enabledSet(q.Strategies, NumStrategies)
	tierEnabled := enabledSet(q.Tiers, NumRecommendations)
	// Fits is always implicitly enabled for display.
	tierEnabled[Fits] = true

	results := make([]Result, 0, len(catalog)*NumLevels*NumStrategies)
	for _, box := range catalog {
		for _, level := range Levels {
			if !levelEnabled[level] {
				continue
			}
			for _, strategy := range Strategies {
				if !strategyEnabled[strategy] {
					continue
				}
				r := box.Evaluate(strategy, level, item)
				if !tierEnabled[r.Recommendation] {
					continue
				}
				results = append(results, r)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return q.SortMode.sortKey(results[i]) < q.SortMode.sortKey(results[j])
	})

	return results
}

// enabledSet turns a filter slice into a lookup array. An empty filter
// enables everything.
func enabledSet[T ~int](selected []T, n int) []bool {
	enabled := make([]bool, n)
	if len(selected) == 0 {
		for i := range enabled {
			enabled[i] = true
		}
		return enabled
	}
	for _, v := range selected {
		if v >= 0 && int(v) < n {
			enabled[v] = true
		}
	}
	return enabled
}
