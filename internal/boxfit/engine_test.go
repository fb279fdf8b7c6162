package boxfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCatalog() []Box {
	return []Box{
		NewNormalBox(Dims{6, 6, 6}, FlatPricing{5.97, 8.82, 10.77, 12.49}),
		NewNormalBox(Dims{12, 9, 6}, FlatPricing{7.25, 10.40, 12.80, 15.10}),
	}
}

func TestEvaluateFullCrossProduct(t *testing.T) {
	results := Evaluate(testCatalog(), Query{ItemDims: Dims{4, 4, 4}})

	// Every box yields 4 levels x 5 strategies.
	assert.Len(t, results, 2*NumLevels*NumStrategies)
}

func TestEvaluateSortsItemDims(t *testing.T) {
	catalog := testCatalog()

	// Item dims are order-insensitive.
	a := Evaluate(catalog, Query{ItemDims: Dims{2, 6, 4}})
	b := Evaluate(catalog, Query{ItemDims: Dims{6, 4, 2}})
	assert.Equal(t, a, b)
}

func TestEvaluateFilters(t *testing.T) {
	catalog := testCatalog()

	t.Run("level filter", func(t *testing.T) {
		results := Evaluate(catalog, Query{
			ItemDims: Dims{4, 4, 4},
			Levels:   []PackingLevel{StandardPack},
		})
		assert.Len(t, results, 2*NumStrategies)
		for _, r := range results {
			assert.Equal(t, StandardPack, r.Level)
		}
	})

	t.Run("strategy filter", func(t *testing.T) {
		results := Evaluate(catalog, Query{
			ItemDims:   Dims{4, 4, 4},
			Strategies: []Strategy{Normal, Telescoping},
		})
		assert.Len(t, results, 2*NumLevels*2)
		for _, r := range results {
			assert.Contains(t, []Strategy{Normal, Telescoping}, r.Strategy)
		}
	})

	t.Run("fits always passes the tier filter", func(t *testing.T) {
		results := Evaluate(catalog, Query{
			ItemDims: Dims{4, 4, 4},
			Tiers:    []Recommendation{Impossible},
		})
		for _, r := range results {
			assert.Contains(t, []Recommendation{Impossible, Fits}, r.Recommendation)
		}
		// The 4x4x4 item fits the 6-cube plainly, so fits results survive
		// a filter that only asked for impossible.
		fitsSeen := false
		for _, r := range results {
			if r.Recommendation == Fits {
				fitsSeen = true
			}
		}
		assert.True(t, fitsSeen)
	})
}

func TestSortModes(t *testing.T) {
	a := Result{Score: 5, Price: 10}
	b := Result{Score: 3, Price: 20}

	// Score priority: 3*1000+20 = 3020 beats 5*1000+10 = 5010.
	assert.Less(t, SortScoreFirst.sortKey(b), SortScoreFirst.sortKey(a))
	// Price priority: 10*1000+5 = 10005 beats 20*1000+3 = 20003.
	assert.Less(t, SortPriceFirst.sortKey(a), SortPriceFirst.sortKey(b))
}

func TestEvaluateOrdering(t *testing.T) {
	catalog := testCatalog()

	t.Run("score first", func(t *testing.T) {
		results := Evaluate(catalog, Query{ItemDims: Dims{4, 4, 4}, SortMode: SortScoreFirst})
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t,
				SortScoreFirst.sortKey(results[i-1]),
				SortScoreFirst.sortKey(results[i]))
		}
	})

	t.Run("price first", func(t *testing.T) {
		results := Evaluate(catalog, Query{ItemDims: Dims{4, 4, 4}, SortMode: SortPriceFirst})
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t,
				SortPriceFirst.sortKey(results[i-1]),
				SortPriceFirst.sortKey(results[i]))
		}
	})
}

func TestEvaluateEmptyCatalog(t *testing.T) {
	results := Evaluate(nil, Query{ItemDims: Dims{4, 4, 4}})
	assert.Empty(t, results)
}

// TestEvaluateZeroItemAxis documents the accepted product behavior: a zero
// sentinel for an unset dimension is a real zero-size axis and can make
// boxes unrealistically fit.
func TestEvaluateZeroItemAxis(t *testing.T) {
	results := Evaluate(testCatalog(), Query{
		ItemDims:   Dims{4, 4, 0},
		Strategies: []Strategy{Normal},
		Levels:     []PackingLevel{NoPack},
	})

	for _, r := range results {
		assert.Equal(t, Fits, r.Recommendation)
	}
}
