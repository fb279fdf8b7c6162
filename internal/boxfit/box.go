package boxfit

// Box holds a box's descending-sorted dimensions, the index of its open
// dimension within the sorted array, resolved prices, and geometry derived
// once at construction. Boxes are immutable after construction.
type Box struct {
	// Dims are the box dimensions, sorted descending.
	Dims Dims
	// OpenDim indexes Dims at the opening face.
	OpenDim int
	// Prices holds one price per packing level.
	Prices [NumLevels]float64

	// OpenLength is the dimension along the opening axis.
	OpenLength float64
	// LargerConstraint and SmallerConstraint are the two cross-section
	// dimensions perpendicular to the opening.
	LargerConstraint  float64
	SmallerConstraint float64
	// FlapLength is half the smaller constraint: how far a closing flap
	// reaches across the opening.
	FlapLength float64
}

// NewBox constructs a Box from unsorted dimensions, the index of the open
// dimension within that unsorted order, and pricing input.
//
// The open dimension is identified by value, not index: the value at
// openDim is recorded before sorting and its index re-derived afterwards.
// When duplicate values make the match ambiguous, the occurrence rank in
// the original order disambiguates, so the mapping is stable and
// reproducible.
func NewBox(dims Dims, openDim int, pricing Pricing) Box {
	if openDim < 0 || openDim > 2 {
		openDim = 2
	}
	openValue := dims[openDim]

	// Occurrence rank of the open value among equal values that precede
	// it in the original order.
	rank := 0
	for i := 0; i < openDim; i++ {
		if dims[i] == openValue {
			rank++
		}
	}

	sorted := dims.Sorted()

	openIdx := 2
	seen := 0
	for i, v := range sorted {
		if v == openValue {
			if seen == rank {
				openIdx = i
				break
			}
			seen++
		}
	}

	b := Box{
		Dims:    sorted,
		OpenDim: openIdx,
		Prices:  ResolvePricing(pricing),
	}
	b.deriveGeometry()
	return b
}

// NewNormalBox constructs a Box whose opening is the smallest original
// dimension.
func NewNormalBox(dims Dims, pricing Pricing) Box {
	sorted := dims.Sorted()
	return NewBox(sorted, 2, pricing)
}

// deriveGeometry computes the opening length, cross-section constraints,
// and flap length from the sorted dims and open index.
func (b *Box) deriveGeometry() {
	b.OpenLength = b.Dims[b.OpenDim]

	cross := make([]float64, 0, 2)
	for i, v := range b.Dims {
		if i != b.OpenDim {
			cross = append(cross, v)
		}
	}
	// Dims are sorted descending, so the lower-indexed cross dimension is
	// the larger one.
	b.LargerConstraint = cross[0]
	b.SmallerConstraint = cross[1]
	b.FlapLength = b.SmallerConstraint / 2
}

// Price returns the box price at the given packing level.
func (b Box) Price(level PackingLevel) float64 {
	if level < 0 || level >= NumLevels {
		return 0
	}
	return b.Prices[level]
}
