package boxfit

import "math"

// Evaluate runs one strategy for the box at the given packing level.
// item must be the item's dimensions sorted descending; callers re-sort
// whenever item input changes. All evaluators are pure and total: any
// finite input produces a Result, degenerate geometry (zero-size boxes)
// propagates through the arithmetic rather than erroring.
func (b Box) Evaluate(strategy Strategy, level PackingLevel, item Dims) Result {
	switch strategy {
	case CutDown:
		return b.evaluateCutDown(level, item)
	case Telescoping:
		return b.evaluateTelescoping(level, item)
	case Cheating:
		return b.evaluateCheating(level, item)
	case Flattened:
		return b.evaluateFlattened(level, item)
	default:
		return b.evaluateNormal(level, item)
	}
}

// EvaluateAll runs every strategy for the box at the given packing level.
func (b Box) EvaluateAll(level PackingLevel, item Dims) []Result {
	results := make([]Result, 0, NumStrategies)
	for _, s := range Strategies {
		results = append(results, b.Evaluate(s, level, item))
	}
	return results
}

// evaluateNormal pairs box and item axes by rank and measures the straight
// per-axis clearances.
func (b Box) evaluateNormal(level PackingLevel, item Dims) Result {
	clearances := Dims{
		b.Dims[0] - item[0],
		b.Dims[1] - item[1],
		b.Dims[2] - item[2],
	}
	return Result{
		Dims:           b.Dims,
		Level:          level,
		Price:          b.Price(level),
		Recommendation: Classify(clearances, level),
		Score:          sumSquares(clearances),
		Strategy:       Normal,
	}
}

// evaluateCutDown notionally trims the box along its opening axis to the
// item plus the level's clearance, capped at the original opening length.
// All three choices of item axis along the opening are tried; the first
// strictly-minimal score wins.
func (b Box) evaluateCutDown(level PackingLevel, item Dims) Result {
	required := level.Clearance()

	bestScore := math.Inf(1)
	var bestClearances Dims
	bestAxis := 0

	for axis := 0; axis < 3; axis++ {
		o1, o2 := otherTwo(item, axis)
		clearances := Dims{
			b.LargerConstraint - math.Max(o1, o2),
			b.SmallerConstraint - math.Min(o1, o2),
			math.Min(required, b.OpenLength-item[axis]),
		}
		if score := sumSquares(clearances); score < bestScore {
			bestScore = score
			bestClearances = clearances
			bestAxis = axis
		}
	}

	cutLength := math.Min(b.OpenLength, item[bestAxis]+required)
	return Result{
		Dims:           b.Dims,
		Level:          level,
		Price:          b.Price(level),
		Recommendation: Classify(bestClearances, level),
		Comment: dimsComment("cut down to",
			fmtDim(b.LargerConstraint), fmtDim(b.SmallerConstraint), fmtDim(cutLength)),
		Score:    bestScore,
		Strategy: CutDown,
	}
}

// evaluateTelescoping stacks identical boxes along the opening axis until
// the assembly covers the item's longest dimension plus clearance. Two end
// boxes are always required; the length each contributes is the opening
// plus one flap, center boxes contribute one more flap. Exactly one box is
// charged at the next-higher packing level as a flat surcharge.
//
// The third clearance is the required clearance itself, not a measured
// gap: the telescoping axis can always be extended, so it never renders
// the fit impossible on its own.
func (b Box) evaluateTelescoping(level PackingLevel, item Dims) Result {
	required := level.Clearance()
	minLength := item[0] + required

	clearances := Dims{
		b.LargerConstraint - item[1],
		b.SmallerConstraint - item[2],
		required,
	}

	endBoxLength := b.OpenLength + b.FlapLength
	centerBoxLength := endBoxLength + b.FlapLength

	centerBoxes := 0.0
	if extra := minLength - 2*endBoxLength; extra > 0 {
		centerBoxes = math.Ceil(extra / centerBoxLength)
	}
	totalBoxes := 2 + centerBoxes

	price := b.Price(level)*(totalBoxes-1) + b.Price(level.Next())

	return Result{
		Dims:           b.Dims,
		Level:          level,
		Price:          price,
		Recommendation: Classify(clearances, level),
		Comment: dimsComment(fmtDim(totalBoxes)+" boxes telescoping to",
			fmtDim(minLength), fmtDim(b.LargerConstraint), fmtDim(b.SmallerConstraint)),
		Score:    sumSquares(clearances),
		Strategy: Telescoping,
	}
}

// evaluateCheating rotates the item diagonally within the box. For each
// choice of unrotated axis, the rotation angle comes from the box's own
// two cross dimensions and the item's cross dimensions are projected
// through that same angle; clearances are measured against the box's
// dimensions directly. The first strictly-minimal score wins.
func (b Box) evaluateCheating(level PackingLevel, item Dims) Result {
	bestScore := math.Inf(1)
	var bestClearances, bestRotated Dims

	for keep := 0; keep < 3; keep++ {
		i, j := crossIndexes(keep)
		// Dims are sorted descending, so index i holds the larger cross
		// dimension for both box and item.
		angle := math.Atan(b.Dims[j] / b.Dims[i])
		sin, cos := math.Sincos(angle)

		rotated := Dims{}
		rotated[keep] = item[keep]
		rotated[i] = sin*item[j] + cos*item[i]
		rotated[j] = cos*item[j] + sin*item[i]

		clearances := Dims{
			b.Dims[0] - rotated[0],
			b.Dims[1] - rotated[1],
			b.Dims[2] - rotated[2],
		}
		if score := sumSquares(clearances); score < bestScore {
			bestScore = score
			bestClearances = clearances
			bestRotated = rotated
		}
	}

	return Result{
		Dims:           b.Dims,
		Level:          level,
		Price:          b.Price(level),
		Recommendation: Classify(bestClearances, level),
		Comment: dimsComment("rotated interior",
			fmtDim1(bestRotated[0]), fmtDim1(bestRotated[1]), fmtDim1(bestRotated[2])),
		Score:    bestScore,
		Strategy: Cheating,
	}
}

// evaluateFlattened folds the box into a flat sleeve: the opening plus
// both flaps along one edge, the two cross constraints combined along the
// other, and a fixed 1-inch height allowance regardless of level. The
// recommendation collapses to impossible-or-fits.
func (b Box) evaluateFlattened(level PackingLevel, item Dims) Result {
	required := level.Clearance()
	flatLength := b.OpenLength + 2*b.FlapLength
	flatWidth := b.SmallerConstraint + b.LargerConstraint

	clearances := Dims{
		math.Max(flatLength, flatWidth) - item[0] - required,
		math.Min(flatLength, flatWidth) - item[1] - required,
		1 - item[2],
	}

	recommendation := Fits
	if Classify(clearances, level) == Impossible {
		recommendation = Impossible
	}

	return Result{
		Dims:           b.Dims,
		Level:          level,
		Price:          b.Price(level),
		Recommendation: recommendation,
		Comment: dimsComment("flattened to",
			fmtDim(flatLength), fmtDim(flatWidth), "1"),
		Score:    sumSquares(clearances),
		Strategy: Flattened,
	}
}

// otherTwo returns the two item dimensions not on the given axis.
func otherTwo(d Dims, axis int) (float64, float64) {
	i, j := crossIndexes(axis)
	return d[i], d[j]
}

// crossIndexes returns the two indexes other than axis, in ascending order.
func crossIndexes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}
