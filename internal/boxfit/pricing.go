package boxfit

// Pricing is the tagged variant for box price input. Catalog data supplies
// either a flat 4-value price list or an itemized cost breakdown; both
// resolve to one price per packing level, indexed [NoPack, Standard,
// Fragile, Custom]. Resolution happens once at catalog-load time and
// downstream code never branches on shape again.
type Pricing interface {
	// Resolve normalizes the pricing into a price-by-packing-level array.
	Resolve() [NumLevels]float64
}

// FlatPricing is a ready-made 4-value price list.
type FlatPricing [NumLevels]float64

// Resolve returns the prices unchanged.
func (p FlatPricing) Resolve() [NumLevels]float64 {
	return p
}

// ItemizedPricing is a per-level cost breakdown: a base box price plus
// materials and services for each protective level. The No Pack price is
// the bare box price. Missing fields are zero; a zero value resolves to
// all-zero prices rather than an error.
type ItemizedPricing struct {
	BoxPrice          float64 `json:"box-price" bson:"box-price" yaml:"box-price"`
	StandardMaterials float64 `json:"standard-materials" bson:"standard-materials" yaml:"standard-materials"`
	StandardServices  float64 `json:"standard-services" bson:"standard-services" yaml:"standard-services"`
	FragileMaterials  float64 `json:"fragile-materials" bson:"fragile-materials" yaml:"fragile-materials"`
	FragileServices   float64 `json:"fragile-services" bson:"fragile-services" yaml:"fragile-services"`
	CustomMaterials   float64 `json:"custom-materials" bson:"custom-materials" yaml:"custom-materials"`
	CustomServices    float64 `json:"custom-services" bson:"custom-services" yaml:"custom-services"`
}

// Resolve combines the box price with each level's materials and services.
func (p ItemizedPricing) Resolve() [NumLevels]float64 {
	return [NumLevels]float64{
		p.BoxPrice,
		p.BoxPrice + p.StandardMaterials + p.StandardServices,
		p.BoxPrice + p.FragileMaterials + p.FragileServices,
		p.BoxPrice + p.CustomMaterials + p.CustomServices,
	}
}

// ResolvePricing normalizes any pricing input. Nil (unresolvable) input
// degrades to all-zero prices; it never fails.
func ResolvePricing(p Pricing) [NumLevels]float64 {
	if p == nil {
		return [NumLevels]float64{}
	}
	return p.Resolve()
}

// ItemizeFlat is the lossy inverse conversion used by editing round-trips:
// the delta of each level above the box price is apportioned 70% to
// materials and 30% to services. It reproduces the box price exactly and
// the level totals up to float rounding; it is never used for scoring.
func ItemizeFlat(prices [NumLevels]float64) ItemizedPricing {
	box := prices[NoPack]
	split := func(level PackingLevel) (materials, services float64) {
		delta := prices[level] - box
		return delta * 0.7, delta * 0.3
	}

	p := ItemizedPricing{BoxPrice: box}
	p.StandardMaterials, p.StandardServices = split(StandardPack)
	p.FragileMaterials, p.FragileServices = split(FragilePack)
	p.CustomMaterials, p.CustomServices = split(CustomPack)
	return p
}
