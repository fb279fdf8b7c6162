package boxfit

import "strconv"

// PackingLevel is one of the four protective-packing tiers. Each level
// carries a fixed required clearance across the tightest dimension.
type PackingLevel int

const (
	// NoPack ships the item bare, no void fill.
	NoPack PackingLevel = iota
	// StandardPack requires 2 inches of total clearance.
	StandardPack
	// FragilePack requires 4 inches of total clearance.
	FragilePack
	// CustomPack requires 6 inches of total clearance.
	CustomPack

	// NumLevels is the number of packing levels.
	NumLevels = 4
)

// Levels lists all packing levels in ascending order.
var Levels = [NumLevels]PackingLevel{NoPack, StandardPack, FragilePack, CustomPack}

var levelClearances = [NumLevels]float64{0, 2, 4, 6}

var levelNames = [NumLevels]string{"No Pack", "Standard Pack", "Fragile Pack", "Custom Pack"}

// Clearance returns the required clearance in inches for the level.
// Unknown levels have zero clearance.
func (l PackingLevel) Clearance() float64 {
	if l < 0 || l >= NumLevels {
		return 0
	}
	return levelClearances[l]
}

// Next returns the next-higher packing level. CustomPack saturates
// and returns itself.
func (l PackingLevel) Next() PackingLevel {
	if l >= CustomPack {
		return CustomPack
	}
	return l + 1
}

// String returns the display name of the level.
func (l PackingLevel) String() string {
	if l < 0 || l >= NumLevels {
		return "Unknown"
	}
	return levelNames[l]
}

// MarshalJSON renders the level as its display name.
func (l PackingLevel) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(l.String())), nil
}

// ParseLevel resolves a display name back to a PackingLevel.
// The second return value reports whether the name was recognized.
func ParseLevel(name string) (PackingLevel, bool) {
	for i, n := range levelNames {
		if n == name {
			return PackingLevel(i), true
		}
	}
	return NoPack, false
}
