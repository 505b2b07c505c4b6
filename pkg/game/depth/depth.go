// Package depth defines how far down the flooded ruins a floor is and which
// level features unlock as the player descends.
package depth

import (
	"github.com/leonelquinteros/gotext"
)

// Band is the thematic layer a depth belongs to.
type Band int

const (
	Shallows Band = iota // depth 1: flooded entry halls
	Reef                 // depth 2: first merchants appear
	Trench               // depths 3-5: treasure rooms appear
	Abyss                // depth 6+
)

func (b Band) String() string {
	switch b {
	case Shallows:
		return "Shallows"
	case Reef:
		return "Reef"
	case Trench:
		return "Trench"
	case Abyss:
		return "Abyss"
	default:
		return "Unknown"
	}
}

// Feature gates (depths are 1-based).
const (
	MerchantMinDepth = 2
	TreasureMinDepth = 3

	// MerchantChance is the probability a merchant room is rolled on an
	// eligible depth.
	MerchantChance = 0.3

	// TreasureMinRooms is the smallest room count that can host a treasure room.
	TreasureMinRooms = 3
)

// Normalize clamps depth to the valid range (>= 1)
func Normalize(depth int) int {
	if depth < 1 {
		return 1
	}
	return depth
}

// BandFor returns the thematic band for the given depth.
func BandFor(depth int) Band {
	depth = Normalize(depth)
	switch {
	case depth == 1:
		return Shallows
	case depth == 2:
		return Reef
	case depth <= 5:
		return Trench
	default:
		return Abyss
	}
}

// TreasureAllowed reports whether a treasure room may be placed at depth
func TreasureAllowed(depth int) bool {
	return depth >= TreasureMinDepth
}

// MerchantAllowed reports whether a merchant room may be rolled at depth
func MerchantAllowed(depth int) bool {
	return depth >= MerchantMinDepth
}

// NextDepth returns the depth below current.
func NextDepth(current int) int {
	return Normalize(current) + 1
}

// FlavourKey returns the gettext message key describing the band of depth.
func FlavourKey(depth int) string {
	switch BandFor(depth) {
	case Reef:
		return "DEPTH_REEF"
	case Trench:
		return "DEPTH_TRENCH"
	case Abyss:
		return "DEPTH_ABYSS"
	default:
		return "DEPTH_SHALLOWS"
	}
}

// FlavourText returns the translated band description for depth.
// Uses gotext.Get with constant keys to satisfy vet.
func FlavourText(depth int) string {
	switch FlavourKey(depth) {
	case "DEPTH_REEF":
		return gotext.Get("DEPTH_REEF")
	case "DEPTH_TRENCH":
		return gotext.Get("DEPTH_TRENCH")
	case "DEPTH_ABYSS":
		return gotext.Get("DEPTH_ABYSS")
	default:
		return gotext.Get("DEPTH_SHALLOWS")
	}
}
