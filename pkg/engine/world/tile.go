package world

// Tile is the content of one grid position.
type Tile int

// Tile constants. The zero value is Void.
const (
	Void Tile = iota
	Floor
	Wall
	StairsDown
	Water
	DeepWater
	AirPocket
	TreasureFloor
)

var tileNames = [...]string{
	Void:          "Void",
	Floor:         "Floor",
	Wall:          "Wall",
	StairsDown:    "StairsDown",
	Water:         "Water",
	DeepWater:     "DeepWater",
	AirPocket:     "AirPocket",
	TreasureFloor: "TreasureFloor",
}

// String returns the tile name
func (t Tile) String() string {
	if t < 0 || int(t) >= len(tileNames) {
		return "Unknown"
	}
	return tileNames[t]
}

// IsWalkable reports whether a player may stand on the tile.
func (t Tile) IsWalkable() bool {
	switch t {
	case Floor, Water, DeepWater, AirPocket, TreasureFloor, StairsDown:
		return true
	default:
		return false
	}
}

// IsWater reports whether the tile drains oxygen.
func (t Tile) IsWater() bool {
	return t == Water || t == DeepWater
}
