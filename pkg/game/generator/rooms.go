package generator

import (
	"turtledepths/pkg/engine/rng"
	"turtledepths/pkg/engine/world"
	"turtledepths/pkg/game/depth"
	gameworld "turtledepths/pkg/game/world"
)

// Params tunes room placement.
type Params struct {
	RoomMinSize int // inclusive
	RoomMaxSize int // exclusive, unless equal to RoomMinSize
	MaxRooms    int
}

// Water layering ratios, applied to the room list in generation order.
const (
	floodedPercent   = 70
	airPocketPercent = 30
	maxAirPockets    = 2
	deepWaterChance  = 0.3
)

// RoomGenerator places rectangular rooms, chains them with L-shaped corridors
// and layers water, treasure and merchant features on top.
type RoomGenerator struct {
	params Params
	rng    rng.Source
}

// NewRoomGenerator creates a generator drawing every random decision from src.
func NewRoomGenerator(params Params, src rng.Source) *RoomGenerator {
	if params.RoomMinSize < 1 {
		params.RoomMinSize = 1
	}
	if params.RoomMaxSize < params.RoomMinSize {
		params.RoomMaxSize = params.RoomMinSize
	}
	return &RoomGenerator{params: params, rng: src}
}

// Name returns the name of this generator
func (g *RoomGenerator) Name() string {
	return "Rooms"
}

// Params returns the tuning values in use
func (g *RoomGenerator) Params() Params {
	return g.params
}

// Generate builds one floor. It never fails: exhausting the placement attempts
// just yields fewer rooms, and zero rooms gives an all-Void level with the
// spawn at (1,1) and no stairs.
func (g *RoomGenerator) Generate(width, height, lvlDepth int) *gameworld.Level {
	level := &gameworld.Level{
		Grid:  world.NewGrid(width, height),
		Depth: depth.Normalize(lvlDepth),
	}

	g.placeRooms(level)
	addWalls(level.Grid)
	g.addWater(level)

	if depth.TreasureAllowed(level.Depth) {
		g.addTreasureRoom(level)
	}
	if depth.MerchantAllowed(level.Depth) && rng.Chance(g.rng, depth.MerchantChance) {
		g.addMerchantRoom(level)
	}

	placeStairs(level)
	placeSpawn(level)
	return level
}

func (g *RoomGenerator) placeRooms(level *gameworld.Level) {
	grid := level.Grid
	attempts := g.params.MaxRooms * 3

	for attempt := 0; attempt < attempts; attempt++ {
		if len(level.Rooms) >= g.params.MaxRooms {
			break
		}

		w := g.roomSize()
		h := g.roomSize()
		spanX := grid.Width() - w - 2
		spanY := grid.Height() - h - 2
		if spanX <= 0 || spanY <= 0 {
			continue
		}

		candidate := world.Rect{
			X:      g.rng.Intn(spanX) + 1,
			Y:      g.rng.Intn(spanY) + 1,
			Width:  w,
			Height: h,
		}
		if overlapsAny(candidate, level.Rooms) {
			continue
		}

		carveRoom(grid, candidate)
		room := gameworld.NewRoom(candidate)
		level.Rooms = append(level.Rooms, room)

		if n := len(level.Rooms); n > 1 {
			carveCorridor(grid, level.Rooms[n-2].Center(), room.Center())
		}
	}
}

// roomSize draws a side length in [RoomMinSize, RoomMaxSize).
func (g *RoomGenerator) roomSize() int {
	span := g.params.RoomMaxSize - g.params.RoomMinSize
	if span <= 0 {
		return g.params.RoomMinSize
	}
	return g.rng.Intn(span) + g.params.RoomMinSize
}

// overlapsAny reports whether candidate, with a one tile buffer, touches any
// placed room's buffer.
func overlapsAny(candidate world.Rect, rooms []*gameworld.Room) bool {
	padded := candidate.Expand(1)
	for _, r := range rooms {
		if padded.Intersects(r.Expand(1)) {
			return true
		}
	}
	return false
}

func carveRoom(grid *world.Grid, r world.Rect) {
	r.ForEach(func(p world.Point) {
		grid.Set(p.X, p.Y, world.Floor)
	})
}

// carveCorridor walks from one centre to the other, horizontal leg first.
func carveCorridor(grid *world.Grid, from, to world.Point) {
	end := carveCorridorHorizontal(grid, from, to.X)
	carveCorridorVertical(grid, end, to.Y)
}

func carveCorridorHorizontal(grid *world.Grid, p world.Point, toX int) world.Point {
	for p.X != toX {
		grid.Set(p.X, p.Y, world.Floor)
		if p.X < toX {
			p.X++
		} else {
			p.X--
		}
	}
	return p
}

func carveCorridorVertical(grid *world.Grid, p world.Point, toY int) world.Point {
	for p.Y != toY {
		grid.Set(p.X, p.Y, world.Floor)
		if p.Y < toY {
			p.Y++
		} else {
			p.Y--
		}
	}
	grid.Set(p.X, p.Y, world.Floor)
	return p
}

// addWalls turns every Void tile touching a Floor tile (8-neighbourhood) into Wall.
// Walls are collected first so new walls do not feed the scan.
func addWalls(grid *world.Grid) {
	var walls []world.Point
	grid.ForEachTile(func(x, y int, t world.Tile) {
		if t == world.Void && grid.HasNeighbor8(x, y, world.Floor) {
			walls = append(walls, world.Pt(x, y))
		}
	})
	for _, p := range walls {
		grid.Set(p.X, p.Y, world.Wall)
	}
}

// addWater floods the first 70% of rooms and puts a 3x3 air pocket in the
// centre of up to two of the rooms that follow.
func (g *RoomGenerator) addWater(level *gameworld.Level) {
	n := len(level.Rooms)
	flooded := n * floodedPercent / 100
	pockets := min(maxAirPockets, n*airPocketPercent/100)

	for _, room := range level.Rooms[:flooded] {
		room.ForEach(func(p world.Point) {
			if level.Grid.Get(p.X, p.Y) != world.Floor {
				return
			}
			if rng.Chance(g.rng, deepWaterChance) {
				level.Grid.Set(p.X, p.Y, world.DeepWater)
			} else {
				level.Grid.Set(p.X, p.Y, world.Water)
			}
		})
	}

	for _, room := range level.Rooms[flooded : flooded+pockets] {
		block := world.Rect{X: room.Center().X - 1, Y: room.Center().Y - 1, Width: 3, Height: 3}
		block.ForEach(func(p world.Point) {
			if room.Contains(p) {
				level.Grid.Replace(p.X, p.Y, world.Floor, world.AirPocket)
			}
		})
	}
}

// addTreasureRoom picks one room other than the first and lines its floor
// with treasure.
func (g *RoomGenerator) addTreasureRoom(level *gameworld.Level) {
	if len(level.Rooms) < depth.TreasureMinRooms {
		return
	}
	eligible := level.Rooms[1:]
	room := eligible[g.rng.Intn(len(eligible))]

	room.ForEach(func(p world.Point) {
		level.Grid.Replace(p.X, p.Y, world.Floor, world.TreasureFloor)
	})
	room.IsTreasureRoom = true
}

// addMerchantRoom marks one room other than the first or the treasure room
// and parks the merchant in its centre.
func (g *RoomGenerator) addMerchantRoom(level *gameworld.Level) {
	if len(level.Rooms) < 2 {
		return
	}
	var eligible []*gameworld.Room
	for _, r := range level.Rooms[1:] {
		if !r.IsTreasureRoom {
			eligible = append(eligible, r)
		}
	}
	if len(eligible) == 0 {
		return
	}

	room := eligible[g.rng.Intn(len(eligible))]
	room.IsMerchantRoom = true
	room.MerchantSpawn = room.Center()
}

func placeStairs(level *gameworld.Level) {
	if len(level.Rooms) == 0 {
		return
	}
	c := level.Rooms[len(level.Rooms)-1].Center()
	level.Grid.Set(c.X, c.Y, world.StairsDown)
	level.Stairs = c
	level.HasStairs = true
}

func placeSpawn(level *gameworld.Level) {
	if len(level.Rooms) == 0 {
		level.Spawn = world.Pt(1, 1)
		return
	}
	spawnRoom := level.Rooms[0]
	if spawnRoom.IsTreasureRoom {
		for _, r := range level.Rooms[1:] {
			if !r.IsTreasureRoom {
				spawnRoom = r
				break
			}
		}
	}
	level.Spawn = spawnRoom.Center()
}
