// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"turtledepths/pkg/engine/world"
	"turtledepths/pkg/game/depth"
	"turtledepths/pkg/game/generator"
	"turtledepths/pkg/game/renderer"
	gameworld "turtledepths/pkg/game/world"
)

// MapDumpFilename is the default dump file name.
const MapDumpFilename = "map.txt"

// writeMapGrid writes the level one row per line with the player overlay.
func writeMapGrid(w io.Writer, level *gameworld.Level, player *world.Point) {
	for y := 0; y < level.Height(); y++ {
		var row strings.Builder
		for x := 0; x < level.Width(); x++ {
			g, _ := renderer.CellAt(level, world.Pt(x, y), player)
			row.WriteRune(g)
		}
		fmt.Fprintln(w, row.String())
	}
}

// WriteLevel writes a full debug dump: metadata, legend, map and room list.
// Format is human-readable (sections, key: value, consistent structure).
// player may be nil.
func WriteLevel(w io.Writer, level *gameworld.Level, seed int64, player *world.Point) error {
	if level == nil || level.Grid == nil {
		return fmt.Errorf("no level")
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP (level layout, rooms, features) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "depth: %d\n", level.Depth)
	fmt.Fprintf(w, "band: %s\n", depth.BandFor(level.Depth))
	fmt.Fprintf(w, "level_seed: %d\n", seed)
	fmt.Fprintf(w, "width: %d\n", level.Width())
	fmt.Fprintf(w, "height: %d\n", level.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "spawn: %d,%d\n", level.Spawn.X, level.Spawn.Y)
	if level.HasStairs {
		fmt.Fprintf(w, "stairs: %d,%d\n", level.Stairs.X, level.Stairs.Y)
	} else {
		fmt.Fprintln(w, "stairs: none")
	}
	if player != nil {
		fmt.Fprintf(w, "player: %d,%d\n", player.X, player.Y)
	}
	fmt.Fprintf(w, "rooms: %d\n", len(level.Rooms))
	fmt.Fprintf(w, "fully_connected: %v\n", generator.IsFullyConnected(level))
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	var legend []string
	for _, e := range renderer.Legend() {
		legend = append(legend, fmt.Sprintf("%c = %s", e.Glyph, strings.ToLower(e.Name)))
	}
	fmt.Fprintln(w, strings.Join(legend, "  "))
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, level, player)
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "--- Rooms (generation order) ---")
	for i, r := range level.Rooms {
		c := r.Center()
		fmt.Fprintf(w, "  index: %d x: %d y: %d width: %d height: %d center: %d,%d treasure: %v merchant: %v\n",
			i, r.X, r.Y, r.Width, r.Height, c.X, c.Y, r.IsTreasureRoom, r.IsMerchantRoom)
	}
	fmt.Fprintln(w, "")

	// --- Tile counts ---
	fmt.Fprintln(w, "--- Tile counts ---")
	for _, t := range []world.Tile{world.Floor, world.Wall, world.Water, world.DeepWater, world.AirPocket, world.TreasureFloor, world.StairsDown} {
		fmt.Fprintf(w, "  %s: %d\n", t, level.Grid.Count(t))
	}
	return nil
}

// DumpLevelToFile writes WriteLevel output to path (MapDumpFilename when
// empty) and returns the absolute path written.
func DumpLevelToFile(level *gameworld.Level, seed int64, player *world.Point, path string) (string, error) {
	if path == "" {
		path = MapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteLevel(f, level, seed, player); err != nil {
		return "", err
	}
	return absPath, nil
}
