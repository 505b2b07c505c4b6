package ebiten

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"turtledepths/pkg/engine/world"
	"turtledepths/pkg/game/gameplay"
	"turtledepths/pkg/game/renderer"
	"turtledepths/pkg/game/state"
	gameworld "turtledepths/pkg/game/world"
)

// snapshot holds a consistent copy of what Draw needs
type snapshot struct {
	level    *gameworld.Level
	player   world.Point
	depth    int
	oxygen   int
	health   int
	gold     int
	messages []string
}

// EbitenRenderer draws a dive in a window and drives it from the keyboard.
type EbitenRenderer struct {
	settings gameplay.Settings
	dive     *state.Dive
	tileSize int

	mu   sync.RWMutex
	snap snapshot
}

// New creates a renderer for the given dive
func New(settings gameplay.Settings, d *state.Dive) *EbitenRenderer {
	e := &EbitenRenderer{
		settings: settings,
		dive:     d,
		tileSize: DefaultTileSize,
	}
	e.RenderFrame(d)
	return e
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	w, h := e.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Turtle Depths")
}

// Clear is a no-op; Draw repaints the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// RenderFrame snapshots the dive for the next Draw
func (e *EbitenRenderer) RenderFrame(d *state.Dive) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.snap = snapshot{
		level:    d.Level,
		player:   d.Player,
		depth:    d.Depth,
		oxygen:   d.Oxygen,
		health:   d.Health,
		gold:     d.Gold,
		messages: append([]string(nil), d.Messages...),
	}
}

// StyleText returns text unchanged; the window has no inline markup
func (e *EbitenRenderer) StyleText(text string, _ renderer.TextStyle) string {
	return text
}

// ShowMessage appends to the dive's message log
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.dive.AddMessage(msg)
	e.RenderFrame(e.dive)
}

var moveKeys = map[ebiten.Key]world.Direction{
	ebiten.KeyArrowUp:    world.North,
	ebiten.KeyW:          world.North,
	ebiten.KeyArrowRight: world.East,
	ebiten.KeyD:          world.East,
	ebiten.KeyArrowDown:  world.South,
	ebiten.KeyS:          world.South,
	ebiten.KeyArrowLeft:  world.West,
	ebiten.KeyA:          world.West,
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if e.dive.Dead {
		return nil
	}

	changed := false
	for key, dir := range moveKeys {
		if inpututil.IsKeyJustPressed(key) {
			gameplay.Move(e.settings, e.dive, dir)
			changed = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		gameplay.ResetDepth(e.settings, e.dive)
		changed = true
	}
	if changed {
		e.RenderFrame(e.dive)
	}
	return nil
}

// Draw renders the snapshot (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.mu.RLock()
	snap := e.snap
	e.mu.RUnlock()

	screen.Fill(colorBackground)
	if snap.level == nil {
		return
	}

	ts := float32(e.tileSize)
	snap.level.Grid.ForEachTile(func(x, y int, t world.Tile) {
		c, ok := tileColor(t)
		if !ok {
			return
		}
		vector.DrawFilledRect(screen, float32(x)*ts, hudHeight+float32(y)*ts, ts-tileGap, ts-tileGap, c, false)
	})

	if m := snap.level.MerchantRoom(); m != nil {
		e.drawMarker(screen, m.MerchantSpawn, colorMerchant)
	}
	e.drawMarker(screen, snap.player, colorPlayer)

	hud := fmt.Sprintf("Depth %d  O2 %d  HP %d  Gold %d", snap.depth, snap.oxygen, snap.health, snap.gold)
	if snap.oxygen*4 <= state.MaxOxygen {
		vector.DrawFilledRect(screen, 0, 0, 4, hudHeight, colorOxygenLow, false)
	}
	if n := len(snap.messages); n > 0 {
		hud += "\n" + snap.messages[n-1]
	}
	ebitenutil.DebugPrintAt(screen, strings.TrimSpace(hud), 8, 4)
}

// drawMarker draws a centred circle on a tile
func (e *EbitenRenderer) drawMarker(screen *ebiten.Image, p world.Point, c color.Color) {
	ts := float32(e.tileSize)
	cx := float32(p.X)*ts + ts/2
	cy := hudHeight + float32(p.Y)*ts + ts/2
	vector.DrawFilledCircle(screen, cx, cy, ts/3, c, true)
}

// Layout returns the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(_, _ int) (int, int) {
	return e.settings.Width * e.tileSize, e.settings.Height*e.tileSize + hudHeight
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run() error {
	e.Init()
	return ebiten.RunGame(e)
}
