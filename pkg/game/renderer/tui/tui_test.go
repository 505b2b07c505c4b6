package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"turtledepths/pkg/engine/rng"
	"turtledepths/pkg/engine/world"
	"turtledepths/pkg/game/renderer"
	"turtledepths/pkg/game/state"
	gameworld "turtledepths/pkg/game/world"
)

func plainRenderer() (*TUIRenderer, *bytes.Buffer) {
	var buf bytes.Buffer
	t := &TUIRenderer{Plain: true, Out: &buf}
	t.Init()
	return t, &buf
}

func smallLevel() *gameworld.Level {
	g := world.NewGrid(5, 3)
	for x := 0; x < 5; x++ {
		g.Set(x, 0, world.Wall)
		g.Set(x, 2, world.Wall)
	}
	g.Set(0, 1, world.Wall)
	g.Set(1, 1, world.Floor)
	g.Set(2, 1, world.Water)
	g.Set(3, 1, world.StairsDown)
	g.Set(4, 1, world.Wall)
	return &gameworld.Level{Grid: g, Depth: 1, Stairs: world.Pt(3, 1), HasStairs: true, Spawn: world.Pt(1, 1)}
}

func TestRenderLevel_Plain(t *testing.T) {
	r, _ := plainRenderer()
	got := r.RenderLevel(smallLevel(), nil)
	want := "#####\n#.~>#\n#####\n"
	if got != want {
		t.Errorf("RenderLevel =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderLevel_PlayerAndMerchant(t *testing.T) {
	r, _ := plainRenderer()
	level := smallLevel()
	room := gameworld.NewRoom(world.Rect{X: 1, Y: 1, Width: 3, Height: 1})
	room.IsMerchantRoom = true
	room.MerchantSpawn = world.Pt(2, 1)
	level.Rooms = []*gameworld.Room{room}

	player := world.Pt(1, 1)
	got := r.RenderLevel(level, &player)
	if !strings.Contains(got, "#@M>#") {
		t.Errorf("RenderLevel = %q, want player and merchant drawn over tiles", got)
	}
}

func TestStyleText_PlainPassesThrough(t *testing.T) {
	r, _ := plainRenderer()
	if got := r.StyleText("abc", renderer.StyleTreasure); got != "abc" {
		t.Errorf("StyleText = %q, want abc", got)
	}
}

func TestRenderFrame(t *testing.T) {
	r, buf := plainRenderer()
	d := state.NewDive(rng.New(1), time.Now())
	d.Level = smallLevel()
	d.Player = d.Level.Spawn
	d.Oxygen = 50
	d.AddMessage("hello diver")

	r.RenderFrame(d)
	out := buf.String()
	for _, want := range []string{"#@~>#", "Gold 0", "hello diver"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
}

func TestGauge(t *testing.T) {
	if g := gauge(50, 100); strings.Count(g, "█") != gaugeWidth/2 {
		t.Errorf("gauge(50,100) = %q", g)
	}
	if g := gauge(150, 100); strings.Count(g, "█") != gaugeWidth {
		t.Errorf("gauge(150,100) = %q", g)
	}
	if g := gauge(-5, 100); strings.Count(g, "█") != 0 {
		t.Errorf("gauge(-5,100) = %q", g)
	}
}
