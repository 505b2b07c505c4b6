package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"turtledepths/pkg/engine/rng"
	"turtledepths/pkg/game/generator"
	"turtledepths/pkg/game/state"
)

func TestWriteLevel(t *testing.T) {
	gen := generator.NewRoomGenerator(generator.DefaultParams, rng.New(7))
	level := gen.Generate(25, 18, 3)

	var buf bytes.Buffer
	if err := WriteLevel(&buf, level, 7, nil); err != nil {
		t.Fatalf("WriteLevel: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"depth: 3", "level_seed: 7", "width: 25", "fully_connected: true", "--- Map ---", "index: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}
	// Map section has one line per row
	section := out[strings.Index(out, "--- Map ---"):]
	lines := strings.Split(section, "\n")
	for i := 1; i <= 18; i++ {
		if n := len([]rune(lines[i])); n != 25 {
			t.Fatalf("map line %d has %d cells, want 25", i, n)
		}
	}
}

func TestWriteLevel_NilLevel(t *testing.T) {
	if err := WriteLevel(&bytes.Buffer{}, nil, 0, nil); err == nil {
		t.Error("expected error for nil level")
	}
}

func TestDumpLevelToFile(t *testing.T) {
	level := generator.NewRoomGenerator(generator.DefaultParams, rng.New(1)).Generate(25, 18, 1)
	path := filepath.Join(t.TempDir(), "dump.txt")

	got, err := DumpLevelToFile(level, 1, &level.Spawn, path)
	if err != nil {
		t.Fatalf("DumpLevelToFile: %v", err)
	}
	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "@") {
		t.Error("dump should draw the player")
	}
}

func TestScreenshotHTML(t *testing.T) {
	d := state.NewDive(rng.New(1), time.Now())
	d.Level = generator.NewRoomGenerator(generator.DefaultParams, rng.New(1)).Generate(25, 18, 1)
	d.Player = d.Level.Spawn
	d.AddMessage("<bubbles>")

	page := ScreenshotHTML(d)
	if !strings.Contains(page, `class="player"`) {
		t.Error("screenshot should mark the player")
	}
	if !strings.Contains(page, "&lt;bubbles&gt;") {
		t.Error("messages should be escaped")
	}
}
