package input

import (
	"io"
	"strings"
	"testing"

	"turtledepths/pkg/engine/world"
)

func TestReader_ReadCommand(t *testing.T) {
	r := NewReader(strings.NewReader("  North \nq"))

	got, err := r.ReadCommand()
	if err != nil || got != "north" {
		t.Fatalf("ReadCommand = %q, %v; want north", got, err)
	}
	got, err = r.ReadCommand()
	if err != nil || got != "q" {
		t.Fatalf("ReadCommand = %q, %v; want q", got, err)
	}
	if _, err = r.ReadCommand(); err != io.EOF {
		t.Errorf("ReadCommand at end err = %v, want EOF", err)
	}
}

func TestParseEscapeSequence(t *testing.T) {
	cases := map[string]string{
		"[A": "arrow_up",
		"OB": "arrow_down",
		"[C": "arrow_right",
		"[D": "arrow_left",
		"[Z": "",
		"x":  "",
	}
	for in, want := range cases {
		if got := ParseEscapeSequence([]byte(in)); got != want {
			t.Errorf("ParseEscapeSequence(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMapToAction(t *testing.T) {
	cases := map[string]Action{
		"arrow_up": ActionMoveNorth,
		" K ":      ActionMoveNorth,
		"s":        ActionMoveSouth,
		"w":        ActionMoveWest,
		"east":     ActionMoveEast,
		"r":        ActionResetLevel,
		"q":        ActionQuit,
		"dance":    ActionNone,
	}
	for in, want := range cases {
		if got := MapToAction(in); got != want {
			t.Errorf("MapToAction(%q) = %s, want %s", in, ActionName(got), ActionName(want))
		}
	}
}

func TestMapToAction_DirectionWords(t *testing.T) {
	words := map[world.Direction][]string{
		world.North: {"n", "north", "k", "arrow_up"},
		world.East:  {"e", "east", "l", "arrow_right"},
		world.South: {"s", "south", "j", "arrow_down"},
		world.West:  {"w", "west", "h", "arrow_left"},
	}
	for want, codes := range words {
		for _, code := range codes {
			if got, ok := MapToAction(code).Direction(); !ok || got != want {
				t.Errorf("MapToAction(%q).Direction() = %v, %v, want %v", code, got, ok, want)
			}
		}
	}
	if _, ok := MapToAction("up-ish").Direction(); ok {
		t.Error("unknown words should not move")
	}
}

func TestAction_Direction(t *testing.T) {
	if d, ok := ActionMoveWest.Direction(); !ok || d != world.West {
		t.Errorf("ActionMoveWest.Direction() = %v, %v", d, ok)
	}
	if _, ok := ActionQuit.Direction(); ok {
		t.Error("ActionQuit should not have a direction")
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionMoveNorth]
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
	if len(codes) != 4 {
		t.Errorf("north codes = %v, want 4", codes)
	}
}
