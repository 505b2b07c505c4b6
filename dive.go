package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	"turtledepths/pkg/config"
	"turtledepths/pkg/engine/input"
	"turtledepths/pkg/game/devtools"
	"turtledepths/pkg/game/gameplay"
	"turtledepths/pkg/game/renderer"
	"turtledepths/pkg/game/renderer/ebiten"
	"turtledepths/pkg/game/renderer/tui"
	"turtledepths/pkg/game/state"
)

// runDive plays an interactive dive in the terminal until the player quits
// or drowns.
func runDive(cfg config.Config, seed int64, startDepth int) error {
	s := settingsFromConfig(cfg)
	d := gameplay.BuildDive(s, startDepth, seed, time.Now())

	renderer.SetRenderer(tui.New())
	renderer.Init()

	for !d.Dead {
		renderer.Clear()
		renderer.RenderFrame(d)

		cmd, err := input.GetInputWithArrows()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if quit := processCommand(s, d, cmd); quit {
			return nil
		}
	}

	renderer.Clear()
	renderer.RenderFrame(d)
	showSummary(d)
	return nil
}

// processCommand applies one command to the dive and reports whether the
// player asked to quit.
func processCommand(s gameplay.Settings, d *state.Dive, cmd string) bool {
	action := input.MapToAction(cmd)

	if dir, ok := action.Direction(); ok {
		gameplay.Move(s, d, dir)
		return false
	}

	switch action {
	case input.ActionQuit:
		showSummary(d)
		return true
	case input.ActionResetLevel:
		gameplay.ResetDepth(s, d)
	case input.ActionDumpMap:
		path, err := devtools.DumpLevelToFile(d.Level, d.LevelSeed, &d.Player, "")
		if err != nil {
			d.AddMessage(renderer.StyleText(err.Error(), renderer.StyleDenied))
		} else {
			d.AddMessage("Map written to " + path)
		}
	case input.ActionHelp:
		d.AddMessage(helpLine())
	case input.ActionNone:
		if cmd != "" {
			d.AddMessage(renderer.StyleText(fmt.Sprintf("Unknown command %q", cmd), renderer.StyleDenied))
		}
	}
	return false
}

// helpLine lists the move bindings
func helpLine() string {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	var parts []string
	for _, a := range actions {
		parts = append(parts, fmt.Sprintf("%s: %s", input.ActionName(a), strings.Join(byAction[a], "/")))
	}
	return strings.Join(parts, "; ")
}

func showSummary(d *state.Dive) {
	renderer.ShowMessage(renderer.StyleText(gotext.Get("GAME_OVER"), renderer.StyleAction))
	renderer.ShowMessage(fmt.Sprintf("Deepest depth %d, treasure rooms %d, moves %d, score %d",
		d.Stats.DeepestDepth, d.Stats.TreasureRoomsFound, d.Stats.Moves, d.Score(time.Now())))
}

// runDump writes one generated floor to a file.
func runDump(cfg config.Config, seed int64, startDepth int, out string) error {
	s := settingsFromConfig(cfg)
	d := gameplay.BuildDive(s, startDepth, seed, time.Now())

	path, err := devtools.DumpLevelToFile(d.Level, d.LevelSeed, nil, out)
	if err != nil {
		return fmt.Errorf("dumping level: %w", err)
	}

	r := tui.New()
	r.Init()
	fmt.Print(r.RenderLevel(d.Level, nil))
	fmt.Println("Map written to", path)
	return nil
}

// runPreview opens the graphical window on a new dive.
func runPreview(cfg config.Config, seed int64, startDepth int) error {
	s := settingsFromConfig(cfg)
	d := gameplay.BuildDive(s, startDepth, seed, time.Now())

	e := ebiten.New(s, d)
	renderer.SetRenderer(e)
	return e.Run()
}
