package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"turtledepths/pkg/config"
	"turtledepths/pkg/engine/logging"
	"turtledepths/pkg/game/gameplay"
	"turtledepths/pkg/game/generator"
)

const (
	localesDir = "locales"
	language   = "en_GB"
	domain     = "default"
)

func initGettext() {
	gotext.Configure(localesDir, language, domain)
}

// settingsFromConfig sizes generated floors from the dungeon section.
func settingsFromConfig(cfg config.Config) gameplay.Settings {
	return gameplay.Settings{
		Width:  cfg.Dungeon.MapWidth,
		Height: cfg.Dungeon.MapHeight,
		Rooms: generator.Params{
			RoomMinSize: cfg.Dungeon.RoomMinSize,
			RoomMaxSize: cfg.Dungeon.RoomMaxSize,
			MaxRooms:    cfg.Dungeon.MaxRooms,
		},
	}
}

func main() {
	mode := flag.String("mode", "dive", "one of dive, dump, preview, serve, bounce")
	configPath := flag.String("config", "turtledepths.yaml", "path to the YAML config file")
	seed := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	startDepth := flag.Int("depth", 1, "starting depth (for developer testing)")
	out := flag.String("out", "", "dump mode: output file (default map.txt)")
	jumps := flag.Int("jumps", 0, "bounce mode: stop after this many jumps (0 = until the turtle falls)")
	name := flag.String("name", "", "bounce mode: submit the height to the leaderboard under this name")
	flag.Parse()

	log := logging.New("main")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("loading config", "error", err)
		os.Exit(1)
	}

	initGettext()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	switch *mode {
	case "dive":
		err = runDive(cfg, *seed, *startDepth)
	case "dump":
		err = runDump(cfg, *seed, *startDepth, *out)
	case "preview":
		err = runPreview(cfg, *seed, *startDepth)
	case "serve":
		err = runServe(cfg)
	case "bounce":
		err = runBounce(cfg, *seed, *jumps, *name)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}

	if err != nil {
		log.Error("exiting", "mode", *mode, "error", err)
		os.Exit(1)
	}
}
