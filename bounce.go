package main

import (
	"context"
	"fmt"

	"turtledepths/pkg/config"
	"turtledepths/pkg/engine/logging"
	"turtledepths/pkg/engine/rng"
	"turtledepths/pkg/game/bounce"
	"turtledepths/pkg/game/climb"
	"turtledepths/pkg/leaderboard"
	"turtledepths/pkg/store"
)

// runBounce plays a headless climb, keeps the bests in the settings file and
// optionally submits the height.
func runBounce(cfg config.Config, seed int64, jumps int, name string) error {
	log := logging.New("bounce")

	st, err := store.OpenFile(cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("opening settings: %w", err)
	}
	settings := store.LoadSettings(st)
	log.Info("settings loaded", "path", st.Path(), "volume", settings.EffectiveVolume())

	viewport := bounce.Viewport{Width: cfg.Bouncer.ViewportWidth, Height: cfg.Bouncer.ViewportHeight}
	session := climb.NewSession(rng.New(seed), st, viewport, log)
	res := session.Run(jumps)

	fmt.Printf("Height %d (best %d), points %d (best %d), bounces %d\n",
		res.Height, res.BestHeight, res.Points, res.BestPoints, res.Bounces)

	if name == "" {
		return nil
	}

	ctx := context.Background()
	client := leaderboard.NewClient(cfg.Leaderboard.BaseURL, nil)
	if !client.IsTopScore(ctx, res.Height) {
		fmt.Println("Not a top score this time.")
		return nil
	}
	if client.SubmitScore(ctx, name, res.Height) {
		fmt.Println("Score submitted.")
	} else {
		log.Warn("score submission failed", "url", cfg.Leaderboard.BaseURL)
	}
	for i, e := range client.TopScores(ctx, leaderboard.DefaultLimit) {
		fmt.Printf("%2d. %-20s %d\n", i+1, e.Name, e.Height)
	}
	return nil
}
