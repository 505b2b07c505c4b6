package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turtledepths/pkg/config"
	"turtledepths/pkg/engine/logging"
	"turtledepths/pkg/leaderboard"
)

// openBoard picks the leaderboard storage from db_type.
func openBoard(ctx context.Context, cfg config.Leaderboard) (leaderboard.Board, error) {
	switch cfg.DBType {
	case "postgres":
		return leaderboard.NewPostgresBoard(ctx, cfg.DatabaseURL)
	default:
		return leaderboard.NewMemoryBoard(), nil
	}
}

// runServe serves the leaderboard API until interrupted.
func runServe(cfg config.Config) error {
	log := logging.NewJSON(os.Stdout, "leaderboard")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	board, err := openBoard(ctx, cfg.Leaderboard)
	if err != nil {
		return fmt.Errorf("opening %s board: %w", cfg.Leaderboard.DBType, err)
	}
	defer board.Close()

	hub := leaderboard.NewHub(log)
	defer hub.Close()

	srv := &http.Server{
		Addr:              cfg.Leaderboard.Addr,
		Handler:           leaderboard.NewHandler(board, hub, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr, "db_type", cfg.Leaderboard.DBType)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
