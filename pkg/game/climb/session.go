// Package climb drives an endless-bouncer run without a window: the player
// hops from platform to platform while the arena, difficulty and scores
// update as they would in the game loop.
package climb

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"turtledepths/pkg/engine/logging"
	"turtledepths/pkg/engine/rng"
	"turtledepths/pkg/game/bounce"
	"turtledepths/pkg/game/scoring"
	"turtledepths/pkg/store"
)

// Timing and miss odds of the simulated player.
const (
	JumpDurationMs  = 600
	BaseMissChance  = 0.03
	TinyMissPenalty = 0.05

	// landingVelocity is the downward speed at which every jump lands.
	landingVelocity = 300
)

// ErrFell ends a run: the player missed or had nothing left to reach.
var ErrFell = errors.New("fell")

// Result summarises a run
type Result struct {
	Height     int
	BestHeight int
	Points     int
	BestPoints int
	Bounces    int
}

// Session is one run
type Session struct {
	Manager *bounce.Manager
	Height  *scoring.HeightTracker
	Points  *scoring.PointsTracker

	// MissChance is the miss probability at multiplier 1.
	MissChance float64

	rng     rng.Source
	log     *slog.Logger
	playerY float64
	bounces int
	over    bool
}

// NewSession lays out the arena for viewport and places the player on the
// spawn platform. Bests are loaded from and saved to st.
func NewSession(src rng.Source, st store.Store, viewport bounce.Viewport, logger *slog.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}

	m := bounce.NewManager(src, viewport)
	platforms := m.GenerateInitial(viewport)
	startY := platforms[0].Y

	height := scoring.NewHeightTracker(st, startY)
	points := scoring.NewPointsTracker(st, height, m)
	m.AddListener(points)

	return &Session{
		Manager:    m,
		Height:     height,
		Points:     points,
		MissChance: BaseMissChance,
		rng:        src,
		log:        logger,
		playerY:    startY,
	}
}

// Over reports whether the run has ended
func (s *Session) Over() bool {
	return s.over
}

// PlayerY returns the player's current y
func (s *Session) PlayerY() float64 {
	return s.playerY
}

// target returns the nearest unbounced platform above the player
func (s *Session) target() (bounce.Platform, bool) {
	var best bounce.Platform
	found := false
	for _, p := range s.Manager.Platforms() {
		if p.State != bounce.Unbounced || p.Y >= s.playerY {
			continue
		}
		if !found || p.Y > best.Y {
			best = p
			found = true
		}
	}
	return best, found
}

func (s *Session) missChance(p bounce.Platform) float64 {
	chance := s.MissChance * s.Manager.Difficulty().Multiplier
	if p.IsTiny {
		chance += TinyMissPenalty
	}
	return math.Min(chance, 1)
}

// Step performs one jump. It returns ErrFell when the run ends; any other
// error is a failed save of a best score and does not end the run.
func (s *Session) Step() (bounce.BounceEvent, error) {
	if s.over {
		return bounce.BounceEvent{}, ErrFell
	}

	p, ok := s.target()
	if !ok || (s.MissChance > 0 && rng.Chance(s.rng, s.missChance(p))) {
		s.over = true
		s.Manager.ResetCombo()
		s.log.Info("run over", "height", s.Height.Current(), "points", s.Points.Points(), "bounces", s.bounces)
		return bounce.BounceEvent{}, ErrFell
	}

	ev, landed := s.Manager.HandleContact(p.ID, landingVelocity, p.Y)
	if !landed {
		return bounce.BounceEvent{}, fmt.Errorf("platform %d rejected the landing", p.ID)
	}
	s.playerY = p.Y
	s.bounces++

	var errs []error
	hu, err := s.Height.Update(s.playerY)
	if err != nil {
		errs = append(errs, err)
	}
	s.Manager.UpdateDifficulty(float64(hu.Height))
	for _, m := range hu.Milestones {
		s.log.Info("milestone", "height", m)
	}

	tier, err := s.Points.Update()
	if err != nil {
		errs = append(errs, err)
	}
	if tier > 0 {
		s.log.Info("tier bonus", "points", tier, "height", hu.Height)
	}

	vp := s.Manager.Viewport()
	s.Manager.Update(JumpDurationMs, bounce.Camera{
		ScrollY: s.playerY - vp.Height + bounce.SpawnOffset,
		Height:  vp.Height,
	})

	return ev, errors.Join(errs...)
}

// Run steps until the run ends or maxJumps is reached (0 means no limit).
// Save failures are logged and do not stop the run.
func (s *Session) Run(maxJumps int) Result {
	for i := 0; maxJumps == 0 || i < maxJumps; i++ {
		if _, err := s.Step(); err != nil {
			if errors.Is(err, ErrFell) {
				break
			}
			s.log.Warn("saving score failed", "error", err)
		}
	}
	return s.Result()
}

// Result reports the scores so far
func (s *Session) Result() Result {
	return Result{
		Height:     s.Height.Current(),
		BestHeight: s.Height.Best(),
		Points:     s.Points.Points(),
		BestPoints: s.Points.Best(),
		Bounces:    s.bounces,
	}
}
