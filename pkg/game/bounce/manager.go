package bounce

import (
	"math"

	"turtledepths/pkg/engine/rng"
)

// Bounce physics.
const (
	// BounceImpulse is the upward velocity given to the player (negative is up).
	BounceImpulse = -900.0
	// LandingThreshold is the slowest upward velocity that still lands.
	LandingThreshold = -50.0
	// ComboStep is the number of consecutive bounces per multiplier step.
	ComboStep = 5
	// LookAhead triggers more platforms once the player is this close to the highest one.
	LookAhead = 800.0

	initialBatch = 5
	refillBatch  = 2
)

// Viewport is the visible play area in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Camera is the host camera state used for cleanup.
type Camera struct {
	ScrollY float64
	Height  float64
}

// BounceEvent is emitted once per accepted bounce.
type BounceEvent struct {
	Platform           PlatformID
	X                  float64
	Y                  float64
	IsMoving           bool
	IsTiny             bool
	IsTimed            bool
	Impulse            float64
	ComboMultiplier    int
	ConsecutiveBounces int
}

// BounceListener receives accepted bounces (scoring, audio, effects).
type BounceListener interface {
	OnBounce(ev BounceEvent)
}

// BounceListenerFunc adapts a function to BounceListener
type BounceListenerFunc func(ev BounceEvent)

// OnBounce calls f(ev)
func (f BounceListenerFunc) OnBounce(ev BounceEvent) {
	f(ev)
}

// Manager owns the platform arena for one run. It is driven from a single
// update loop and is not safe for concurrent use.
type Manager struct {
	rng      rng.Source
	viewport Viewport

	platforms map[PlatformID]*Platform
	order     []PlatformID // creation order
	nextID    PlatformID

	// position of the last generated platform
	lastX      float64
	lastY      float64
	difficulty Difficulty

	consecutiveBounces int
	comboMultiplier    int

	listeners []BounceListener
}

// NewManager creates an empty manager at height-0 difficulty
func NewManager(src rng.Source, viewport Viewport) *Manager {
	m := &Manager{
		rng:        src,
		viewport:   viewport,
		platforms:  make(map[PlatformID]*Platform),
		difficulty: UpdateDifficulty(0),
	}
	m.ResetCombo()
	return m
}

// AddListener registers l for bounce events
func (m *Manager) AddListener(l BounceListener) {
	m.listeners = append(m.listeners, l)
}

// Viewport returns the play area the manager generates into
func (m *Manager) Viewport() Viewport {
	return m.viewport
}

// Difficulty returns the difficulty currently applied to new platforms
func (m *Manager) Difficulty() Difficulty {
	return m.difficulty
}

// UpdateDifficulty recomputes the difficulty from height and applies it to
// subsequent platforms and moving speeds.
func (m *Manager) UpdateDifficulty(height float64) Difficulty {
	m.difficulty = UpdateDifficulty(height)
	return m.difficulty
}

// Reset discards every platform
func (m *Manager) Reset() {
	m.platforms = make(map[PlatformID]*Platform)
	m.order = nil
	m.lastX = m.viewport.Width / 2
	m.lastY = 0
}

// GenerateInitial clears the arena, places the spawn platform centred near
// the bottom of viewport and a first batch above it.
func (m *Manager) GenerateInitial(viewport Viewport) []Platform {
	m.viewport = viewport
	m.Reset()

	spawnY := viewport.Height - SpawnOffset
	m.add(newPlatform(m.rng, viewport.Width/2, spawnY, false, m.difficulty))
	m.lastX = viewport.Width / 2
	m.lastY = spawnY

	for i := 0; i < initialBatch; i++ {
		m.GenerateNext()
	}
	return m.Platforms()
}

// GenerateNext places one platform above the last generated one. Position
// is measured from that platform even after it has been removed.
func (m *Manager) GenerateNext() Platform {
	allowMoving := len(m.order) > 0

	p := Next(m.rng, m.lastX, m.lastY, m.difficulty, m.viewport.Width, allowMoving)
	m.lastX = p.X
	m.lastY = p.Y
	return *m.add(p)
}

func (m *Manager) add(p Platform) *Platform {
	m.nextID++
	p.ID = m.nextID
	rec := &p
	m.platforms[p.ID] = rec
	m.order = append(m.order, p.ID)
	return rec
}

// Platform returns the live platform with id
func (m *Manager) Platform(id PlatformID) (Platform, bool) {
	p, ok := m.platforms[id]
	if !ok {
		return Platform{}, false
	}
	return *p, true
}

// Platforms returns copies of the live platforms in creation order
func (m *Manager) Platforms() []Platform {
	out := make([]Platform, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.platforms[id])
	}
	return out
}

// Len returns the number of live platforms
func (m *Manager) Len() int {
	return len(m.order)
}

// Combo returns the consecutive bounce count and the current multiplier
func (m *Manager) Combo() (bounces, multiplier int) {
	return m.consecutiveBounces, m.comboMultiplier
}

// ComboMultiplier returns the current multiplier
func (m *Manager) ComboMultiplier() int {
	return m.comboMultiplier
}

// ResetCombo clears the combo on death or restart
func (m *Manager) ResetCombo() {
	m.consecutiveBounces = 0
	m.comboMultiplier = 1
}

// HandleContact processes a player touching platform id while moving with
// velocityY at height playerY. It returns the event and true only for the
// first landing on an unbounced platform; any other contact is a no-op.
func (m *Manager) HandleContact(id PlatformID, velocityY, playerY float64) (BounceEvent, bool) {
	p, ok := m.platforms[id]
	if !ok || p.State != Unbounced {
		return BounceEvent{}, false
	}
	if velocityY <= LandingThreshold {
		return BounceEvent{}, false
	}

	p.State = Bounced
	p.removeIn = WiggleDuration

	m.consecutiveBounces++
	m.comboMultiplier = m.consecutiveBounces/ComboStep + 1

	ev := BounceEvent{
		Platform:           p.ID,
		X:                  p.X,
		Y:                  p.Y,
		IsMoving:           p.IsMoving,
		IsTiny:             p.IsTiny,
		IsTimed:            p.IsTimedDespawn,
		Impulse:            BounceImpulse,
		ComboMultiplier:    m.comboMultiplier,
		ConsecutiveBounces: m.consecutiveBounces,
	}
	for _, l := range m.listeners {
		l.OnBounce(ev)
	}

	m.refill(playerY)
	return ev, true
}

// refill generates more platforms when playerY is within LookAhead of the
// highest one.
func (m *Manager) refill(playerY float64) {
	highest := math.Inf(1)
	for _, p := range m.platforms {
		highest = math.Min(highest, p.Y)
	}
	if playerY < highest+LookAhead {
		for i := 0; i < refillBatch; i++ {
			m.GenerateNext()
		}
	}
}

// Update advances the arena by deltaMs: moves moving platforms, expires timed
// and wiggled platforms, and drops platforms far below cam. It returns the IDs
// removed during this step.
func (m *Manager) Update(deltaMs float64, cam Camera) []PlatformID {
	speed := m.difficulty.MoveSpeedBase * m.difficulty.Multiplier
	cleanupY := cam.ScrollY + cam.Height + CleanupMargin

	var removed []PlatformID
	for _, id := range m.order {
		p := m.platforms[id]

		if p.IsMoving && p.MoveDirection != 0 {
			p.X += float64(p.MoveDirection) * speed * (deltaMs / 1000)
			if p.X <= MoveEdgeMargin || p.X >= m.viewport.Width-MoveEdgeMargin {
				p.MoveDirection = -p.MoveDirection
			}
		}

		p.age += deltaMs
		expired := false
		switch p.State {
		case Unbounced:
			expired = p.IsTimedDespawn && p.age >= TimedDespawnDelay
		case Bounced:
			p.removeIn -= deltaMs
			expired = p.removeIn <= 0
		}

		if expired || p.Y > cleanupY {
			removed = append(removed, id)
		}
	}

	for _, id := range removed {
		m.remove(id)
	}
	return removed
}

func (m *Manager) remove(id PlatformID) {
	p, ok := m.platforms[id]
	if !ok {
		return
	}
	p.State = Removed
	delete(m.platforms, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}
