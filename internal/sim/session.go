package sim

import (
	"math/rand"

	"github.com/nkarpov/mariosim/internal/config"
	"github.com/nkarpov/mariosim/internal/core"
)

// State is an immutable snapshot of the session counters and settings.
type State struct {
	Score    int
	Lives    int
	Steps    int
	MarioX   int
	Variant  Variant
	Scheme   Scheme
	AutoPlay bool
	Speed    float64 // Seconds per auto-play tick
	Running  bool
	Paused   bool
	Done     bool
}

// TickResult is returned by Tick and AutoTick.
type TickResult struct {
	Action   Action // The action that was applied (Noop for gated ticks)
	LostLife bool   // Whether this tick cost a life
	State    State
}

// Session holds the simulated play session. It is mutated only through its
// methods and only on the UI event loop, so it needs no locking.
type Session struct {
	tuning config.Tuning
	rng    *rand.Rand

	score  int
	lives  int
	steps  int
	marioX int

	variant  Variant
	scheme   Scheme
	autoPlay bool
	speed    float64

	running bool
	paused  bool
	done    bool
}

// New creates a session with the given tuning. The session is idle until
// Reset and Start are called.
func New(tuning config.Tuning) *Session {
	tuning.Normalize()
	return &Session{
		tuning:  tuning,
		rng:     rand.New(rand.NewSource(0)),
		variant: VariantStandard,
		scheme:  SchemeSimple,
		speed:   tuning.Speed.Default,
		lives:   tuning.Session.Lives,
	}
}

// Reset reseeds the RNG and restores the counters to their defaults.
// Variant, scheme, auto-play and speed selections are preserved: resetting
// the session is not supposed to undo the user's widget choices.
func (s *Session) Reset(rt core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(rt.Seed))
	s.score = 0
	s.steps = 0
	s.marioX = 10
	s.lives = s.tuning.Session.Lives
	s.running = false
	s.paused = false
	s.done = false
}

// Start begins (or restarts) play. Counters are zeroed as with Reset but
// the RNG stream is kept, so one seed covers a whole multi-game session.
func (s *Session) Start() {
	s.score = 0
	s.steps = 0
	s.marioX = 10
	s.lives = s.tuning.Session.Lives
	s.running = true
	s.paused = false
	s.done = false
}

// Pause suspends ticking without ending the session.
func (s *Session) Pause() {
	if s.running && !s.done {
		s.paused = true
	}
}

// Resume continues a paused session.
func (s *Session) Resume() {
	s.paused = false
}

// TogglePause flips the paused state.
func (s *Session) TogglePause() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// SetVariant changes the display variant. Counters are untouched.
func (s *Session) SetVariant(v Variant) {
	s.variant = v
}

// CycleVariant advances to the next display variant.
func (s *Session) CycleVariant(delta int) {
	s.variant = cycle(Variants(), s.variant, delta)
}

// SetScheme changes the control scheme. Counters are untouched.
func (s *Session) SetScheme(sc Scheme) {
	s.scheme = sc
}

// CycleScheme advances to the next control scheme.
func (s *Session) CycleScheme(delta int) {
	s.scheme = cycle(Schemes(), s.scheme, delta)
}

// SetAutoPlay toggles the auto-play mode.
func (s *Session) SetAutoPlay(on bool) {
	s.autoPlay = on
}

// AutoPlay reports whether auto-play is enabled.
func (s *Session) AutoPlay() bool {
	return s.autoPlay
}

// SetSpeed sets the auto-play speed in seconds per tick, clamped to the
// configured bounds.
func (s *Session) SetSpeed(secPerTick float64) {
	s.speed = core.ClampF(secPerTick, s.tuning.Speed.Min, s.tuning.Speed.Max)
}

// AdjustSpeed nudges the speed by n configured steps.
func (s *Session) AdjustSpeed(n int) {
	s.SetSpeed(s.speed + float64(n)*s.tuning.Speed.Step)
}

// Tick applies one manual tick with the given action. Ticks are gated: a
// session that is not running, is paused, or is done does not change.
func (s *Session) Tick(a Action) TickResult {
	return s.step(a, s.tuning.Manual)
}

// AutoTick draws a uniformly random action from the active scheme's set and
// applies one auto-play tick.
func (s *Session) AutoTick() TickResult {
	if !s.tickable() {
		return TickResult{Action: ActionNoop, State: s.Snapshot()}
	}
	set := Actions(s.scheme)
	a := set[s.rng.Intn(len(set))]
	return s.step(a, s.tuning.Auto)
}

// RandomAction draws a uniformly random action from the active scheme's
// set without ticking.
func (s *Session) RandomAction() Action {
	set := Actions(s.scheme)
	return set[s.rng.Intn(len(set))]
}

// tickable reports whether a tick would mutate the session.
func (s *Session) tickable() bool {
	return s.running && !s.paused && !s.done
}

// step is the single state transition of the simulator. It never fails:
// inputs are constrained by the UI, so there are no error paths.
func (s *Session) step(a Action, p config.TickProfile) TickResult {
	if !s.tickable() {
		return TickResult{Action: ActionNoop, State: s.Snapshot()}
	}

	s.steps++
	s.score += s.rng.Intn(p.MaxScoreGain + 1)

	drift := p.DriftMin + s.rng.Intn(p.DriftMax-p.DriftMin+1)
	s.marioX = mod(s.marioX+drift, s.tuning.Frame.Width)

	lost := false
	if s.rng.Float64() < p.Danger {
		lost = true
		if s.lives > 0 {
			s.lives--
		}
		if s.lives == 0 {
			s.done = true
			s.running = false
		}
	}

	return TickResult{Action: a, LostLife: lost, State: s.Snapshot()}
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() State {
	return State{
		Score:    s.score,
		Lives:    s.lives,
		Steps:    s.steps,
		MarioX:   s.marioX,
		Variant:  s.variant,
		Scheme:   s.scheme,
		AutoPlay: s.autoPlay,
		Speed:    s.speed,
		Running:  s.running,
		Paused:   s.paused,
		Done:     s.done,
	}
}

// Tuning returns the session's tuning parameters.
func (s *Session) Tuning() config.Tuning {
	return s.tuning
}

// mod wraps v into [0, m), handling negative values.
func mod(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}

// cycle returns the element delta positions after cur in ring order.
func cycle[T comparable](ring []T, cur T, delta int) T {
	idx := 0
	for i, v := range ring {
		if v == cur {
			idx = i
			break
		}
	}
	return ring[mod(idx+delta, len(ring))]
}
