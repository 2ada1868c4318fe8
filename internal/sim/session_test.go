package sim

import (
	"testing"

	"github.com/nkarpov/mariosim/internal/config"
	"github.com/nkarpov/mariosim/internal/core"
)

func newStarted(t *testing.T, seed int64) *Session {
	t.Helper()
	s := New(config.DefaultTuning())
	s.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	s.Start()
	return s
}

func TestStepsIncreaseByOne(t *testing.T) {
	s := newStarted(t, 42)

	for i := 1; i <= 100; i++ {
		before := s.Snapshot().Steps
		res := s.AutoTick()
		if s.Snapshot().Done {
			if res.State.Steps != before+1 {
				t.Fatalf("final tick: steps = %d, expected %d", res.State.Steps, before+1)
			}
			break
		}
		if res.State.Steps != before+1 {
			t.Fatalf("tick %d: steps = %d, expected %d", i, res.State.Steps, before+1)
		}
	}
}

func TestScoreMonotonic(t *testing.T) {
	s := newStarted(t, 7)

	prev := 0
	for i := 0; i < 200; i++ {
		res := s.Tick(s.RandomAction())
		if res.State.Score < prev {
			t.Fatalf("score decreased from %d to %d", prev, res.State.Score)
		}
		prev = res.State.Score
		if res.State.Done {
			break
		}
	}
}

func TestLivesNeverNegative(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Manual.Danger = 1.0 // Lose a life every tick

	s := New(tuning)
	s.Reset(core.RuntimeConfig{Seed: 1})
	s.Start()

	for i := 0; i < 10; i++ {
		res := s.Tick("right")
		if res.State.Lives < 0 {
			t.Fatalf("lives went negative: %d", res.State.Lives)
		}
	}
	if !s.Snapshot().Done {
		t.Error("session should be done after exhausting lives")
	}
}

func TestDoneStopsTicking(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Manual.Danger = 1.0

	s := New(tuning)
	s.Reset(core.RuntimeConfig{Seed: 3})
	s.Start()

	// Exhaust all lives
	for !s.Snapshot().Done {
		s.Tick("right")
	}

	st := s.Snapshot()
	res := s.AutoTick()
	if res.Action != ActionNoop {
		t.Errorf("tick on a done session should be a noop, got %q", res.Action)
	}
	if res.State != st {
		t.Errorf("tick on a done session mutated state: %+v -> %+v", st, res.State)
	}
}

func TestAutoTickDrawsFromActiveScheme(t *testing.T) {
	for _, scheme := range Schemes() {
		t.Run(string(scheme), func(t *testing.T) {
			s := newStarted(t, 99)
			s.SetScheme(scheme)

			for i := 0; i < 300; i++ {
				res := s.AutoTick()
				if res.State.Done {
					s.Start()
					continue
				}
				if !scheme.Contains(res.Action) {
					t.Fatalf("drew %q, not in scheme %q", res.Action, scheme)
				}
			}
		})
	}
}

func TestActionSetSizes(t *testing.T) {
	tests := []struct {
		scheme Scheme
		count  int
	}{
		{SchemeRightOnly, 5},
		{SchemeSimple, 7},
		{SchemeComplex, 12},
	}

	for _, tc := range tests {
		if got := len(Actions(tc.scheme)); got != tc.count {
			t.Errorf("len(Actions(%s)) = %d, expected %d", tc.scheme, got, tc.count)
		}
	}

	// Simple must be a strict subset of complex
	for _, a := range Actions(SchemeSimple) {
		if !SchemeComplex.Contains(a) {
			t.Errorf("simple action %q missing from complex set", a)
		}
	}
}

func TestTenAutoTicksScenario(t *testing.T) {
	s := newStarted(t, 12345)
	s.SetScheme(SchemeSimple)
	s.SetAutoPlay(true)

	for i := 0; i < 10; i++ {
		s.AutoTick()
		if s.Snapshot().Done {
			break
		}
	}

	st := s.Snapshot()
	maxGain := s.Tuning().Auto.MaxScoreGain
	if st.Steps > 10 {
		t.Errorf("steps = %d, expected at most 10", st.Steps)
	}
	if !st.Done && st.Steps != 10 {
		t.Errorf("steps = %d, expected 10 for a surviving session", st.Steps)
	}
	if st.Score > st.Steps*maxGain {
		t.Errorf("score = %d, exceeds steps*maxGain = %d", st.Score, st.Steps*maxGain)
	}
	if st.Lives < 0 || st.Lives > 3 {
		t.Errorf("lives = %d, expected within [0, 3]", st.Lives)
	}
}

func TestVariantChangePreservesCounters(t *testing.T) {
	s := newStarted(t, 5)

	for i := 0; i < 20; i++ {
		s.AutoTick()
	}
	before := s.Snapshot()

	s.SetVariant(VariantPixelated)
	s.CycleScheme(1)

	after := s.Snapshot()
	if after.Score != before.Score || after.Lives != before.Lives || after.Steps != before.Steps {
		t.Errorf("changing variant/scheme mutated counters: %+v -> %+v", before, after)
	}
	if after.Variant != VariantPixelated {
		t.Errorf("variant = %q, expected pixelated", after.Variant)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() State {
		s := newStarted(t, 777)
		s.SetScheme(SchemeComplex)
		for i := 0; i < 150; i++ {
			s.AutoTick()
			if s.Snapshot().Done {
				break
			}
		}
		return s.Snapshot()
	}

	st1 := run()
	st2 := run()
	if st1 != st2 {
		t.Errorf("same seed produced different states:\n%+v\n%+v", st1, st2)
	}
}

func TestPauseGatesTicks(t *testing.T) {
	s := newStarted(t, 11)
	s.AutoTick()
	s.Pause()

	before := s.Snapshot()
	res := s.Tick("right")
	if res.Action != ActionNoop {
		t.Errorf("tick while paused should be a noop, got %q", res.Action)
	}
	if res.State.Steps != before.Steps {
		t.Error("tick while paused should not advance steps")
	}

	s.Resume()
	res = s.Tick("right")
	if res.State.Steps != before.Steps+1 {
		t.Error("tick after resume should advance steps")
	}
}

func TestStartRestoresDefaults(t *testing.T) {
	s := newStarted(t, 13)
	s.SetVariant(VariantRectangular)
	s.AdjustSpeed(2)

	for i := 0; i < 30; i++ {
		s.AutoTick()
	}
	s.Start()

	st := s.Snapshot()
	if st.Score != 0 || st.Steps != 0 {
		t.Errorf("Start should zero counters, got score=%d steps=%d", st.Score, st.Steps)
	}
	if st.Lives != 3 {
		t.Errorf("Start should restore lives, got %d", st.Lives)
	}
	// Widget selections survive a restart
	if st.Variant != VariantRectangular {
		t.Error("Start should preserve the selected variant")
	}
	if st.Speed == config.DefaultTuning().Speed.Default {
		t.Error("Start should preserve the adjusted speed")
	}
}

func TestMarioXWrapsAround(t *testing.T) {
	s := newStarted(t, 21)
	width := s.Tuning().Frame.Width

	for i := 0; i < 500; i++ {
		res := s.AutoTick()
		if res.State.Done {
			s.Start()
			continue
		}
		if res.State.MarioX < 0 || res.State.MarioX >= width {
			t.Fatalf("marioX = %d, expected within [0, %d)", res.State.MarioX, width)
		}
	}
}

func TestSpeedClampedToBounds(t *testing.T) {
	s := New(config.DefaultTuning())
	tuning := s.Tuning()

	s.SetSpeed(99.0)
	if got := s.Snapshot().Speed; got != tuning.Speed.Max {
		t.Errorf("speed = %f, expected clamped to max %f", got, tuning.Speed.Max)
	}

	s.SetSpeed(0.0001)
	if got := s.Snapshot().Speed; got != tuning.Speed.Min {
		t.Errorf("speed = %f, expected clamped to min %f", got, tuning.Speed.Min)
	}

	s.AdjustSpeed(-100)
	if got := s.Snapshot().Speed; got != tuning.Speed.Min {
		t.Errorf("speed = %f, expected to stay at min", got)
	}
}
