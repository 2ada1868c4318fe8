package sim

import (
	"strings"
	"testing"

	"github.com/nkarpov/mariosim/internal/config"
	"github.com/nkarpov/mariosim/internal/core"
)

func renderString(s *Session, w, h int) string {
	screen := core.NewScreen(w, h)
	s.Render(screen)
	return screen.String()
}

func TestRenderDrawsScene(t *testing.T) {
	s := newStarted(t, 1)
	screen := core.NewScreen(80, 24)
	s.Render(screen)

	// Ground band at the bottom
	groundY := 24 - groundRows
	for x := 0; x < 80; x++ {
		if screen.Get(x, groundY) != GroundChar {
			t.Fatalf("expected ground at (%d, %d), got %q", x, groundY, screen.Get(x, groundY))
		}
	}

	// Mario stands on the ground somewhere
	if !strings.ContainsRune(screen.Row(groundY-1), MarioChar) {
		t.Error("mario should be drawn above the ground")
	}

	// Fresh session: coin visible (step 0), no obstacle yet
	if !strings.ContainsRune(renderString(s, 80, 24), CoinChar) {
		t.Error("coin should be visible at step 0")
	}
}

func TestRenderObstacleAppearsAfterThreshold(t *testing.T) {
	s := newStarted(t, 2)

	if strings.ContainsRune(renderString(s, 80, 24), ObstacleChar) {
		t.Error("obstacle should not be drawn before the step threshold")
	}

	threshold := s.Tuning().Frame.ObstacleAfter
	for s.Snapshot().Steps <= threshold {
		if s.Snapshot().Done {
			s.Start()
		}
		s.AutoTick()
	}

	if !strings.ContainsRune(renderString(s, 80, 24), ObstacleChar) {
		t.Error("obstacle should be drawn past the step threshold")
	}
}

func TestRenderCoinBlinks(t *testing.T) {
	s := newStarted(t, 3)
	frame := s.Tuning().Frame

	// Drive the session to a step where the coin is hidden
	for s.Snapshot().Steps%frame.CoinPeriod < frame.CoinVisible {
		if s.Snapshot().Done {
			s.Start()
		}
		s.AutoTick()
	}

	if strings.ContainsRune(renderString(s, 80, 24), CoinChar) {
		t.Errorf("coin should be hidden at step %d", s.Snapshot().Steps)
	}
}

func TestRenderVariantsAreCosmetic(t *testing.T) {
	for _, v := range Variants() {
		t.Run(string(v), func(t *testing.T) {
			s := newStarted(t, 4)
			for i := 0; i < 15; i++ {
				s.AutoTick()
			}
			before := s.Snapshot()

			s.SetVariant(v)
			out := renderString(s, 80, 24)
			if strings.TrimSpace(out) == "" {
				t.Errorf("variant %q rendered an empty frame", v)
			}

			after := s.Snapshot()
			if after.Score != before.Score || after.Steps != before.Steps || after.Lives != before.Lives {
				t.Errorf("rendering variant %q mutated counters", v)
			}
		})
	}
}

func TestRenderRectangularLetterboxes(t *testing.T) {
	s := newStarted(t, 5)
	s.SetVariant(VariantRectangular)

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	// Top and bottom bars stay blank
	if strings.TrimSpace(screen.Row(0)) != "" {
		t.Error("top letterbox bar should be blank")
	}
	if strings.TrimSpace(screen.Row(23)) != "" {
		t.Error("bottom letterbox bar should be blank")
	}
}

func TestRenderDownsampledSkipsOddColumns(t *testing.T) {
	s := newStarted(t, 6)
	s.SetVariant(VariantDownsampled)

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	for y := 0; y < 24; y++ {
		for x := 1; x < 80; x += 2 {
			if screen.Get(x, y) != ' ' {
				t.Fatalf("odd column %d should be blank in downsampled mode, got %q at y=%d",
					x, screen.Get(x, y), y)
			}
		}
	}
}

func TestRenderTinyScreenIsSafe(t *testing.T) {
	s := New(config.DefaultTuning())
	s.Reset(core.RuntimeConfig{Seed: 1})
	s.Start()

	// Must not panic or draw out of bounds
	screen := core.NewScreen(4, 2)
	s.Render(screen)
}
