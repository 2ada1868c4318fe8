package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningMatchesEmbedded(t *testing.T) {
	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load with no custom path should not fail: %v", err)
	}

	def := DefaultTuning()
	if loaded.Session.Lives != def.Session.Lives {
		t.Errorf("embedded lives = %d, hardcoded = %d", loaded.Session.Lives, def.Session.Lives)
	}
	if loaded.Manual.MaxScoreGain != def.Manual.MaxScoreGain {
		t.Errorf("embedded manual gain = %d, hardcoded = %d", loaded.Manual.MaxScoreGain, def.Manual.MaxScoreGain)
	}
	if loaded.Auto.Danger != def.Auto.Danger {
		t.Errorf("embedded auto danger = %f, hardcoded = %f", loaded.Auto.Danger, def.Auto.Danger)
	}
	if loaded.Speed.Default != def.Speed.Default {
		t.Errorf("embedded default speed = %f, hardcoded = %f", loaded.Speed.Default, def.Speed.Default)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yamlData := `
session:
  lives: 5
manual:
  max_score_gain: 20
  danger: 0.5
  drift_min: -1
  drift_max: 1
`
	if err := os.WriteFile(path, []byte(yamlData), 0o600); err != nil {
		t.Fatal(err)
	}

	tuning, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if tuning.Session.Lives != 5 {
		t.Errorf("lives = %d, expected 5", tuning.Session.Lives)
	}
	if tuning.Manual.MaxScoreGain != 20 {
		t.Errorf("manual gain = %d, expected 20", tuning.Manual.MaxScoreGain)
	}
	// Unset sections must be filled in by Normalize
	if tuning.Frame.Width <= 0 {
		t.Error("frame width should be normalized to a positive value")
	}
	if tuning.Speed.Min <= 0 {
		t.Error("speed min should be normalized to a positive value")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Tuning)
		check func(*testing.T, Tuning)
	}{
		{
			name: "negative lives",
			mut:  func(tn *Tuning) { tn.Session.Lives = -1 },
			check: func(t *testing.T, tn Tuning) {
				if tn.Session.Lives <= 0 {
					t.Errorf("lives = %d, expected positive", tn.Session.Lives)
				}
			},
		},
		{
			name: "danger above one",
			mut:  func(tn *Tuning) { tn.Manual.Danger = 1.5 },
			check: func(t *testing.T, tn Tuning) {
				if tn.Manual.Danger < 0 || tn.Manual.Danger > 1 {
					t.Errorf("danger = %f, expected within [0, 1]", tn.Manual.Danger)
				}
			},
		},
		{
			name: "inverted drift range",
			mut:  func(tn *Tuning) { tn.Auto.DriftMin, tn.Auto.DriftMax = 5, -5 },
			check: func(t *testing.T, tn Tuning) {
				if tn.Auto.DriftMin > tn.Auto.DriftMax {
					t.Error("drift range should be ordered after Normalize")
				}
			},
		},
		{
			name: "coin visible above period",
			mut:  func(tn *Tuning) { tn.Frame.CoinVisible = 99 },
			check: func(t *testing.T, tn Tuning) {
				if tn.Frame.CoinVisible > tn.Frame.CoinPeriod {
					t.Error("coin visible should not exceed coin period")
				}
			},
		},
		{
			name: "default speed outside bounds",
			mut:  func(tn *Tuning) { tn.Speed.Default = 9.0 },
			check: func(t *testing.T, tn Tuning) {
				if tn.Speed.Default < tn.Speed.Min || tn.Speed.Default > tn.Speed.Max {
					t.Error("default speed should be within bounds after Normalize")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tc.mut(&tuning)
			tuning.Normalize()
			tc.check(t, tuning)
		})
	}
}
