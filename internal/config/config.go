// Package config provides YAML-based tuning for the session simulator.
// The simulator has no real game logic; every constant that shapes a tick
// (score gain, danger chance, mario drift) is a placeholder and lives here
// so it can be adjusted without touching the simulator.
package config

// Tuning contains all tunable parameters for a simulated session.
type Tuning struct {
	Session SessionTuning `yaml:"session"`
	Manual  TickProfile   `yaml:"manual"`
	Auto    TickProfile   `yaml:"auto"`
	Frame   FrameTuning   `yaml:"frame"`
	Speed   SpeedTuning   `yaml:"speed"`
}

// SessionTuning defines session-level initial values.
type SessionTuning struct {
	Lives int `yaml:"lives"` // Starting lives
}

// TickProfile defines how a single tick mutates the counters.
// Manual ticks and auto-play ticks use separate profiles.
type TickProfile struct {
	MaxScoreGain int     `yaml:"max_score_gain"` // Score gain is uniform in [0, MaxScoreGain]
	Danger       float64 `yaml:"danger"`         // Probability of losing a life this tick
	DriftMin     int     `yaml:"drift_min"`      // Minimum mario x drift (inclusive)
	DriftMax     int     `yaml:"drift_max"`      // Maximum mario x drift (inclusive)
}

// FrameTuning defines the placeholder frame geometry and element timing.
type FrameTuning struct {
	Width         int `yaml:"width"`          // Logical frame width, mario x wraps at this
	ObstacleAfter int `yaml:"obstacle_after"` // Obstacle appears once steps exceed this
	CoinPeriod    int `yaml:"coin_period"`    // Coin blink cycle length in steps
	CoinVisible   int `yaml:"coin_visible"`   // Steps per cycle the coin is visible
}

// SpeedTuning bounds the auto-play speed setting, in seconds per tick.
type SpeedTuning struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Default float64 `yaml:"default"`
	Step    float64 `yaml:"step"` // Adjustment granularity in the UI
}

// Normalize clamps out-of-range values to usable ones. Inputs come from
// config files rather than users, so bad values are corrected, not rejected.
func (t *Tuning) Normalize() {
	def := DefaultTuning()

	if t.Session.Lives <= 0 {
		t.Session.Lives = def.Session.Lives
	}
	normalizeProfile(&t.Manual, def.Manual)
	normalizeProfile(&t.Auto, def.Auto)

	if t.Frame.Width <= 0 {
		t.Frame.Width = def.Frame.Width
	}
	if t.Frame.ObstacleAfter < 0 {
		t.Frame.ObstacleAfter = def.Frame.ObstacleAfter
	}
	if t.Frame.CoinPeriod <= 0 {
		t.Frame.CoinPeriod = def.Frame.CoinPeriod
	}
	if t.Frame.CoinVisible <= 0 || t.Frame.CoinVisible > t.Frame.CoinPeriod {
		t.Frame.CoinVisible = t.Frame.CoinPeriod / 2
	}

	if t.Speed.Min <= 0 {
		t.Speed.Min = def.Speed.Min
	}
	if t.Speed.Max < t.Speed.Min {
		t.Speed.Max = def.Speed.Max
	}
	if t.Speed.Default < t.Speed.Min || t.Speed.Default > t.Speed.Max {
		t.Speed.Default = (t.Speed.Min + t.Speed.Max) / 2
	}
	if t.Speed.Step <= 0 {
		t.Speed.Step = def.Speed.Step
	}
}

func normalizeProfile(p *TickProfile, def TickProfile) {
	if p.MaxScoreGain < 0 {
		p.MaxScoreGain = def.MaxScoreGain
	}
	if p.Danger < 0 || p.Danger > 1 {
		p.Danger = def.Danger
	}
	if p.DriftMin > p.DriftMax {
		p.DriftMin, p.DriftMax = def.DriftMin, def.DriftMax
	}
}
