package config

import (
	_ "embed"
)

//go:embed defaults/session.yaml
var defaultSessionYAML []byte

// DefaultTuning returns the built-in session tuning. The values mirror the
// embedded defaults/session.yaml and act as the fallback of last resort.
func DefaultTuning() Tuning {
	return Tuning{
		Session: SessionTuning{
			Lives: 3,
		},
		Manual: TickProfile{
			MaxScoreGain: 10,
			Danger:       0.10,
			DriftMin:     -2,
			DriftMax:     3,
		},
		Auto: TickProfile{
			MaxScoreGain: 5,
			Danger:       0.05,
			DriftMin:     -1,
			DriftMax:     2,
		},
		Frame: FrameTuning{
			Width:         240,
			ObstacleAfter: 50,
			CoinPeriod:    30,
			CoinVisible:   15,
		},
		Speed: SpeedTuning{
			Min:     0.01,
			Max:     0.10,
			Default: 0.05,
			Step:    0.01,
		},
	}
}
