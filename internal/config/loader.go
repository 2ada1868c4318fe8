package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the session tuning.
// Search order: customPath -> ~/.mariosim/configs/session.yaml ->
// ./configs/session.yaml -> embedded default.
// A customPath that cannot be read or parsed is an error; the fallback
// locations fail silently to the next candidate.
func Load(customPath string) (Tuning, error) {
	var t Tuning

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return t, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &t); err != nil {
			return t, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		t.Normalize()
		return t, nil
	}

	if userPath := userConfigPath("session.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &t); err == nil {
				t.Normalize()
				return t, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "session.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &t); err == nil {
			t.Normalize()
			return t, nil
		}
	}

	if err := yaml.Unmarshal(defaultSessionYAML, &t); err != nil {
		return DefaultTuning(), nil // Fall back to hardcoded if embed is broken
	}
	t.Normalize()
	return t, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mariosim", "configs", filename)
}
