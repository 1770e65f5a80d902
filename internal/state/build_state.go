// Where: internal/state/build_state.go
// What: Last-build record persistence.
// Why: Let run-phase commands reuse the image the build phase produced.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// BuildState records the outcome of the most recent successful build.
type BuildState struct {
	ImageRef     string    `yaml:"image_ref"`
	AppFile      string    `yaml:"app_file"`
	LaunchTarget string    `yaml:"launch_target"`
	Port         int       `yaml:"port"`
	BuiltAt      time.Time `yaml:"built_at"`
}

// SaveBuildState writes the build record next to the staged context.
func SaveBuildState(path string, bs BuildState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(bs)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadBuildState reads the last build record. A missing file means no build
// has completed in this project yet.
func LoadBuildState(path string) (BuildState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return BuildState{}, fmt.Errorf("no build recorded; run 'wsgibox build' first")
		}
		return BuildState{}, err
	}
	var bs BuildState
	if err := yaml.Unmarshal(raw, &bs); err != nil {
		return BuildState{}, fmt.Errorf("parse build state: %w", err)
	}
	if bs.ImageRef == "" {
		return BuildState{}, fmt.Errorf("build state missing image reference")
	}
	return bs, nil
}
