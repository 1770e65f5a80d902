// Where: internal/config/config.go
// What: wsgibox.yml load helpers.
// Why: Turn the on-disk recipe file into a validated recipe with defaults applied.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wsgibox/wsgibox/internal/meta"
	"github.com/wsgibox/wsgibox/internal/recipe"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the wsgibox.yml document. Every field is optional;
// missing values fall back to recipe defaults.
type FileConfig struct {
	Image        ImageConfig  `yaml:"image,omitempty"`
	App          AppConfig    `yaml:"app,omitempty"`
	Requirements string       `yaml:"requirements,omitempty"`
	Port         int          `yaml:"port,omitempty"`
	Server       ServerConfig `yaml:"server,omitempty"`
}

// ImageConfig selects the base runtime and the output image reference.
type ImageConfig struct {
	Base string `yaml:"base,omitempty"`
	Name string `yaml:"name,omitempty"`
	Tag  string `yaml:"tag,omitempty"`
}

// AppConfig selects which application file is staged at build time.
type AppConfig struct {
	File string `yaml:"file,omitempty"`
}

// ServerConfig tunes the production server started at container launch.
type ServerConfig struct {
	Workers int `yaml:"workers,omitempty"`
	Threads int `yaml:"threads,omitempty"`
}

// ConfigPath returns the expected wsgibox.yml path for a project directory.
func ConfigPath(projectDir string) string {
	return filepath.Join(projectDir, meta.ConfigFileName)
}

// LoadRecipe reads wsgibox.yml from the project directory and merges it over
// the defaults. A missing file is not an error: the tool works in a bare
// directory with pure defaults. A present but invalid file is fatal.
func LoadRecipe(projectDir string) (recipe.Recipe, error) {
	r := recipe.Default()

	path := ConfigPath(projectDir)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return recipe.Recipe{}, fmt.Errorf("read %s: %w", meta.ConfigFileName, err)
	}

	if err := ValidateConfig(raw); err != nil {
		return recipe.Recipe{}, fmt.Errorf("%s: %w", meta.ConfigFileName, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return recipe.Recipe{}, fmt.Errorf("parse %s: %w", meta.ConfigFileName, err)
	}

	return applyConfig(r, cfg), nil
}

func applyConfig(r recipe.Recipe, cfg FileConfig) recipe.Recipe {
	if v := strings.TrimSpace(cfg.Image.Base); v != "" {
		r.BaseImage = v
	}
	if v := strings.TrimSpace(cfg.Image.Name); v != "" {
		r.ImageName = v
	}
	if v := strings.TrimSpace(cfg.Image.Tag); v != "" {
		r.Tag = v
	}
	if v := strings.TrimSpace(cfg.App.File); v != "" {
		r.AppFile = v
	}
	if v := strings.TrimSpace(cfg.Requirements); v != "" {
		r.Requirements = v
	}
	if cfg.Port != 0 {
		r.Port = cfg.Port
	}
	if cfg.Server.Workers != 0 {
		r.Workers = cfg.Server.Workers
	}
	if cfg.Server.Threads != 0 {
		r.Threads = cfg.Server.Threads
	}
	return r
}

// WriteDefault writes a starter wsgibox.yml. Used by the init command.
// Fails if the file already exists.
func WriteDefault(projectDir, appFile string) (string, error) {
	path := ConfigPath(projectDir)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", meta.ConfigFileName)
	}

	if strings.TrimSpace(appFile) == "" {
		appFile = meta.DefaultAppFile
	}

	cfg := FileConfig{
		Image: ImageConfig{
			Base: meta.DefaultBaseImage,
			Tag:  meta.DefaultTag,
		},
		App:          AppConfig{File: appFile},
		Requirements: meta.DefaultRequirements,
		Port:         meta.DefaultPort,
		Server: ServerConfig{
			Workers: meta.DefaultWorkers,
			Threads: meta.DefaultThreads,
		},
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", meta.ConfigFileName, err)
	}
	return path, nil
}
