// Where: internal/state/context.go
// What: Project context resolution.
// Why: Normalize the working directory into canonical names and paths.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wsgibox/wsgibox/internal/meta"
)

// Context carries the resolved per-project paths and identifiers every
// command operates on.
type Context struct {
	ProjectDir    string
	Project       string
	OutputDir     string
	ContextDir    string
	StatePath     string
	ContainerName string
}

var invalidProjectChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// ResolveContext derives the project identity from the project directory.
// The project name is the sanitized directory base name; it scopes container
// names, image repositories, and Docker labels.
func ResolveContext(projectDir string) (Context, error) {
	absProjectDir, err := filepath.Abs(projectDir)
	if err != nil {
		return Context{}, fmt.Errorf("resolve project dir: %w", err)
	}
	if info, err := os.Stat(absProjectDir); err != nil || !info.IsDir() {
		return Context{}, fmt.Errorf("project directory not found: %s", absProjectDir)
	}

	project := sanitizeProject(filepath.Base(absProjectDir))
	outputDir := filepath.Join(absProjectDir, meta.OutputDir)

	return Context{
		ProjectDir:    absProjectDir,
		Project:       project,
		OutputDir:     outputDir,
		ContextDir:    filepath.Join(outputDir, meta.ContextDirName),
		StatePath:     filepath.Join(outputDir, meta.StateFileName),
		ContainerName: fmt.Sprintf("%s-%s", meta.AppName, project),
	}, nil
}

func sanitizeProject(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	cleaned := invalidProjectChars.ReplaceAllString(lowered, "-")
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		return meta.AppName
	}
	return cleaned
}
