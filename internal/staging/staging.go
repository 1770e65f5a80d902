// Where: internal/staging/staging.go
// What: Build context staging for image builds.
// Why: Keep the staged context self-contained: Dockerfile, manifest, one app file.
package staging

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/wsgibox/wsgibox/internal/dockerfile"
	"github.com/wsgibox/wsgibox/internal/meta"
	"github.com/wsgibox/wsgibox/internal/recipe"
)

// StageOptions configures context staging.
type StageOptions struct {
	ProjectDir string
	OutputDir  string
	Verbose    bool
	Out        io.Writer
}

// StagedContext describes the staged build context on disk.
type StagedContext struct {
	Dir            string
	DockerfilePath string
	Files          []string
}

// Stage prepares the build context under OutputDir: the rendered Dockerfile,
// the dependency manifest, and exactly the one application file the recipe
// selects. The context directory is rebuilt from scratch on every call so a
// previously staged app file can never leak into the next build.
func Stage(r recipe.Recipe, opts StageOptions) (StagedContext, error) {
	if err := r.Validate(); err != nil {
		return StagedContext{}, err
	}

	manifestSrc := filepath.Join(opts.ProjectDir, filepath.FromSlash(r.Requirements))
	if !fileExists(manifestSrc) {
		return StagedContext{}, fmt.Errorf("dependency manifest not found: %s", manifestSrc)
	}

	appSrc := filepath.Join(opts.ProjectDir, r.AppFile)
	if !fileExists(appSrc) {
		return StagedContext{}, fmt.Errorf("application file not found: %s", appSrc)
	}

	contextDir := opts.OutputDir
	if contextDir == "" {
		contextDir = filepath.Join(opts.ProjectDir, meta.OutputDir, meta.ContextDirName)
	}
	if err := removeDir(contextDir); err != nil {
		return StagedContext{}, fmt.Errorf("clean context dir: %w", err)
	}
	if err := ensureDir(contextDir); err != nil {
		return StagedContext{}, fmt.Errorf("create context dir: %w", err)
	}

	manifestName := filepath.Base(filepath.FromSlash(r.Requirements))
	if err := copyFile(manifestSrc, filepath.Join(contextDir, manifestName)); err != nil {
		return StagedContext{}, fmt.Errorf("stage dependency manifest: %w", err)
	}

	if err := copyFile(appSrc, filepath.Join(contextDir, r.AppFile)); err != nil {
		return StagedContext{}, fmt.Errorf("stage application file: %w", err)
	}

	rendered, err := dockerfile.Render(r)
	if err != nil {
		return StagedContext{}, fmt.Errorf("render dockerfile: %w", err)
	}
	dockerfilePath := filepath.Join(contextDir, "Dockerfile")
	if err := writeFile(dockerfilePath, rendered); err != nil {
		return StagedContext{}, fmt.Errorf("write dockerfile: %w", err)
	}

	staged := StagedContext{
		Dir:            contextDir,
		DockerfilePath: dockerfilePath,
		Files:          []string{"Dockerfile", manifestName, r.AppFile},
	}

	if opts.Verbose && opts.Out != nil {
		fmt.Fprintf(opts.Out, "Staged build context: %s\n", contextDir)
	}
	return staged, nil
}
