// Where: internal/recipe/recipe.go
// What: Build recipe domain type and launch target derivation.
// Why: Keep parameter-to-launch-target rules independent from infra implementations.
package recipe

import (
	"fmt"
	"path"
	"strings"

	"github.com/wsgibox/wsgibox/internal/meta"
)

// Recipe captures everything needed to build and launch one application image:
// the base runtime, the dependency manifest, the single application file to
// stage, and the port the server binds at container start.
type Recipe struct {
	BaseImage    string
	AppFile      string
	Requirements string
	Port         int
	Workers      int
	Threads      int
	ImageName    string
	Tag          string
}

// Default returns a recipe populated with tool defaults. Every field can be
// overridden via wsgibox.yml or per-invocation flags.
func Default() Recipe {
	return Recipe{
		BaseImage:    meta.DefaultBaseImage,
		AppFile:      meta.DefaultAppFile,
		Requirements: meta.DefaultRequirements,
		Port:         meta.DefaultPort,
		Workers:      meta.DefaultWorkers,
		Threads:      meta.DefaultThreads,
		Tag:          meta.DefaultTag,
	}
}

// Validate checks the recipe for values the build pipeline cannot work with.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.BaseImage) == "" {
		return fmt.Errorf("base image is required")
	}
	appFile := strings.TrimSpace(r.AppFile)
	if appFile == "" {
		return fmt.Errorf("application file is required")
	}
	if !strings.HasSuffix(appFile, ".py") {
		return fmt.Errorf("application file must be a .py file: %s", appFile)
	}
	if path.Base(appFile) != appFile {
		return fmt.Errorf("application file must not contain a path: %s", appFile)
	}
	if strings.TrimSpace(r.Requirements) == "" {
		return fmt.Errorf("requirements file is required")
	}
	if r.Port < 1 || r.Port > 65535 {
		return fmt.Errorf("port out of range: %d", r.Port)
	}
	if r.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if r.Threads < 1 {
		return fmt.Errorf("threads must be at least 1")
	}
	return nil
}

// ModuleName derives the importable module name from the application file:
// the base name with the .py extension stripped.
func (r Recipe) ModuleName() string {
	return strings.TrimSuffix(path.Base(r.AppFile), ".py")
}

// LaunchTarget combines the derived module name with the fixed WSGI
// callable name.
func (r Recipe) LaunchTarget() string {
	return r.ModuleName() + ":" + meta.AppObject
}

// LaunchCommand returns the container start command: a production server
// bound to all interfaces on the configured port with request timeout
// disabled. The port is read from the PORT environment variable so the
// process and any orchestrator agree on the bind address.
func (r Recipe) LaunchCommand() string {
	return fmt.Sprintf(
		"exec gunicorn --bind 0.0.0.0:$%s --workers %d --threads %d --timeout 0 %s",
		meta.PortEnvVar, r.Workers, r.Threads, r.LaunchTarget(),
	)
}

// ImageRef returns the image reference for the recipe, falling back to a
// project-derived repository name when image.name is not configured.
func (r Recipe) ImageRef(project string) string {
	name := strings.TrimSpace(r.ImageName)
	if name == "" {
		name = fmt.Sprintf("%s-%s", meta.AppName, strings.ToLower(project))
	}
	tag := strings.TrimSpace(r.Tag)
	if tag == "" {
		tag = meta.DefaultTag
	}
	return name + ":" + tag
}
