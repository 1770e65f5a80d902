// Where: internal/app/build.go
// What: Build command helpers.
// Why: Orchestrate the stage-then-build pipeline in a testable way.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/wsgibox/wsgibox/internal/recipe"
	"github.com/wsgibox/wsgibox/internal/state"
)

// BuildRequest carries everything the builder needs for one image build.
type BuildRequest struct {
	Context state.Context
	Recipe  recipe.Recipe
	NoCache bool
	Verbose bool
	Out     io.Writer
}

// Builder stages the build context and produces the image. It returns the
// tagged image reference on success.
type Builder interface {
	Build(request BuildRequest) (string, error)
}

// BuildDeps holds the injected collaborators of the build command.
type BuildDeps struct {
	Builder Builder
}

func runBuild(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Build.Builder == nil {
		fmt.Fprintln(out, "build: not implemented")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	r := applyBuildOverrides(ctxInfo.Recipe, cli.Build.AppFile, cli.Build.Tag)
	if err := r.Validate(); err != nil {
		return exitWithError(out, err)
	}

	request := BuildRequest{
		Context: ctxInfo.Context,
		Recipe:  r,
		NoCache: cli.Build.NoCache,
		Verbose: cli.Build.Verbose,
		Out:     out,
	}

	imageRef, err := deps.Build.Builder.Build(request)
	if err != nil {
		return exitWithError(out, err)
	}

	record := state.BuildState{
		ImageRef:     imageRef,
		AppFile:      r.AppFile,
		LaunchTarget: r.LaunchTarget(),
		Port:         r.Port,
		BuiltAt:      time.Now().UTC(),
	}
	if err := state.SaveBuildState(ctxInfo.Context.StatePath, record); err != nil {
		return exitWithError(out, fmt.Errorf("record build state: %w", err))
	}

	fmt.Fprintf(out, "build complete: %s (%s)\n", imageRef, r.LaunchTarget())
	return 0
}
