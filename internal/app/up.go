// Where: internal/app/up.go
// What: Up command helpers.
// Why: Start the application container from the last (or a fresh) build.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/wsgibox/wsgibox/internal/state"
)

// UpRequest carries parameters for starting the project container.
type UpRequest struct {
	Context  state.Context
	Build    state.BuildState
	HostPort int
}

// Runner creates and starts the project container.
type Runner interface {
	Run(request UpRequest) (string, error)
}

// UpDeps holds the injected collaborators of the up command.
type UpDeps struct {
	Builder Builder
	Runner  Runner
}

func runUp(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Up.Runner == nil {
		fmt.Fprintln(out, "up: not implemented")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.Up.Build {
		if deps.Up.Builder == nil {
			fmt.Fprintln(out, "up: builder not configured")
			return 1
		}
		imageRef, err := deps.Up.Builder.Build(BuildRequest{
			Context: ctxInfo.Context,
			Recipe:  ctxInfo.Recipe,
			Out:     out,
		})
		if err != nil {
			return exitWithError(out, err)
		}
		record := state.BuildState{
			ImageRef:     imageRef,
			AppFile:      ctxInfo.Recipe.AppFile,
			LaunchTarget: ctxInfo.Recipe.LaunchTarget(),
			Port:         ctxInfo.Recipe.Port,
			BuiltAt:      time.Now().UTC(),
		}
		if err := state.SaveBuildState(ctxInfo.Context.StatePath, record); err != nil {
			return exitWithError(out, fmt.Errorf("record build state: %w", err))
		}
	}

	build, err := state.LoadBuildState(ctxInfo.Context.StatePath)
	if err != nil {
		return exitWithError(out, err)
	}

	id, err := deps.Up.Runner.Run(UpRequest{
		Context:  ctxInfo.Context,
		Build:    build,
		HostPort: cli.Up.HostPort,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	hostPort := cli.Up.HostPort
	if hostPort == 0 {
		hostPort = build.Port
	}
	fmt.Fprintf(out, "up complete: %s listening on port %d (%s)\n", shortID(id), hostPort, build.LaunchTarget)
	return 0
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
