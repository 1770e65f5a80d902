// Where: internal/app/render.go
// What: Render command helpers.
// Why: Expose the Dockerfile derivation without touching the Docker daemon.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/wsgibox/wsgibox/internal/dockerfile"
)

var renderDockerfile = dockerfile.Render

func runRender(cli CLI, deps Dependencies, out io.Writer) int {
	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	r := applyBuildOverrides(ctxInfo.Recipe, cli.Render.AppFile, "")
	if err := r.Validate(); err != nil {
		return exitWithError(out, err)
	}

	rendered, err := renderDockerfile(r)
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.Render.Output != "" {
		if err := os.WriteFile(cli.Render.Output, []byte(rendered), 0o644); err != nil {
			return exitWithError(out, fmt.Errorf("write dockerfile: %w", err))
		}
		fmt.Fprintf(out, "wrote %s\n", cli.Render.Output)
		return 0
	}

	fmt.Fprint(out, rendered)
	return 0
}
