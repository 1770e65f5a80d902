// Where: internal/app/init.go
// What: Init command helpers.
// Why: Scaffold a wsgibox.yml so projects start from a reviewed recipe.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wsgibox/wsgibox/internal/config"
	"github.com/wsgibox/wsgibox/internal/meta"
	"github.com/wsgibox/wsgibox/internal/state"
)

func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	projectDir := strings.TrimSpace(cli.Dir)
	if projectDir == "" {
		projectDir = deps.ProjectDir
	}
	if projectDir == "" {
		projectDir = "."
	}

	ctx, err := state.ResolveContext(projectDir)
	if err != nil {
		return exitWithError(out, err)
	}

	appFile := strings.TrimSpace(cli.Init.AppFile)
	if appFile == "" && isTerminal(os.Stdin) && deps.Prompter != nil {
		answered, err := deps.Prompter.Input("Application file", meta.DefaultAppFile)
		if err != nil {
			return exitWithError(out, err)
		}
		appFile = strings.TrimSpace(answered)
	}

	path, err := config.WriteDefault(ctx.ProjectDir, appFile)
	if err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "wrote %s\n", path)
	return 0
}
