// Where: internal/app/command_context.go
// What: Shared context and recipe resolution for CLI commands.
// Why: Reduce duplicated setup across commands.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/wsgibox/wsgibox/internal/config"
	"github.com/wsgibox/wsgibox/internal/recipe"
	"github.com/wsgibox/wsgibox/internal/state"
)

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

type commandContext struct {
	Context state.Context
	Recipe  recipe.Recipe
}

// resolveCommandContext resolves the project directory into a context and
// loads the recipe with per-invocation overrides applied.
func resolveCommandContext(cli CLI, deps Dependencies) (commandContext, error) {
	projectDir := strings.TrimSpace(cli.Dir)
	if projectDir == "" {
		projectDir = deps.ProjectDir
	}
	if projectDir == "" {
		projectDir = "."
	}

	ctx, err := state.ResolveContext(projectDir)
	if err != nil {
		return commandContext{}, err
	}

	r, err := config.LoadRecipe(ctx.ProjectDir)
	if err != nil {
		return commandContext{}, err
	}

	return commandContext{Context: ctx, Recipe: r}, nil
}

// applyBuildOverrides folds build flags into the recipe. Changing the
// application file here changes which file gets staged and which module the
// launch command targets, and nothing else.
func applyBuildOverrides(r recipe.Recipe, appFile, tag string) recipe.Recipe {
	if v := strings.TrimSpace(appFile); v != "" {
		r.AppFile = v
	}
	if v := strings.TrimSpace(tag); v != "" {
		r.Tag = v
	}
	return r
}
