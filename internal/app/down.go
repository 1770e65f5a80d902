// Where: internal/app/down.go
// What: Down command helpers.
// Why: Stop and remove the project container.
package app

import (
	"fmt"
	"io"
)

// Downer stops and removes project containers.
type Downer interface {
	Down(project string) error
}

// DownDeps holds the injected collaborators of the down command.
type DownDeps struct {
	Downer Downer
}

func runDown(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Down.Downer == nil {
		fmt.Fprintln(out, "down: not implemented")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	if err := deps.Down.Downer.Down(ctxInfo.Context.Project); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintln(out, "down complete")
	return 0
}
