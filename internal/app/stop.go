// Where: internal/app/stop.go
// What: Stop command helpers.
// Why: Stop the project container while preserving it.
package app

import (
	"fmt"
	"io"
)

// Stopper stops project containers without removing them.
type Stopper interface {
	Stop(project string) error
}

// StopDeps holds the injected collaborators of the stop command.
type StopDeps struct {
	Stopper Stopper
}

func runStop(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Stop.Stopper == nil {
		fmt.Fprintln(out, "stop: not implemented")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	if err := deps.Stop.Stopper.Stop(ctxInfo.Context.Project); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintln(out, "stop complete")
	return 0
}
