// Where: internal/app/prune.go
// What: Prune command helpers.
// Why: Clean project Docker resources safely, with a system-prune-like prompt.
package app

import (
	"fmt"
	"io"
	"os"
)

// PruneRequest contains parameters for removing project resources.
type PruneRequest struct {
	Project   string
	AllImages bool
}

// Pruner removes project-scoped Docker resources.
type Pruner interface {
	Prune(request PruneRequest) error
}

// PruneDeps holds the injected collaborators of the prune command.
type PruneDeps struct {
	Pruner Pruner
}

func runPrune(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Prune.Pruner == nil {
		fmt.Fprintln(out, "prune: pruner not configured")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	req := PruneRequest{
		Project:   ctxInfo.Context.Project,
		AllImages: cli.Prune.All,
	}

	printPruneWarning(out, req)
	if !cli.Prune.Yes {
		if !isTerminal(os.Stdin) {
			return exitWithError(out, fmt.Errorf("prune requires --yes in non-interactive mode"))
		}
		if deps.Prompter == nil {
			return exitWithError(out, fmt.Errorf("prompter not configured"))
		}
		confirmed, err := deps.Prompter.Confirm("Are you sure you want to continue?")
		if err != nil {
			return exitWithError(out, err)
		}
		if !confirmed {
			fmt.Fprintln(out, "Aborted.")
			return 1
		}
	}

	if err := deps.Prune.Pruner.Prune(req); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintln(out, "prune complete")
	return 0
}

func printPruneWarning(out io.Writer, request PruneRequest) {
	fmt.Fprintln(out, "WARNING! This will remove:")
	fmt.Fprintf(out, "  - all stopped containers of project %s\n", request.Project)
	if request.AllImages {
		fmt.Fprintln(out, "  - all project images not used by at least one container")
	} else {
		fmt.Fprintln(out, "  - all dangling project images")
	}
	fmt.Fprintln(out, "")
}
