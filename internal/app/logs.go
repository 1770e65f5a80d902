// Where: internal/app/logs.go
// What: Logs command helpers.
// Why: Provide log access with CLI flags.
package app

import (
	"fmt"
	"io"

	"github.com/wsgibox/wsgibox/internal/state"
)

// LogsRequest contains parameters for viewing container logs.
type LogsRequest struct {
	Context    state.Context
	Follow     bool
	Tail       int
	Timestamps bool
}

// Logger streams container logs for a project.
type Logger interface {
	Logs(request LogsRequest) error
}

// LogsDeps holds the injected collaborators of the logs command.
type LogsDeps struct {
	Logger Logger
}

func runLogs(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Logs.Logger == nil {
		fmt.Fprintln(out, "logs: not implemented")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	req := LogsRequest{
		Context:    ctxInfo.Context,
		Follow:     cli.Logs.Follow,
		Tail:       cli.Logs.Tail,
		Timestamps: cli.Logs.Timestamps,
	}
	if err := deps.Logs.Logger.Logs(req); err != nil {
		return exitWithError(out, err)
	}
	return 0
}
