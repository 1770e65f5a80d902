// Where: internal/engine/logs.go
// What: Container log streaming.
// Why: Surface the server process output without shelling out.
package engine

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
)

// LogsOptions configures log streaming for the project container.
type LogsOptions struct {
	Project    string
	Follow     bool
	Tail       int
	Timestamps bool
	Out        io.Writer
	ErrOut     io.Writer
}

// LogsProject streams logs from the project container. The Engine multiplexes
// stdout and stderr into one stream for non-TTY containers; stdcopy splits it.
func LogsProject(ctx context.Context, cli DockerClient, opts LogsOptions) error {
	if cli == nil {
		return fmt.Errorf("docker client is nil")
	}

	containers, err := ListProjectContainers(ctx, cli, opts.Project)
	if err != nil {
		return err
	}
	if len(containers) == 0 {
		return fmt.Errorf("no container found for project %s", opts.Project)
	}

	tail := "all"
	if opts.Tail > 0 {
		tail = strconv.Itoa(opts.Tail)
	}

	reader, err := cli.ContainerLogs(ctx, containers[0].ID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     opts.Follow,
		Tail:       tail,
		Timestamps: opts.Timestamps,
	})
	if err != nil {
		return fmt.Errorf("container logs: %w", err)
	}
	defer reader.Close()

	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = out
	}

	_, err = stdcopy.StdCopy(out, errOut, reader)
	return err
}
