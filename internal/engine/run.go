// Where: internal/engine/run.go
// What: Container create/start for the built image.
// Why: Run phase of the build-then-run lifecycle.
package engine

import (
	"context"
	"fmt"
	"strconv"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"

	"github.com/wsgibox/wsgibox/internal/meta"
)

// RunOptions configures container creation and start.
type RunOptions struct {
	ImageRef      string
	ContainerName string
	Project       string
	AppFile       string
	Port          int
	HostPort      int
	Env           map[string]string
}

// RunContainer creates and starts the project container. The configured port
// is exposed, published on the host, and handed to the process through the
// PORT environment variable so both sides agree on the bind address. Any
// container with the same project label is replaced.
func RunContainer(ctx context.Context, cli DockerClient, opts RunOptions) (string, error) {
	if cli == nil {
		return "", fmt.Errorf("docker client is nil")
	}
	if opts.ImageRef == "" {
		return "", fmt.Errorf("image reference is required")
	}
	if opts.Port < 1 || opts.Port > 65535 {
		return "", fmt.Errorf("port out of range: %d", opts.Port)
	}
	hostPort := opts.HostPort
	if hostPort == 0 {
		hostPort = opts.Port
	}

	if err := removeProjectContainers(ctx, cli, opts.Project); err != nil {
		return "", err
	}

	exposed, err := nat.NewPort("tcp", strconv.Itoa(opts.Port))
	if err != nil {
		return "", err
	}

	env := []string{fmt.Sprintf("%s=%d", meta.PortEnvVar, opts.Port)}
	for key, value := range opts.Env {
		if key == meta.PortEnvVar {
			continue
		}
		env = append(env, key+"="+value)
	}

	created, err := cli.ContainerCreate(ctx,
		&container.Config{
			Image:        opts.ImageRef,
			Env:          env,
			ExposedPorts: nat.PortSet{exposed: struct{}{}},
			Labels:       projectLabels(opts.Project, opts.AppFile),
		},
		&container.HostConfig{
			PortBindings: nat.PortMap{
				exposed: []nat.PortBinding{{HostPort: strconv.Itoa(hostPort)}},
			},
		},
		nil, nil, opts.ContainerName,
	)
	if err != nil {
		return "", fmt.Errorf("create container: %w", err)
	}

	if err := cli.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}
	return created.ID, nil
}

func removeProjectContainers(ctx context.Context, cli DockerClient, project string) error {
	existing, err := ListProjectContainers(ctx, cli, project)
	if err != nil {
		return err
	}
	for _, ctr := range existing {
		if err := cli.ContainerRemove(ctx, ctr.ID, container.RemoveOptions{Force: true}); err != nil {
			return fmt.Errorf("remove container %s: %w", ctr.Name, err)
		}
	}
	return nil
}
