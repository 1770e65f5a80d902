// Where: internal/engine/stop.go
// What: Stop and remove helpers for project containers.
// Why: Implement stop (preserve) and down (stop + remove) semantics.
package engine

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
)

// StopProject stops all running project containers but keeps them.
func StopProject(ctx context.Context, cli DockerClient, project string) error {
	if cli == nil {
		return fmt.Errorf("docker client is nil")
	}
	containers, err := ListProjectContainers(ctx, cli, project)
	if err != nil {
		return err
	}
	for _, ctr := range containers {
		if ctr.State != "running" {
			continue
		}
		if err := cli.ContainerStop(ctx, ctr.ID, container.StopOptions{}); err != nil {
			return fmt.Errorf("stop container %s: %w", ctr.Name, err)
		}
	}
	return nil
}

// DownProject stops and removes all project containers.
func DownProject(ctx context.Context, cli DockerClient, project string) error {
	if cli == nil {
		return fmt.Errorf("docker client is nil")
	}
	containers, err := ListProjectContainers(ctx, cli, project)
	if err != nil {
		return err
	}
	for _, ctr := range containers {
		if ctr.State == "running" {
			if err := cli.ContainerStop(ctx, ctr.ID, container.StopOptions{}); err != nil {
				return fmt.Errorf("stop container %s: %w", ctr.Name, err)
			}
		}
		if err := cli.ContainerRemove(ctx, ctr.ID, container.RemoveOptions{}); err != nil {
			return fmt.Errorf("remove container %s: %w", ctr.Name, err)
		}
	}
	return nil
}
