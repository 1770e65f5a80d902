// Where: internal/engine/prune.go
// What: Project-scoped Docker prune helpers.
// Why: Provide a system-prune-like cleanup limited to one project's resources.
package engine

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
)

// PruneOptions configures project-scoped cleanup behavior.
type PruneOptions struct {
	Project   string
	AllImages bool
}

// PruneReport summarizes what was deleted during prune.
type PruneReport struct {
	ContainersDeleted []string
	ImagesDeleted     []image.DeleteResponse
	SpaceReclaimed    uint64
}

// PruneProject deletes resources scoped to the project label. It removes
// stopped containers and dangling images; AllImages extends the image pass
// to every unused project image.
func PruneProject(ctx context.Context, cli DockerClient, opts PruneOptions) (PruneReport, error) {
	if cli == nil {
		return PruneReport{}, fmt.Errorf("docker client is nil")
	}
	if opts.Project == "" {
		return PruneReport{}, fmt.Errorf("project is required")
	}

	report := PruneReport{}
	projectFilter := filters.NewArgs(filters.Arg("label", fmt.Sprintf("%s=%s", ProjectLabel, opts.Project)))

	containers, err := cli.ContainersPrune(ctx, projectFilter)
	if err != nil {
		return report, err
	}
	report.ContainersDeleted = append(report.ContainersDeleted, containers.ContainersDeleted...)
	report.SpaceReclaimed += containers.SpaceReclaimed

	images, err := cli.ImagesPrune(ctx, imagePruneFilters(opts.Project, opts.AllImages))
	if err != nil {
		return report, err
	}
	report.ImagesDeleted = append(report.ImagesDeleted, images.ImagesDeleted...)
	report.SpaceReclaimed += images.SpaceReclaimed

	return report, nil
}

func imagePruneFilters(project string, all bool) filters.Args {
	pruneFilters := filters.NewArgs(filters.Arg("label", fmt.Sprintf("%s=%s", ProjectLabel, project)))
	pruneFilters.Add("label", fmt.Sprintf("%s=true", ManagedLabel))
	if all {
		pruneFilters.Add("dangling", "false")
	} else {
		pruneFilters.Add("dangling", "true")
	}
	return pruneFilters
}
