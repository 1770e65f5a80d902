// Where: internal/engine/docker.go
// What: Docker SDK interface and scoped container queries.
// Why: Keep the SDK surface narrow and mockable.
package engine

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/wsgibox/wsgibox/internal/meta"
)

const (
	// ProjectLabel scopes every container and image this tool creates.
	ProjectLabel = meta.LabelPrefix + ".project"
	// ManagedLabel marks resources as owned by this tool.
	ManagedLabel = meta.LabelPrefix + ".managed"
	// AppFileLabel records which application file the image stages.
	AppFileLabel = meta.LabelPrefix + ".app_file"
)

// DockerClient defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type DockerClient interface {
	ImageBuild(ctx context.Context, buildContext io.Reader, options build.ImageBuildOptions) (build.ImageBuildResponse, error)
	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	ImageSave(ctx context.Context, imageIDs []string, saveOpts ...client.ImageSaveOption) (io.ReadCloser, error)
	ImagesPrune(ctx context.Context, pruneFilters filters.Args) (image.PruneReport, error)
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
	ContainersPrune(ctx context.Context, pruneFilters filters.Args) (container.PruneReport, error)
}

// NewDockerClient constructs a Docker SDK client using environment defaults.
func NewDockerClient() (DockerClient, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}

// ContainerInfo holds information about containers discovered by project.
type ContainerInfo struct {
	ID    string
	Name  string
	State string
	Image string
}

// ListProjectContainers returns all containers labeled with the project,
// including stopped ones.
func ListProjectContainers(ctx context.Context, cli DockerClient, project string) ([]ContainerInfo, error) {
	labelFilter := filters.NewArgs()
	labelFilter.Add("label", fmt.Sprintf("%s=%s", ProjectLabel, project))

	containers, err := cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: labelFilter,
	})
	if err != nil {
		return nil, err
	}

	result := make([]ContainerInfo, 0, len(containers))
	for _, ctr := range containers {
		if ctr.Labels == nil || ctr.Labels[ProjectLabel] != project {
			continue
		}

		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}

		result = append(result, ContainerInfo{
			ID:    ctr.ID,
			Name:  name,
			State: ctr.State,
			Image: ctr.Image,
		})
	}
	return result, nil
}

// HasProjectImage reports whether the image reference exists locally.
func HasProjectImage(ctx context.Context, cli DockerClient, imageRef string) (bool, error) {
	images, err := cli.ImageList(ctx, image.ListOptions{All: true})
	if err != nil {
		return false, err
	}
	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageRef {
				return true, nil
			}
		}
	}
	return false, nil
}

func projectLabels(project, appFile string) map[string]string {
	labels := map[string]string{
		ProjectLabel: project,
		ManagedLabel: "true",
	}
	if appFile != "" {
		labels[AppFileLabel] = appFile
	}
	return labels
}
