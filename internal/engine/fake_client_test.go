// Where: internal/engine/fake_client_test.go
// What: Fake Docker client for engine tests.
// Why: Exercise engine helpers without a Docker daemon.
package engine

import (
	"archive/tar"
	"bytes"
	"context"
	"io"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

type fakeClient struct {
	buildOptions   *build.ImageBuildOptions
	buildContext   []byte
	buildStream    string
	buildErr       error
	images         []image.Summary
	containers     []container.Summary
	created        *container.Config
	createdHost    *container.HostConfig
	createdName    string
	started        []string
	stopped        []string
	removed        []string
	logs           string
	logsOptions    *container.LogsOptions
	containerPrune *filters.Args
	imagePrune     *filters.Args
	saveCalled     [][]string
	saveData       string
}

func (f *fakeClient) ImageBuild(_ context.Context, buildContext io.Reader, options build.ImageBuildOptions) (build.ImageBuildResponse, error) {
	if f.buildErr != nil {
		return build.ImageBuildResponse{}, f.buildErr
	}
	data, err := io.ReadAll(buildContext)
	if err != nil {
		return build.ImageBuildResponse{}, err
	}
	f.buildContext = data
	f.buildOptions = &options

	stream := f.buildStream
	if stream == "" {
		stream = `{"stream":"Successfully built"}` + "\n"
	}
	return build.ImageBuildResponse{
		Body: io.NopCloser(bytes.NewReader([]byte(stream))),
	}, nil
}

func (f *fakeClient) ImageList(_ context.Context, _ image.ListOptions) ([]image.Summary, error) {
	return f.images, nil
}

func (f *fakeClient) ImageSave(_ context.Context, imageIDs []string, _ ...client.ImageSaveOption) (io.ReadCloser, error) {
	f.saveCalled = append(f.saveCalled, imageIDs)
	return io.NopCloser(bytes.NewReader([]byte(f.saveData))), nil
}

func (f *fakeClient) ImagesPrune(_ context.Context, pruneFilters filters.Args) (image.PruneReport, error) {
	f.imagePrune = &pruneFilters
	return image.PruneReport{
		ImagesDeleted:  []image.DeleteResponse{{Deleted: "sha256:abc"}},
		SpaceReclaimed: 42,
	}, nil
}

func (f *fakeClient) ContainerCreate(_ context.Context, config *container.Config, hostConfig *container.HostConfig, _ *network.NetworkingConfig, _ *ocispec.Platform, containerName string) (container.CreateResponse, error) {
	f.created = config
	f.createdHost = hostConfig
	f.createdName = containerName
	return container.CreateResponse{ID: "created-id"}, nil
}

func (f *fakeClient) ContainerStart(_ context.Context, containerID string, _ container.StartOptions) error {
	f.started = append(f.started, containerID)
	return nil
}

func (f *fakeClient) ContainerList(_ context.Context, _ container.ListOptions) ([]container.Summary, error) {
	return f.containers, nil
}

func (f *fakeClient) ContainerStop(_ context.Context, containerID string, _ container.StopOptions) error {
	f.stopped = append(f.stopped, containerID)
	return nil
}

func (f *fakeClient) ContainerRemove(_ context.Context, containerID string, _ container.RemoveOptions) error {
	f.removed = append(f.removed, containerID)
	return nil
}

func (f *fakeClient) ContainerLogs(_ context.Context, _ string, options container.LogsOptions) (io.ReadCloser, error) {
	f.logsOptions = &options
	return io.NopCloser(bytes.NewReader(muxStdout(f.logs))), nil
}

func (f *fakeClient) ContainersPrune(_ context.Context, pruneFilters filters.Args) (container.PruneReport, error) {
	f.containerPrune = &pruneFilters
	return container.PruneReport{
		ContainersDeleted: []string{"dead-id"},
		SpaceReclaimed:    8,
	}, nil
}

// muxStdout frames a string the way the Engine multiplexes non-TTY stdout.
func muxStdout(s string) []byte {
	payload := []byte(s)
	header := []byte{1, 0, 0, 0, 0, 0, 0, 0}
	header[4] = byte(len(payload) >> 24)
	header[5] = byte(len(payload) >> 16)
	header[6] = byte(len(payload) >> 8)
	header[7] = byte(len(payload))
	return append(header, payload...)
}

// tarNames lists entry names inside a tar archive.
func tarNames(data []byte) ([]string, error) {
	reader := tar.NewReader(bytes.NewReader(data))
	var names []string
	for {
		header, err := reader.Next()
		if err == io.EOF {
			return names, nil
		}
		if err != nil {
			return nil, err
		}
		names = append(names, header.Name)
	}
}
