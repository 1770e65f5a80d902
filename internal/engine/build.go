// Where: internal/engine/build.go
// What: Image build via the Docker Engine API.
// Why: Turn a staged context into a tagged, labeled image with surfaced failures.
package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/pkg/jsonmessage"
)

// BuildOptions configures an image build from a staged context.
type BuildOptions struct {
	ContextDir string
	Files      []string
	ImageRef   string
	Project    string
	AppFile    string
	NoCache    bool
	Out        io.Writer
}

// BuildImage archives the staged context and runs the Engine build. A failing
// step inside the build (for example, dependency installation from the
// manifest) is propagated as an error; there is no retry.
func BuildImage(ctx context.Context, cli DockerClient, opts BuildOptions) error {
	if cli == nil {
		return fmt.Errorf("docker client is nil")
	}
	if opts.ImageRef == "" {
		return fmt.Errorf("image reference is required")
	}

	contextTar, err := tarContext(opts.ContextDir, opts.Files)
	if err != nil {
		return err
	}

	resp, err := cli.ImageBuild(ctx, contextTar, build.ImageBuildOptions{
		Tags:       []string{opts.ImageRef},
		Dockerfile: "Dockerfile",
		NoCache:    opts.NoCache,
		Remove:     true,
		Labels:     projectLabels(opts.Project, opts.AppFile),
	})
	if err != nil {
		return fmt.Errorf("image build: %w", err)
	}
	defer resp.Body.Close()

	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	if err := jsonmessage.DisplayJSONMessagesStream(resp.Body, out, 0, false, nil); err != nil {
		if jsonErr, ok := err.(*jsonmessage.JSONError); ok {
			return fmt.Errorf("image build failed: %s", jsonErr.Message)
		}
		return fmt.Errorf("image build failed: %w", err)
	}
	return nil
}
