// Where: internal/engine/docker_test.go
// What: Tests for scoped container/image queries and lifecycle helpers.
// Why: Project scoping keeps unrelated containers untouched.
package engine

import (
	"context"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
)

func demoContainers() []container.Summary {
	return []container.Summary{
		{
			ID:     "run-id",
			Names:  []string{"/wsgibox-demo"},
			State:  "running",
			Labels: map[string]string{ProjectLabel: "demo"},
		},
		{
			ID:     "stop-id",
			Names:  []string{"/wsgibox-demo-old"},
			State:  "exited",
			Labels: map[string]string{ProjectLabel: "demo"},
		},
		{
			ID:    "other-id",
			Names: []string{"/postgres"},
			State: "running",
		},
	}
}

func TestListProjectContainersFiltersByLabel(t *testing.T) {
	cli := &fakeClient{containers: demoContainers()}

	infos, err := ListProjectContainers(context.Background(), cli, "demo")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("unexpected containers: %+v", infos)
	}
	if infos[0].Name != "wsgibox-demo" || infos[0].State != "running" {
		t.Fatalf("unexpected first entry: %+v", infos[0])
	}
}

func TestStopProjectStopsOnlyRunning(t *testing.T) {
	cli := &fakeClient{containers: demoContainers()}

	if err := StopProject(context.Background(), cli, "demo"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cli.stopped) != 1 || cli.stopped[0] != "run-id" {
		t.Fatalf("unexpected stops: %v", cli.stopped)
	}
	if len(cli.removed) != 0 {
		t.Fatalf("stop must not remove: %v", cli.removed)
	}
}

func TestDownProjectStopsAndRemoves(t *testing.T) {
	cli := &fakeClient{containers: demoContainers()}

	if err := DownProject(context.Background(), cli, "demo"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cli.stopped) != 1 || cli.stopped[0] != "run-id" {
		t.Fatalf("unexpected stops: %v", cli.stopped)
	}
	if len(cli.removed) != 2 {
		t.Fatalf("unexpected removals: %v", cli.removed)
	}
}

func TestHasProjectImage(t *testing.T) {
	cli := &fakeClient{
		images: []image.Summary{
			{RepoTags: []string{"<none>:<none>"}},
			{RepoTags: []string{"wsgibox-demo:latest"}},
		},
	}

	found, err := HasProjectImage(context.Background(), cli, "wsgibox-demo:latest")
	if err != nil || !found {
		t.Fatalf("expected image found, got %v %v", found, err)
	}

	found, err = HasProjectImage(context.Background(), cli, "missing:latest")
	if err != nil || found {
		t.Fatalf("expected image missing, got %v %v", found, err)
	}
}
