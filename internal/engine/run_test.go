// Where: internal/engine/run_test.go
// What: Tests for container create/start.
// Why: The run phase must expose, publish, and announce the configured port.
package engine

import (
	"context"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
)

func TestRunContainerPortAndEnvAgree(t *testing.T) {
	cli := &fakeClient{}

	id, err := RunContainer(context.Background(), cli, RunOptions{
		ImageRef:      "wsgibox-demo:latest",
		ContainerName: "wsgibox-demo",
		Project:       "demo",
		AppFile:       "app.py",
		Port:          8080,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "created-id" {
		t.Fatalf("unexpected id: %s", id)
	}
	if len(cli.started) != 1 || cli.started[0] != "created-id" {
		t.Fatalf("container not started: %v", cli.started)
	}
	if cli.createdName != "wsgibox-demo" {
		t.Fatalf("unexpected container name: %s", cli.createdName)
	}

	port := nat.Port("8080/tcp")
	if _, ok := cli.created.ExposedPorts[port]; !ok {
		t.Fatalf("port not exposed: %v", cli.created.ExposedPorts)
	}
	bindings := cli.createdHost.PortBindings[port]
	if len(bindings) != 1 || bindings[0].HostPort != "8080" {
		t.Fatalf("port not published: %v", cli.createdHost.PortBindings)
	}

	if !containsEnv(cli.created.Env, "PORT=8080") {
		t.Fatalf("PORT env missing: %v", cli.created.Env)
	}
	if cli.created.Labels[ProjectLabel] != "demo" {
		t.Fatalf("project label missing: %v", cli.created.Labels)
	}
}

func TestRunContainerHostPortOverride(t *testing.T) {
	cli := &fakeClient{}

	_, err := RunContainer(context.Background(), cli, RunOptions{
		ImageRef: "img:latest",
		Project:  "demo",
		Port:     8080,
		HostPort: 9999,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	bindings := cli.createdHost.PortBindings[nat.Port("8080/tcp")]
	if len(bindings) != 1 || bindings[0].HostPort != "9999" {
		t.Fatalf("host port override not applied: %v", cli.createdHost.PortBindings)
	}
	// Container-side port and PORT env stay at the recipe value.
	if !containsEnv(cli.created.Env, "PORT=8080") {
		t.Fatalf("PORT env changed with host port: %v", cli.created.Env)
	}
}

func TestRunContainerReplacesExisting(t *testing.T) {
	cli := &fakeClient{
		containers: []container.Summary{
			{
				ID:     "old-id",
				Names:  []string{"/wsgibox-demo"},
				State:  "exited",
				Labels: map[string]string{ProjectLabel: "demo"},
			},
		},
	}

	_, err := RunContainer(context.Background(), cli, RunOptions{
		ImageRef: "img:latest",
		Project:  "demo",
		Port:     8080,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cli.removed) != 1 || cli.removed[0] != "old-id" {
		t.Fatalf("existing container not replaced: %v", cli.removed)
	}
}

func TestRunContainerExtraEnvCannotShadowPort(t *testing.T) {
	cli := &fakeClient{}

	_, err := RunContainer(context.Background(), cli, RunOptions{
		ImageRef: "img:latest",
		Project:  "demo",
		Port:     8080,
		Env:      map[string]string{"PORT": "1234", "SPANNER_INSTANCE_ID": "jblab"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if containsEnv(cli.created.Env, "PORT=1234") {
		t.Fatalf("PORT must come from the recipe: %v", cli.created.Env)
	}
	if !containsEnv(cli.created.Env, "SPANNER_INSTANCE_ID=jblab") {
		t.Fatalf("extra env missing: %v", cli.created.Env)
	}
}

func TestRunContainerValidation(t *testing.T) {
	cli := &fakeClient{}

	if _, err := RunContainer(context.Background(), cli, RunOptions{Project: "demo", Port: 8080}); err == nil {
		t.Fatalf("expected error for missing image ref")
	}
	if _, err := RunContainer(context.Background(), cli, RunOptions{ImageRef: "img", Project: "demo", Port: 0}); err == nil {
		t.Fatalf("expected error for invalid port")
	}
}

func containsEnv(env []string, entry string) bool {
	for _, e := range env {
		if e == entry {
			return true
		}
	}
	return false
}
