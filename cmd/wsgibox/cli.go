// Where: cmd/wsgibox/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"io"
	"os"

	"github.com/wsgibox/wsgibox/internal/app"
	"github.com/wsgibox/wsgibox/internal/engine"
)

var (
	getwd           = os.Getwd
	newDockerClient = engine.NewDockerClient
)

// buildDependencies constructs all runtime dependencies required by the CLI.
// It initializes the Docker client and the per-command handlers.
// Returns the dependencies, a closer for cleanup, and any initialization error.
func buildDependencies() (app.Dependencies, io.Closer, error) {
	projectDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	client, err := newDockerClient()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	deps := app.Dependencies{
		ProjectDir: projectDir,
		Out:        os.Stdout,
		Prompter:   app.HuhPrompter{},
		Build: app.BuildDeps{
			Builder: app.NewBuilder(client),
		},
		Up: app.UpDeps{
			Builder: app.NewBuilder(client),
			Runner:  app.NewRunner(client),
		},
		Down: app.DownDeps{
			Downer: app.NewDowner(client),
		},
		Stop: app.StopDeps{
			Stopper: app.NewStopper(client),
		},
		Logs: app.LogsDeps{
			Logger: app.NewLogger(client, os.Stdout, os.Stderr),
		},
		Prune: app.PruneDeps{
			Pruner: app.NewPruner(client),
		},
		Export: app.ExportDeps{
			Exporter: app.NewExporter(client),
		},
	}

	return deps, asCloser(client), nil
}

// asCloser attempts to cast the Docker client to an io.Closer.
// Returns nil if the client does not implement the Closer interface.
func asCloser(client engine.DockerClient) io.Closer {
	if closer, ok := client.(io.Closer); ok {
		return closer
	}
	return nil
}
