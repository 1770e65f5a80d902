// Where: internal/app/deps.go
// What: Adapters wiring command interfaces to the engine and export packages.
// Why: Centralize construction so cmd wiring stays declarative.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/wsgibox/wsgibox/internal/engine"
	"github.com/wsgibox/wsgibox/internal/export"
	"github.com/wsgibox/wsgibox/internal/staging"
)

var ErrDockerClientNil = errors.New("docker client is nil")

// NewBuilder creates a Builder that stages the context and builds the image
// through the Docker Engine API.
func NewBuilder(client engine.DockerClient) Builder {
	return builderFunc(func(request BuildRequest) (string, error) {
		if client == nil {
			return "", ErrDockerClientNil
		}

		staged, err := staging.Stage(request.Recipe, staging.StageOptions{
			ProjectDir: request.Context.ProjectDir,
			OutputDir:  request.Context.ContextDir,
			Verbose:    request.Verbose,
			Out:        request.Out,
		})
		if err != nil {
			return "", err
		}

		imageRef := request.Recipe.ImageRef(request.Context.Project)
		err = engine.BuildImage(context.Background(), client, engine.BuildOptions{
			ContextDir: staged.Dir,
			Files:      staged.Files,
			ImageRef:   imageRef,
			Project:    request.Context.Project,
			AppFile:    request.Recipe.AppFile,
			NoCache:    request.NoCache,
			Out:        buildOutput(request),
		})
		if err != nil {
			return "", err
		}
		return imageRef, nil
	})
}

type builderFunc func(request BuildRequest) (string, error)

func (fn builderFunc) Build(request BuildRequest) (string, error) {
	return fn(request)
}

func buildOutput(request BuildRequest) io.Writer {
	if request.Verbose {
		return request.Out
	}
	return nil
}

// NewRunner creates a Runner that starts the project container.
func NewRunner(client engine.DockerClient) Runner {
	return runnerFunc(func(request UpRequest) (string, error) {
		if client == nil {
			return "", ErrDockerClientNil
		}
		return engine.RunContainer(context.Background(), client, engine.RunOptions{
			ImageRef:      request.Build.ImageRef,
			ContainerName: request.Context.ContainerName,
			Project:       request.Context.Project,
			AppFile:       request.Build.AppFile,
			Port:          request.Build.Port,
			HostPort:      request.HostPort,
		})
	})
}

type runnerFunc func(request UpRequest) (string, error)

func (fn runnerFunc) Run(request UpRequest) (string, error) {
	return fn(request)
}

// NewDowner creates a Downer that stops and removes project containers.
func NewDowner(client engine.DockerClient) Downer {
	return downerFunc(func(project string) error {
		return engine.DownProject(context.Background(), client, project)
	})
}

type downerFunc func(project string) error

func (fn downerFunc) Down(project string) error {
	return fn(project)
}

// NewStopper creates a Stopper that stops project containers in place.
func NewStopper(client engine.DockerClient) Stopper {
	return stopperFunc(func(project string) error {
		return engine.StopProject(context.Background(), client, project)
	})
}

type stopperFunc func(project string) error

func (fn stopperFunc) Stop(project string) error {
	return fn(project)
}

// NewLogger creates a Logger that streams the project container's output.
func NewLogger(client engine.DockerClient, out, errOut io.Writer) Logger {
	return loggerFunc(func(request LogsRequest) error {
		return engine.LogsProject(context.Background(), client, engine.LogsOptions{
			Project:    request.Context.Project,
			Follow:     request.Follow,
			Tail:       request.Tail,
			Timestamps: request.Timestamps,
			Out:        out,
			ErrOut:     errOut,
		})
	})
}

type loggerFunc func(request LogsRequest) error

func (fn loggerFunc) Logs(request LogsRequest) error {
	return fn(request)
}

// NewPruner creates a Pruner that removes project-scoped resources.
func NewPruner(client engine.DockerClient) Pruner {
	return prunerFunc(func(request PruneRequest) error {
		_, err := engine.PruneProject(context.Background(), client, engine.PruneOptions{
			Project:   request.Project,
			AllImages: request.AllImages,
		})
		return err
	})
}

type prunerFunc func(request PruneRequest) error

func (fn prunerFunc) Prune(request PruneRequest) error {
	return fn(request)
}

// NewExporter creates an Exporter that saves the image archive and uploads
// it when a bucket is requested.
func NewExporter(client engine.DockerClient) Exporter {
	return exporterFunc(func(request ExportRequest) (string, error) {
		ctx := context.Background()

		var uploader export.Uploader
		if request.Bucket != "" {
			built, err := export.NewS3Uploader(ctx, request.Endpoint)
			if err != nil {
				return "", err
			}
			uploader = built
		}

		result, err := export.Export(ctx, client, uploader, export.Options{
			ImageRef:   request.ImageRef,
			OutputPath: request.Output,
			Bucket:     request.Bucket,
			Key:        request.Key,
			Out:        request.Out,
		})
		if err != nil {
			return "", err
		}
		if result.Uploaded {
			return fmt.Sprintf("%s uploaded to s3://%s/%s", result.ArchivePath, result.Bucket, result.Key), nil
		}
		return result.ArchivePath, nil
	})
}

type exporterFunc func(request ExportRequest) (string, error)

func (fn exporterFunc) Export(request ExportRequest) (string, error) {
	return fn(request)
}
