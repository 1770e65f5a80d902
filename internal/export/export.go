// Where: internal/export/export.go
// What: Image archive export.
// Why: Produce a portable tar of the built image for registry-less deploys.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wsgibox/wsgibox/internal/engine"
)

// Options configures image export.
type Options struct {
	ImageRef   string
	OutputPath string
	Bucket     string
	Key        string
	Out        io.Writer
}

// Result reports where the exported archive landed.
type Result struct {
	ArchivePath string
	Uploaded    bool
	Bucket      string
	Key         string
}

// SaveImage streams the image from the daemon into a tar archive on disk.
func SaveImage(ctx context.Context, cli engine.DockerClient, imageRef, outputPath string) (string, error) {
	if cli == nil {
		return "", fmt.Errorf("docker client is nil")
	}
	if imageRef == "" {
		return "", fmt.Errorf("image reference is required")
	}
	if outputPath == "" {
		return "", fmt.Errorf("output path is required")
	}

	reader, err := cli.ImageSave(ctx, []string{imageRef})
	if err != nil {
		return "", fmt.Errorf("image save: %w", err)
	}
	defer reader.Close()

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", err
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(file, reader); err != nil {
		file.Close()
		return "", fmt.Errorf("write archive: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return outputPath, nil
}

// Export saves the image archive and, when a bucket is configured, uploads it
// to S3-compatible storage.
func Export(ctx context.Context, cli engine.DockerClient, uploader Uploader, opts Options) (Result, error) {
	archivePath, err := SaveImage(ctx, cli, opts.ImageRef, opts.OutputPath)
	if err != nil {
		return Result{}, err
	}

	result := Result{ArchivePath: archivePath}
	if opts.Bucket == "" {
		return result, nil
	}
	if uploader == nil {
		return Result{}, fmt.Errorf("uploader not configured")
	}

	key := opts.Key
	if key == "" {
		key = filepath.Base(archivePath)
	}

	file, err := os.Open(archivePath)
	if err != nil {
		return Result{}, err
	}
	defer file.Close()

	if err := uploader.Upload(ctx, opts.Bucket, key, file); err != nil {
		return Result{}, fmt.Errorf("upload %s to bucket %s: %w", key, opts.Bucket, err)
	}

	result.Uploaded = true
	result.Bucket = opts.Bucket
	result.Key = key
	return result, nil
}
