// Where: internal/app/export.go
// What: Export command helpers.
// Why: Ship the built image as an archive, optionally to object storage.
package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/wsgibox/wsgibox/internal/state"
)

// ExportRequest contains parameters for exporting the built image.
type ExportRequest struct {
	Context  state.Context
	ImageRef string
	Output   string
	Bucket   string
	Key      string
	Endpoint string
	Out      io.Writer
}

// Exporter saves the image archive and reports where it landed.
type Exporter interface {
	Export(request ExportRequest) (string, error)
}

// ExportDeps holds the injected collaborators of the export command.
type ExportDeps struct {
	Exporter Exporter
}

func runExport(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Export.Exporter == nil {
		fmt.Fprintln(out, "export: not implemented")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	build, err := state.LoadBuildState(ctxInfo.Context.StatePath)
	if err != nil {
		return exitWithError(out, err)
	}

	output := strings.TrimSpace(cli.Export.Output)
	if output == "" {
		output = filepath.Join(ctxInfo.Context.OutputDir, archiveName(build.ImageRef))
	}

	summary, err := deps.Export.Exporter.Export(ExportRequest{
		Context:  ctxInfo.Context,
		ImageRef: build.ImageRef,
		Output:   output,
		Bucket:   cli.Export.Bucket,
		Key:      cli.Export.Key,
		Endpoint: cli.Export.Endpoint,
		Out:      out,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "export complete: %s\n", summary)
	return 0
}

// archiveName turns an image reference into a filesystem-safe tar name.
func archiveName(imageRef string) string {
	name := strings.NewReplacer("/", "_", ":", "_").Replace(imageRef)
	return name + ".tar"
}
