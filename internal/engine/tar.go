// Where: internal/engine/tar.go
// What: Tar archive creation for build contexts.
// Why: The Engine API consumes the build context as a tar stream.
package engine

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// tarContext packs the named files from dir into an in-memory tar archive.
// The staged context is three small files, so buffering it is fine.
func tarContext(dir string, files []string) (io.Reader, error) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	for _, name := range files {
		if err := addTarFile(tw, filepath.Join(dir, name), name); err != nil {
			tw.Close()
			return nil, fmt.Errorf("archive %s: %w", name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return nil, err
	}
	return &buf, nil
}

func addTarFile(tw *tar.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = name

	if err := tw.WriteHeader(header); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(tw, file)
	return err
}
