package adapters

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"snowstage-sync/internal/ports"
)

// ZipArchiverAdapter packs a directory tree into a single ZIP archive
// with Deflate compression. Entry names are paths relative to the
// source root; directories themselves get no entries.
type ZipArchiverAdapter struct{}

func NewZipArchiverAdapter() ZipArchiverAdapter {
	return ZipArchiverAdapter{}
}

func (a ZipArchiverAdapter) Archive(sourceDir string, outputPath string) (int, error) {
	if _, err := os.Stat(sourceDir); err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("archive source directory not found").
			WithCause(err)
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create archive file").
			WithCause(err)
	}
	writer := zip.NewWriter(out)
	count := 0
	walkErr := filepath.WalkDir(sourceDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		dest, err := writer.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		if _, err := io.Copy(dest, src); err != nil {
			return err
		}
		count++
		return nil
	})
	if walkErr != nil {
		writer.Close()
		out.Close()
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to archive packages").
			WithCause(walkErr)
	}
	if err := writer.Close(); err != nil {
		out.Close()
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to finalize archive").
			WithCause(err)
	}
	if err := out.Close(); err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write archive").
			WithCause(err)
	}
	return count, nil
}

var _ ports.ArchiverPort = ZipArchiverAdapter{}
