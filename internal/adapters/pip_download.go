package adapters

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"snowstage-sync/internal/ports"
	"snowstage-sync/internal/shared"
	"snowstage-sync/internal/types"
)

const (
	defaultPipPlatform      = "manylinux2014_x86_64"
	defaultPipPythonVersion = "3.8"
	defaultPythonBinary     = "python3"
)

// PipDownloadAdapter fetches wheels by shelling out to pip's download
// subcommand. Artifacts are restricted to a single platform and
// runtime version and to binary distributions, so they are directly
// importable inside the warehouse without a build step.
type PipDownloadAdapter struct {
	Runner ports.CommandRunner
}

func NewPipDownloadAdapter(runner ports.CommandRunner) PipDownloadAdapter {
	return PipDownloadAdapter{Runner: runner}
}

func (a PipDownloadAdapter) Download(ctx context.Context, opts types.DownloadOptions) error {
	if strings.TrimSpace(opts.ManifestPath) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is empty")
	}
	if strings.TrimSpace(opts.TargetDir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("download directory is empty")
	}
	if err := resetDownloadDir(opts.TargetDir); err != nil {
		return err
	}
	python, args := pipDownloadCommand(opts)
	log.Ctx(ctx).Debug().Str("python", python).Strs("args", args).Msg("invoking pip download")
	output, err := a.Runner.Run(ctx, python, args...)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pip download failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

// resetDownloadDir guarantees the directory is either absent or fully
// populated by a completed fetch: any existing contents are destroyed
// before downloading starts.
func resetDownloadDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to clear download directory").
			WithCause(err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create download directory").
			WithCause(err)
	}
	return nil
}

func pipDownloadCommand(opts types.DownloadOptions) (string, []string) {
	python := strings.TrimSpace(opts.Python)
	if python == "" {
		python = defaultPythonBinary
	}
	platform := strings.TrimSpace(opts.Platform)
	if platform == "" {
		platform = defaultPipPlatform
	}
	pythonVersion := strings.TrimSpace(opts.PythonVersion)
	if pythonVersion == "" {
		pythonVersion = defaultPipPythonVersion
	}
	args := []string{
		"-m", "pip", "download",
		"-r", opts.ManifestPath,
		"-d", opts.TargetDir,
		"--platform", platform,
		"--only-binary=:all:",
		"--python-version", pythonVersion,
	}
	if indexURL := strings.TrimSpace(opts.IndexURL); indexURL != "" {
		args = append(args, "--index-url", indexURL)
	}
	return python, args
}

var _ ports.DownloaderPort = PipDownloadAdapter{}
