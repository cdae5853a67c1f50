package app

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"snowstage-sync/internal/types"
)

func (s Service) Download(ctx context.Context, req DownloadRequest) (DownloadResult, error) {
	manifest := valueOrDefault(req.Requirements, DefaultRequirements)
	dir := valueOrDefault(req.DownloadDir, DefaultDownloadDir)
	if _, err := os.Stat(manifest); err != nil {
		return DownloadResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("requirements file not found").
			WithCause(err)
	}
	log.Info().Str("manifest", manifest).Str("dir", dir).Msg("downloading packages")
	err := s.Downloader.Download(ctx, types.DownloadOptions{
		ManifestPath:  manifest,
		TargetDir:     dir,
		IndexURL:      strings.TrimSpace(req.IndexURL),
		Platform:      req.Platform,
		PythonVersion: req.PythonVersion,
		Python:        req.Python,
	})
	if err != nil {
		return DownloadResult{}, err
	}
	count, err := countFiles(dir)
	if err != nil {
		return DownloadResult{}, err
	}
	log.Info().Int("files", count).Msg("download complete")
	return DownloadResult{DownloadDir: dir, FileCount: count}, nil
}

func countFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list download directory").
			WithCause(err)
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			count++
		}
	}
	return count, nil
}
