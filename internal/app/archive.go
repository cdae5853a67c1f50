package app

import (
	"context"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

func (s Service) Package(ctx context.Context, req PackageRequest) (PackageResult, error) {
	dir := valueOrDefault(req.DownloadDir, DefaultDownloadDir)
	zipName := valueOrDefault(req.ZipName, DefaultZipName)
	log.Ctx(ctx).Info().Str("dir", dir).Str("archive", zipName).Msg("packaging downloads")
	count, err := s.Archiver.Archive(dir, zipName)
	if err != nil {
		return PackageResult{}, err
	}
	if count == 0 {
		return PackageResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no package artifacts to archive")
	}
	abs, err := filepath.Abs(zipName)
	if err != nil {
		return PackageResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve archive path").
			WithCause(err)
	}
	log.Info().Int("files", count).Str("archive", abs).Msg("packaging complete")
	return PackageResult{ArchivePath: abs, FileCount: count}, nil
}
