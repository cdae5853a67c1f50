package app

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
)

// Sync runs the whole pipeline: download, package, upload, then
// best-effort cleanup of the intermediate artifacts. Any stage failure
// aborts the run and leaves artifacts on disk for inspection.
func (s Service) Sync(ctx context.Context, req SyncRequest) (SyncResult, error) {
	req, err := s.applyProfile(req)
	if err != nil {
		return SyncResult{}, err
	}
	start := s.Clock()

	download, err := s.Download(ctx, DownloadRequest{
		Requirements:  req.Requirements,
		DownloadDir:   req.DownloadDir,
		IndexURL:      req.IndexURL,
		Platform:      req.Platform,
		PythonVersion: req.PythonVersion,
		Python:        req.Python,
	})
	if err != nil {
		return SyncResult{}, err
	}

	pkg, err := s.Package(ctx, PackageRequest{
		DownloadDir: download.DownloadDir,
		ZipName:     req.ZipName,
	})
	if err != nil {
		return SyncResult{}, err
	}

	if _, err := s.Upload(ctx, UploadRequest{
		ArchivePath: pkg.ArchivePath,
		Stage:       req.Stage,
	}); err != nil {
		return SyncResult{}, err
	}

	if req.KeepArtifacts {
		log.Info().Str("dir", download.DownloadDir).Str("archive", pkg.ArchivePath).Msg("keeping intermediate artifacts")
	} else {
		cleanupArtifacts(download.DownloadDir, pkg.ArchivePath)
	}
	log.Info().Dur("elapsed", s.Clock().Sub(start)).Msg("sync complete")
	return SyncResult{
		Stage:       req.Stage,
		ArchivePath: pkg.ArchivePath,
		FileCount:   pkg.FileCount,
	}, nil
}

// applyProfile fills request fields that were not set explicitly from
// the sync profile, if one was given. Explicit values always win.
func (s Service) applyProfile(req SyncRequest) (SyncRequest, error) {
	if req.Profile == "" {
		return req, nil
	}
	profile, err := s.Profiles.LoadProfile(req.Profile)
	if err != nil {
		return SyncRequest{}, err
	}
	req.Stage = valueOrDefault(req.Stage, profile.Stage)
	req.Requirements = valueOrDefault(req.Requirements, profile.Requirements)
	req.DownloadDir = valueOrDefault(req.DownloadDir, profile.DownloadDir)
	req.ZipName = valueOrDefault(req.ZipName, profile.ZipName)
	req.IndexURL = valueOrDefault(req.IndexURL, profile.IndexURL)
	req.Platform = valueOrDefault(req.Platform, profile.Platform)
	req.PythonVersion = valueOrDefault(req.PythonVersion, profile.PythonVersion)
	req.Python = valueOrDefault(req.Python, profile.Python)
	log.Debug().Str("profile", profile.Metadata.Name).Msg("applied sync profile")
	return req, nil
}

// Cleanup is best-effort: a failure here does not fail a run whose
// upload already succeeded.
func cleanupArtifacts(downloadDir string, archivePath string) {
	if err := os.RemoveAll(downloadDir); err != nil {
		log.Warn().Err(err).Str("dir", downloadDir).Msg("failed to remove download directory")
	}
	if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("archive", archivePath).Msg("failed to remove archive")
	}
}
