package app

import "snowstage-sync/internal/types"

type DownloadRequest struct {
	Requirements  string
	DownloadDir   string
	IndexURL      string
	Platform      string
	PythonVersion string
	Python        string
}

type DownloadResult struct {
	DownloadDir string
	FileCount   int
}

type PackageRequest struct {
	DownloadDir string
	ZipName     string
}

type PackageResult struct {
	ArchivePath string
	FileCount   int
}

type UploadRequest struct {
	ArchivePath string
	Stage       string
}

type UploadResult struct {
	Rows []types.TransferRow
}

type SyncRequest struct {
	Profile       string
	Requirements  string
	Stage         string
	DownloadDir   string
	ZipName       string
	IndexURL      string
	Platform      string
	PythonVersion string
	Python        string
	KeepArtifacts bool
}

type SyncResult struct {
	Stage       string
	ArchivePath string
	FileCount   int
}

type ValidateRequest struct {
	Requirements string
}

type ValidateResult struct {
	Count  int
	Pinned int
}
