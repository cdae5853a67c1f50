package app

import (
	"time"

	"snowstage-sync/internal/adapters"
	"snowstage-sync/internal/ports"
)

type Service struct {
	Downloader  ports.DownloaderPort
	Archiver    ports.ArchiverPort
	Stage       ports.StageConnector
	Manifest    ports.ManifestPort
	Profiles    ports.ProfilePort
	Credentials ports.CredentialSource
	Clock       func() time.Time
}

func NewService() Service {
	return Service{
		Downloader:  adapters.NewPipDownloadAdapter(adapters.NewExecRunner()),
		Archiver:    adapters.NewZipArchiverAdapter(),
		Stage:       adapters.NewSnowflakeStageAdapter(),
		Manifest:    adapters.NewManifestFileAdapter(),
		Profiles:    adapters.NewProfileFileAdapter(),
		Credentials: adapters.NewEnvCredentialSource(),
		Clock:       time.Now,
	}
}
