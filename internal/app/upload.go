package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

func (s Service) Upload(ctx context.Context, req UploadRequest) (UploadResult, error) {
	stage := strings.TrimSpace(req.Stage)
	if stage == "" {
		return UploadResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("stage target is required")
	}
	if !strings.HasPrefix(stage, "@") {
		return UploadResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("stage target must start with @")
	}
	archive := valueOrDefault(req.ArchivePath, DefaultZipName)
	if err := s.Stage.Available(); err != nil {
		return UploadResult{}, err
	}
	if _, err := os.Stat(archive); err != nil {
		return UploadResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("archive file not found").
			WithCause(err)
	}
	creds := s.Credentials.Load()
	if missing := creds.MissingMandatory(); len(missing) > 0 {
		return UploadResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("missing warehouse credentials: %s", strings.Join(missing, ", ")))
	}
	abs, err := filepath.Abs(archive)
	if err != nil {
		return UploadResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve archive path").
			WithCause(err)
	}
	log.Info().Str("archive", abs).Str("stage", stage).Msg("uploading archive to stage")
	conn, err := s.Stage.Connect(ctx, creds)
	if err != nil {
		return UploadResult{}, err
	}
	rows, execErr := conn.Execute(ctx, putCommand(abs, stage))
	closeErr := conn.Close()
	if execErr != nil {
		return UploadResult{}, execErr
	}
	for _, row := range rows {
		log.Info().
			Str("source", row.Source).
			Str("target", row.Target).
			Str("status", row.Status).
			Msg("transfer result")
		if !row.Succeeded() {
			return UploadResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("stage rejected %s: %s %s", row.Source, row.Status, row.Message))
		}
	}
	if closeErr != nil {
		return UploadResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to release warehouse connection").
			WithCause(closeErr)
	}
	log.Info().Msg("upload complete")
	return UploadResult{Rows: rows}, nil
}

func putCommand(absPath string, stage string) string {
	return fmt.Sprintf("PUT file://%s %s AUTO_COMPRESS=FALSE OVERWRITE=TRUE", absPath, stage)
}
