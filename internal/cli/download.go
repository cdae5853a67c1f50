package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"snowstage-sync/internal/app"
)

type downloadOptions = syncOptions

func newDownloadCommand() *cobra.Command {
	opts := downloadOptions{}
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download wheel artifacts for a requirements manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDownload(cmd.Context(), cmd, opts)
		},
	}
	addPipelineFlags(cmd, &opts)
	return cmd
}

func runDownload(ctx context.Context, cmd *cobra.Command, opts downloadOptions) error {
	service := newAppService()
	result, err := service.Download(ctx, app.DownloadRequest{
		Requirements:  resolveString(cmd, opts.Requirements, "requirements", "requirements"),
		DownloadDir:   resolveString(cmd, opts.DownloadDir, "download_dir", "download-dir"),
		IndexURL:      resolveString(cmd, opts.IndexURL, "index_url", "index-url"),
		Platform:      resolveString(cmd, opts.Platform, "platform", "platform"),
		PythonVersion: resolveString(cmd, opts.PythonVersion, "python_version", "python-version"),
		Python:        resolveString(cmd, opts.Python, "python", "python"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("downloaded %d files to %s\n", result.FileCount, result.DownloadDir)
	return nil
}
