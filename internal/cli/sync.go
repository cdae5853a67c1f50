package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snowstage-sync/internal/app"
)

type syncOptions struct {
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

func newSyncCommand() *cobra.Command {
	opts := syncOptions{}
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Download, package, and upload packages in one run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd.Context(), cmd, opts)
		},
	}
	addPipelineFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.Stage, "stage", "", "Snowflake stage name (e.g., @MY_DB.MY_SCHEMA.MY_STAGE)")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Sync profile YAML file")
	cmd.Flags().BoolVar(&opts.KeepArtifacts, "keep-artifacts", false, "Keep the download directory and archive after a successful upload")
	_ = viper.BindPFlag("stage", cmd.Flags().Lookup("stage"))
	_ = viper.BindPFlag("profile", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("keep_artifacts", cmd.Flags().Lookup("keep-artifacts"))
	return cmd
}

// addPipelineFlags registers the flags shared by sync and the
// per-stage commands. Defaults are left empty here; the app layer
// applies profile values first and built-in defaults last.
func addPipelineFlags(cmd *cobra.Command, opts *syncOptions) {
	cmd.Flags().StringVar(&opts.Requirements, "requirements", "", "Path to requirements.txt (default requirements.txt)")
	cmd.Flags().StringVar(&opts.DownloadDir, "download-dir", "", "Directory to download packages to (default ./downloaded_packages)")
	cmd.Flags().StringVar(&opts.ZipName, "zip-name", "", "Name of the output zip file (default app_packages.zip)")
	cmd.Flags().StringVar(&opts.IndexURL, "index-url", "", "Alternate package index URL (e.g., a ProGet pypi feed)")
	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Target wheel platform tag (default manylinux2014_x86_64)")
	cmd.Flags().StringVar(&opts.PythonVersion, "python-version", "", "Target Python runtime version (default 3.8)")
	cmd.Flags().StringVar(&opts.Python, "python", "", "Python interpreter used to run pip (default python3)")
	_ = viper.BindPFlag("requirements", cmd.Flags().Lookup("requirements"))
	_ = viper.BindPFlag("download_dir", cmd.Flags().Lookup("download-dir"))
	_ = viper.BindPFlag("zip_name", cmd.Flags().Lookup("zip-name"))
	_ = viper.BindPFlag("index_url", cmd.Flags().Lookup("index-url"))
	_ = viper.BindPFlag("platform", cmd.Flags().Lookup("platform"))
	_ = viper.BindPFlag("python_version", cmd.Flags().Lookup("python-version"))
	_ = viper.BindPFlag("python", cmd.Flags().Lookup("python"))
}

func runSync(ctx context.Context, cmd *cobra.Command, opts syncOptions) error {
	service := newAppService()
	result, err := service.Sync(ctx, app.SyncRequest{
		Profile:       resolveString(cmd, opts.Profile, "profile", "profile"),
		Requirements:  resolveString(cmd, opts.Requirements, "requirements", "requirements"),
		Stage:         resolveString(cmd, opts.Stage, "stage", "stage"),
		DownloadDir:   resolveString(cmd, opts.DownloadDir, "download_dir", "download-dir"),
		ZipName:       resolveString(cmd, opts.ZipName, "zip_name", "zip-name"),
		IndexURL:      resolveString(cmd, opts.IndexURL, "index_url", "index-url"),
		Platform:      resolveString(cmd, opts.Platform, "platform", "platform"),
		PythonVersion: resolveString(cmd, opts.PythonVersion, "python_version", "python-version"),
		Python:        resolveString(cmd, opts.Python, "python", "python"),
		KeepArtifacts: resolveBool(cmd, opts.KeepArtifacts, "keep_artifacts", "keep-artifacts"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("synced %d files to %s\n", result.FileCount, result.Stage)
	return nil
}
