package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snowstage-sync/internal/app"
)

type packageOptions struct {
	DownloadDir string
	ZipName     string
}

func newPackageCommand() *cobra.Command {
	opts := packageOptions{}
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Zip downloaded artifacts into a single archive",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPackage(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.DownloadDir, "download-dir", "", "Directory containing downloaded packages (default ./downloaded_packages)")
	cmd.Flags().StringVar(&opts.ZipName, "zip-name", "", "Name of the output zip file (default app_packages.zip)")
	_ = viper.BindPFlag("download_dir", cmd.Flags().Lookup("download-dir"))
	_ = viper.BindPFlag("zip_name", cmd.Flags().Lookup("zip-name"))
	return cmd
}

func runPackage(ctx context.Context, cmd *cobra.Command, opts packageOptions) error {
	service := newAppService()
	result, err := service.Package(ctx, app.PackageRequest{
		DownloadDir: resolveString(cmd, opts.DownloadDir, "download_dir", "download-dir"),
		ZipName:     resolveString(cmd, opts.ZipName, "zip_name", "zip-name"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("packaged %d files into %s\n", result.FileCount, result.ArchivePath)
	return nil
}
