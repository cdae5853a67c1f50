package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snowstage-sync/internal/app"
)

type uploadOptions struct {
	ZipName string
	Stage   string
}

func newUploadCommand() *cobra.Command {
	opts := uploadOptions{}
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a packaged archive to a Snowflake stage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpload(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ZipName, "zip-name", "", "Archive file to upload (default app_packages.zip)")
	cmd.Flags().StringVar(&opts.Stage, "stage", "", "Snowflake stage name (e.g., @MY_DB.MY_SCHEMA.MY_STAGE)")
	_ = viper.BindPFlag("zip_name", cmd.Flags().Lookup("zip-name"))
	_ = viper.BindPFlag("stage", cmd.Flags().Lookup("stage"))
	return cmd
}

func runUpload(ctx context.Context, cmd *cobra.Command, opts uploadOptions) error {
	service := newAppService()
	result, err := service.Upload(ctx, app.UploadRequest{
		ArchivePath: resolveString(cmd, opts.ZipName, "zip_name", "zip-name"),
		Stage:       resolveString(cmd, opts.Stage, "stage", "stage"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("uploaded %d files\n", len(result.Rows))
	return nil
}
