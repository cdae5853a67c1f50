package ports

import (
	"context"

	"snowstage-sync/internal/types"
)

// DownloaderPort fetches binary wheel artifacts for a requirements
// manifest into a target directory. The target directory is destroyed
// and recreated first so no artifact from a prior run survives.
type DownloaderPort interface {
	Download(ctx context.Context, opts types.DownloadOptions) error
}
