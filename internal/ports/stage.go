package ports

import (
	"context"

	"snowstage-sync/internal/types"
)

// StageConnector opens warehouse connections for stage file transfers.
// Available is checked before credentials are read so a missing driver
// fails on its own path.
type StageConnector interface {
	Available() error
	Connect(ctx context.Context, creds types.Credentials) (StageConn, error)
}

// StageConn is a live warehouse connection. Execute runs a single SQL
// command and returns its result rows. Close must be called exactly
// once per connection, whether or not Execute succeeded.
type StageConn interface {
	Execute(ctx context.Context, command string) ([]types.TransferRow, error)
	Close() error
}
