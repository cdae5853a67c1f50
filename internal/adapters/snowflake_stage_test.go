package adapters

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowstage-sync/internal/types"
)

func TestSnowflakeDriverAvailable(t *testing.T) {
	// Importing gosnowflake registers the driver, so availability holds
	// for any binary built from this module.
	adapter := NewSnowflakeStageAdapter()
	require.NoError(t, adapter.Available())
}

func TestTransferRowFromColumns(t *testing.T) {
	cols := []string{"source", "target", "source_size", "target_size", "source_compression", "target_compression", "status", "message"}
	values := make([]sql.NullString, len(cols))
	values[0] = sql.NullString{String: "app_packages.zip", Valid: true}
	values[1] = sql.NullString{String: "app_packages.zip", Valid: true}
	values[6] = sql.NullString{String: "UPLOADED", Valid: true}

	row := transferRowFromColumns(cols, values)
	assert.Equal(t, types.TransferRow{
		Source: "app_packages.zip",
		Target: "app_packages.zip",
		Status: "UPLOADED",
	}, row)
	assert.True(t, row.Succeeded())
}

func TestTransferRowUppercaseColumns(t *testing.T) {
	cols := []string{"SOURCE", "STATUS", "MESSAGE"}
	values := []sql.NullString{
		{String: "pkg.zip", Valid: true},
		{String: "ERROR", Valid: true},
		{String: "stage quota exceeded", Valid: true},
	}
	row := transferRowFromColumns(cols, values)
	assert.Equal(t, "pkg.zip", row.Source)
	assert.Equal(t, "ERROR", row.Status)
	assert.Equal(t, "stage quota exceeded", row.Message)
	assert.False(t, row.Succeeded())
}
