package adapters

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	sf "github.com/snowflakedb/gosnowflake"

	"snowstage-sync/internal/ports"
	"snowstage-sync/internal/types"
)

const snowflakeDriverName = "snowflake"

// SnowflakeStageAdapter opens warehouse connections through the
// gosnowflake database/sql driver. Each Connect is a fresh connection;
// there is no pooling across pipeline runs.
type SnowflakeStageAdapter struct{}

func NewSnowflakeStageAdapter() SnowflakeStageAdapter {
	return SnowflakeStageAdapter{}
}

// Available verifies the snowflake driver is registered with
// database/sql. Checked before any credential or connection logic so a
// missing driver fails on its own exit path.
func (a SnowflakeStageAdapter) Available() error {
	for _, name := range sql.Drivers() {
		if name == snowflakeDriverName {
			return nil
		}
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeUnimplemented).
		WithMsg("snowflake driver is not registered")
}

func (a SnowflakeStageAdapter) Connect(ctx context.Context, creds types.Credentials) (ports.StageConn, error) {
	cfg := &sf.Config{
		Account:   creds.Account,
		User:      creds.User,
		Password:  creds.Password,
		Role:      creds.Role,
		Warehouse: creds.Warehouse,
		Database:  creds.Database,
		Schema:    creds.Schema,
	}
	dsn, err := sf.DSN(cfg)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to build warehouse dsn").
			WithCause(err)
	}
	db, err := sql.Open(snowflakeDriverName, dsn)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open warehouse connection").
			WithCause(err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to connect to warehouse").
			WithCause(err)
	}
	return &snowflakeConn{db: db}, nil
}

type snowflakeConn struct {
	db *sql.DB
}

func (c *snowflakeConn) Execute(ctx context.Context, command string) ([]types.TransferRow, error) {
	rows, err := c.db.QueryContext(ctx, command)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("stage transfer command failed").
			WithCause(err)
	}
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read transfer result columns").
			WithCause(err)
	}
	var out []types.TransferRow
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		scanArgs := make([]any, len(cols))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to scan transfer result row").
				WithCause(err)
		}
		out = append(out, transferRowFromColumns(cols, values))
	}
	if err := rows.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read transfer result rows").
			WithCause(err)
	}
	return out, nil
}

func (c *snowflakeConn) Close() error {
	return c.db.Close()
}

// transferRowFromColumns maps a PUT result row onto the fields this
// pipeline cares about; other columns (sizes, compression) are dropped.
func transferRowFromColumns(cols []string, values []sql.NullString) types.TransferRow {
	row := types.TransferRow{}
	for i, col := range cols {
		switch strings.ToLower(col) {
		case "source":
			row.Source = values[i].String
		case "target":
			row.Target = values[i].String
		case "status":
			row.Status = values[i].String
		case "message":
			row.Message = values[i].String
		}
	}
	return row
}

var _ ports.StageConnector = SnowflakeStageAdapter{}
var _ ports.StageConn = (*snowflakeConn)(nil)
