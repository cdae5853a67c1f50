package adapters

import (
	"os"

	"snowstage-sync/internal/ports"
	"snowstage-sync/internal/types"
)

// EnvCredentialSource reads the warehouse credential bundle from the
// process environment once per call. Values stay in memory only.
type EnvCredentialSource struct{}

func NewEnvCredentialSource() EnvCredentialSource {
	return EnvCredentialSource{}
}

func (s EnvCredentialSource) Load() types.Credentials {
	return types.Credentials{
		Account:   os.Getenv("SNOWFLAKE_ACCOUNT"),
		User:      os.Getenv("SNOWFLAKE_USER"),
		Password:  os.Getenv("SNOWFLAKE_PASSWORD"),
		Role:      os.Getenv("SNOWFLAKE_ROLE"),
		Warehouse: os.Getenv("SNOWFLAKE_WAREHOUSE"),
		Database:  os.Getenv("SNOWFLAKE_DATABASE"),
		Schema:    os.Getenv("SNOWFLAKE_SCHEMA"),
	}
}

var _ ports.CredentialSource = EnvCredentialSource{}
