package types

// Credentials holds the Snowflake connection values for a stage
// upload. Account, User and Password are mandatory. Role, Warehouse,
// Database and Schema are optional pass-throughs; empty means the
// connection default applies. Values are held in memory only and must
// never be logged.
type Credentials struct {
	Account   string
	User      string
	Password  string
	Role      string
	Warehouse string
	Database  string
	Schema    string
}

// MissingMandatory returns the environment variable names of mandatory
// credentials that are absent. An empty slice means the bundle is
// complete enough to connect.
func (c Credentials) MissingMandatory() []string {
	var missing []string
	if c.Account == "" {
		missing = append(missing, "SNOWFLAKE_ACCOUNT")
	}
	if c.User == "" {
		missing = append(missing, "SNOWFLAKE_USER")
	}
	if c.Password == "" {
		missing = append(missing, "SNOWFLAKE_PASSWORD")
	}
	return missing
}
