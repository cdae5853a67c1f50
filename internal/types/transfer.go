package types

// TransferRow is one row of a PUT command result: one local file and
// the upload status the warehouse reported for it.
type TransferRow struct {
	Source  string
	Target  string
	Status  string
	Message string
}

// Succeeded reports whether the warehouse accepted the file. SKIPPED
// is returned when the stage already holds an identical object.
func (r TransferRow) Succeeded() bool {
	return r.Status == "UPLOADED" || r.Status == "SKIPPED"
}
