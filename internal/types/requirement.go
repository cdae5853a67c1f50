package types

// Requirement is a single dependency line from a requirements
// manifest, split into name and constraint parts. The manifest is
// passed to pip verbatim for downloads; this typed form exists for
// validation and reporting.
type Requirement struct {
	// Name as written in the manifest.
	Name string
	// NormalizedName is the PEP 503 normalized form of Name.
	NormalizedName string
	// Specifier is the PEP 440 constraint portion ("==1.2.3",
	// ">=2,<3"). Empty means any version.
	Specifier string
	// Raw is the full manifest line without surrounding whitespace.
	Raw string
	// Line is the 1-based line number in the manifest file.
	Line int
}
