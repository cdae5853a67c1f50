package types

type ProfileKind string

const ProfileKindSync ProfileKind = "sync-profile"

type ProfileMetadata struct {
	Name string `yaml:"name"`
}

// SyncProfile is an optional YAML document that pre-fills pipeline
// settings for a recurring sync. Command-line flags override any field
// set here.
type SyncProfile struct {
	APIVersion    string          `yaml:"api_version"`
	Kind          ProfileKind     `yaml:"kind"`
	Metadata      ProfileMetadata `yaml:"metadata"`
	Stage         string          `yaml:"stage"`
	Requirements  string          `yaml:"requirements"`
	DownloadDir   string          `yaml:"download_dir"`
	ZipName       string          `yaml:"zip_name"`
	IndexURL      string          `yaml:"index_url"`
	Platform      string          `yaml:"platform"`
	PythonVersion string          `yaml:"python_version"`
	Python        string          `yaml:"python"`
}
