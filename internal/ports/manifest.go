package ports

import "snowstage-sync/internal/types"

// ManifestPort reads a requirements manifest into typed requirement
// lines. Comment and blank lines are skipped.
type ManifestPort interface {
	ReadManifest(path string) ([]types.Requirement, error)
}

// ProfilePort loads sync profile documents.
type ProfilePort interface {
	LoadProfile(path string) (types.SyncProfile, error)
}

// CredentialSource resolves warehouse credentials from the process
// environment.
type CredentialSource interface {
	Load() types.Credentials
}
