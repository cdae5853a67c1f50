package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"snowstage-sync/internal/ports"
	"snowstage-sync/internal/types"
)

// ProfileFileAdapter loads sync profile documents from YAML files.
type ProfileFileAdapter struct{}

func NewProfileFileAdapter() ProfileFileAdapter {
	return ProfileFileAdapter{}
}

func (a ProfileFileAdapter) LoadProfile(path string) (types.SyncProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SyncProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("profile file not found").
			WithCause(err)
	}
	var profile types.SyncProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return types.SyncProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse profile yaml").
			WithCause(err)
	}
	if profile.Kind != types.ProfileKindSync {
		return types.SyncProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("profile kind is not sync-profile")
	}
	if profile.Metadata.Name == "" {
		return types.SyncProfile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("profile metadata.name must be set")
	}
	return profile, nil
}

var _ ports.ProfilePort = ProfileFileAdapter{}
