package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"snowstage-sync/internal/ports"
	"snowstage-sync/internal/shared"
	"snowstage-sync/internal/types"
)

// ManifestFileAdapter reads a plain-text requirements manifest, one
// specifier per line. The download stage passes the file to pip
// untouched; this reader backs the validate command.
type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) ReadManifest(path string) ([]types.Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("requirements file not found").
			WithCause(err)
	}
	var reqs []types.Requirement
	for i, line := range strings.Split(string(data), "\n") {
		raw := strings.TrimSpace(line)
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		spec := raw
		// Inline comments and environment markers are not part of the
		// name/constraint split.
		if idx := strings.Index(spec, " #"); idx >= 0 {
			spec = strings.TrimSpace(spec[:idx])
		}
		if idx := strings.Index(spec, ";"); idx >= 0 {
			spec = strings.TrimSpace(spec[:idx])
		}
		name, constraint := splitRequirement(spec)
		reqs = append(reqs, types.Requirement{
			Name:           name,
			NormalizedName: shared.NormalizePipName(stripExtras(name)),
			Specifier:      constraint,
			Raw:            raw,
			Line:           i + 1,
		})
	}
	return reqs, nil
}

func splitRequirement(line string) (string, string) {
	idx := strings.IndexAny(line, "=<>!~")
	if idx < 0 {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx:])
}

func stripExtras(name string) string {
	if idx := strings.Index(name, "["); idx >= 0 {
		return name[:idx]
	}
	return name
}

var _ ports.ManifestPort = ManifestFileAdapter{}
