package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"snowstage-sync/internal/types"
)

// ManifestReport summarizes a validated requirements manifest.
type ManifestReport struct {
	Requirements []types.Requirement
	// Pinned counts requirements with an exact "==" constraint.
	Pinned int
}

// CompileManifest validates parsed requirement lines: every specifier
// must be valid PEP 440 and no package may appear twice after PEP 503
// name normalization. The manifest itself stays opaque to the download
// stage; this check exists so a broken manifest fails before pip runs.
func CompileManifest(ctx context.Context, reqs []types.Requirement) (ManifestReport, error) {
	if len(reqs) == 0 {
		return ManifestReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest contains no requirements")
	}
	seen := map[string]int{}
	report := ManifestReport{Requirements: reqs}
	for _, req := range reqs {
		assert.NotEmpty(ctx, req.Raw, "requirement raw line must be set")
		assert.NotEmpty(ctx, req.NormalizedName, "requirement normalized name must be set")
		if req.Name == "" {
			return ManifestReport{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("line %d: requirement has no package name", req.Line))
		}
		if prev, ok := seen[req.NormalizedName]; ok {
			return ManifestReport{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("line %d: duplicate requirement %s (first seen on line %d)", req.Line, req.NormalizedName, prev))
		}
		seen[req.NormalizedName] = req.Line
		if req.Specifier == "" {
			continue
		}
		spec, err := pep440.NewSpecifiers(req.Specifier)
		if err != nil {
			return ManifestReport{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("line %d: invalid version specifier %q for %s", req.Line, req.Specifier, req.Name)).
				WithCause(err)
		}
		if isPinned(spec, req.Specifier) {
			report.Pinned++
		}
	}
	log.Ctx(ctx).Debug().Int("requirements", len(reqs)).Int("pinned", report.Pinned).Msg("manifest compiled")
	return report, nil
}

func isPinned(_ pep440.Specifiers, raw string) bool {
	// "==" but not "==x.*" wildcard counts as a pin.
	return len(raw) > 2 && raw[0] == '=' && raw[1] == '=' && raw[len(raw)-1] != '*'
}
