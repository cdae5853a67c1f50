package app

import (
	"context"

	"snowstage-sync/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	path := valueOrDefault(req.Requirements, DefaultRequirements)
	reqs, err := s.Manifest.ReadManifest(path)
	if err != nil {
		return ValidateResult{}, err
	}
	report, err := core.CompileManifest(ctx, reqs)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Count:  len(report.Requirements),
		Pinned: report.Pinned,
	}, nil
}
