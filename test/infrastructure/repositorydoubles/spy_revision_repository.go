//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	"github.com/rios0rios0/bobcheckout/internal/domain/repositories"
)

// SpyRevisionRepository implements repositories.RevisionRepository as a configurable spy.
type SpyRevisionRepository struct {
	// --- identity ---
	ResolverName string

	// --- Resolve ---
	Commit       string
	ResolveErr   error
	ResolveCalls []ResolveCall
}

// ResolveCall records a single invocation of Resolve.
type ResolveCall struct {
	Project entities.Project
	Ref     string
}

var _ repositories.RevisionRepository = (*SpyRevisionRepository)(nil)

func (s *SpyRevisionRepository) Name() string {
	if s.ResolverName == "" {
		return entities.ResolverGoGit
	}
	return s.ResolverName
}

func (s *SpyRevisionRepository) Resolve(
	_ context.Context, project entities.Project, ref string,
) (string, error) {
	s.ResolveCalls = append(s.ResolveCalls, ResolveCall{Project: project, Ref: ref})
	if s.ResolveErr != nil {
		return "", s.ResolveErr
	}
	return s.Commit, nil
}
