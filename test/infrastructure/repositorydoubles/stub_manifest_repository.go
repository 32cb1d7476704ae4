//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	"github.com/rios0rios0/bobcheckout/internal/domain/repositories"
)

// StubManifestRepository implements repositories.ManifestRepository with canned projects.
type StubManifestRepository struct {
	Projects   []entities.Project
	LoadErr    error
	LoadCount  int
	LastSource entities.ManifestSource
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) Load(
	_ context.Context, source entities.ManifestSource,
) ([]entities.Project, error) {
	s.LoadCount++
	s.LastSource = source
	return s.Projects, s.LoadErr
}
