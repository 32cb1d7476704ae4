package repositories

import (
	"context"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
)

// ManifestRepository loads the projects of a dependency manifest.
// Implementations return projects in manifest order and never drop or merge entries.
type ManifestRepository interface {
	Load(ctx context.Context, source entities.ManifestSource) ([]entities.Project, error)
}
