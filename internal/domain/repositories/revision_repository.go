package repositories

import (
	"context"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
)

// RevisionRepository resolves a symbolic reference (e.g. "HEAD") to the
// concrete commit hash of a project's checkout on disk.
type RevisionRepository interface {
	// Name returns the resolver identifier (e.g. "gogit", "git").
	Name() string

	// Resolve returns the full commit hash ref points to in the project's checkout.
	// Failures are reported as *entities.ResolutionError.
	Resolve(ctx context.Context, project entities.Project, ref string) (string, error)
}
