package revision

import (
	"context"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	"github.com/rios0rios0/bobcheckout/internal/domain/repositories"
)

// GoGitRevisionRepository resolves revisions by reading the project's
// repository metadata in-process with go-git.
type GoGitRevisionRepository struct{}

var _ repositories.RevisionRepository = (*GoGitRevisionRepository)(nil)

// NewGoGitRevisionRepository creates a new go-git backed resolver.
func NewGoGitRevisionRepository() repositories.RevisionRepository {
	return &GoGitRevisionRepository{}
}

// Name returns the resolver identifier.
func (it *GoGitRevisionRepository) Name() string { return entities.ResolverGoGit }

// Resolve opens the checkout at project.AbsPath (without searching parent
// directories, so a project that is not cloned never resolves to the
// enclosing repository) and resolves ref to a commit hash.
func (it *GoGitRevisionRepository) Resolve(
	_ context.Context,
	project entities.Project,
	ref string,
) (string, error) {
	repo, err := git.PlainOpenWithOptions(project.AbsPath, &git.PlainOpenOptions{
		DetectDotGit:          false,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", newResolutionError(project, ref, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return "", newResolutionError(project, ref, err)
	}

	logger.Debugf("Resolved %s in %s to %s", ref, project.AbsPath, hash)
	return hash.String(), nil
}

func newResolutionError(project entities.Project, ref string, err error) *entities.ResolutionError {
	return &entities.ResolutionError{
		Project: project.Name,
		Path:    project.Path,
		Ref:     ref,
		Err:     err,
	}
}
