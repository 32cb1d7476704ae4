package revision

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	"github.com/rios0rios0/bobcheckout/internal/domain/repositories"
)

// CLIRevisionRepository resolves revisions by running the git binary inside
// the project's checkout, the same way west itself does.
type CLIRevisionRepository struct {
	gitPath string
}

var _ repositories.RevisionRepository = (*CLIRevisionRepository)(nil)

// NewCLIRevisionRepository creates a resolver that runs "git" from PATH.
func NewCLIRevisionRepository() repositories.RevisionRepository {
	return &CLIRevisionRepository{gitPath: "git"}
}

// Name returns the resolver identifier.
func (it *CLIRevisionRepository) Name() string { return entities.ResolverGitCLI }

// Resolve runs "git rev-parse --verify <ref>^{commit}" in project.AbsPath.
func (it *CLIRevisionRepository) Resolve(
	ctx context.Context,
	project entities.Project,
	ref string,
) (string, error) {
	// git would otherwise walk up and answer for the enclosing repository
	if _, err := os.Stat(filepath.Join(project.AbsPath, ".git")); err != nil {
		return "", newResolutionError(project, ref, fmt.Errorf("not a git checkout: %w", err))
	}

	cmd := exec.CommandContext(ctx, it.gitPath, "rev-parse", "--verify", ref+"^{commit}")
	cmd.Dir = project.AbsPath

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			err = fmt.Errorf("git rev-parse: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", newResolutionError(project, ref, err)
	}

	hash := strings.TrimSpace(string(output))
	if !plumbing.IsHash(hash) {
		return "", newResolutionError(project, ref, fmt.Errorf("unexpected git rev-parse output %q", hash))
	}

	logger.Debugf("Resolved %s in %s to %s", ref, project.AbsPath, hash)
	return hash, nil
}
