package commands

import (
	"context"
	"errors"

	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	"github.com/rios0rios0/bobcheckout/internal/domain/repositories"
)

// BuildCheckoutDocument maps every project to exactly one checkout entry,
// preserving manifest order. Projects matched by the upstream rule get the
// rule's URL and the commit resolved for rule.Ref; every other project is
// copied verbatim, including empty URLs or revisions.
func BuildCheckoutDocument(
	ctx context.Context,
	projects []entities.Project,
	resolver repositories.RevisionRepository,
	rule entities.UpstreamRule,
) (*entities.CheckoutDocument, error) {
	document := entities.NewCheckoutDocument(len(projects))

	for _, project := range projects {
		entry := entities.NewCheckoutEntry(project)

		if rule.IsPrimaryUpstreamProject(project) {
			commit, err := resolveUpstreamCommit(ctx, project, resolver, rule.Ref)
			if err != nil {
				return nil, err
			}
			logger.Debugf("Project %q at %q is upstream: %s @ %s", project.Name, project.Path, rule.URL, commit)
			entry = rule.Apply(entry, commit)
		} else if project.Revision != "" && !plumbing.IsHash(project.Revision) {
			logger.Debugf("Project %q pins %q, which is not a commit hash", project.Name, project.Revision)
		}

		document.CheckoutSCM = append(document.CheckoutSCM, entry)
	}

	return document, nil
}

// resolveUpstreamCommit asks the resolver for ref and makes sure any failure,
// including an empty answer, comes back as a ResolutionError for this project.
func resolveUpstreamCommit(
	ctx context.Context,
	project entities.Project,
	resolver repositories.RevisionRepository,
	ref string,
) (string, error) {
	commit, err := resolver.Resolve(ctx, project, ref)
	if err == nil && commit == "" {
		err = errors.New("resolver returned an empty commit")
	}
	if err == nil {
		return commit, nil
	}

	var resolutionErr *entities.ResolutionError
	if errors.As(err, &resolutionErr) {
		return "", err
	}
	return "", &entities.ResolutionError{
		Project: project.Name,
		Path:    project.Path,
		Ref:     ref,
		Err:     err,
	}
}
