package west

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	"github.com/rios0rios0/bobcheckout/internal/domain/repositories"
)

const (
	// manifestProjectName is the name west gives the manifest repository itself.
	manifestProjectName = "manifest"
	// manifestProjectRevision is the revision west reports for the manifest repository.
	manifestProjectRevision = "HEAD"
	// defaultRevision is used when neither the project nor the defaults set one.
	defaultRevision = "master"
)

// WestManifestRepository reads projects from a west workspace manifest.
type WestManifestRepository struct {
	workDir func() (string, error)
}

var _ repositories.ManifestRepository = (*WestManifestRepository)(nil)

// NewWestManifestRepository creates a manifest repository that discovers the
// workspace from the process working directory.
func NewWestManifestRepository() repositories.ManifestRepository {
	return &WestManifestRepository{workDir: os.Getwd}
}

// location is where the manifest was found within the workspace.
type location struct {
	topdir       string
	manifestPath string // absolute path to the manifest file
	repoPath     string // manifest repository directory, relative to topdir
}

// Load returns the manifest repository followed by every project of the
// manifest, in manifest order, the way west lists them.
func (it *WestManifestRepository) Load(
	ctx context.Context,
	source entities.ManifestSource,
) ([]entities.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loc, err := it.locate(source)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Using manifest %s (topdir %s)", loc.manifestPath, loc.topdir)

	data, err := os.ReadFile(loc.manifestPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entities.ErrManifestNotFound, loc.manifestPath)
		}
		return nil, fmt.Errorf("failed to read manifest %q: %w", loc.manifestPath, err)
	}

	var file manifestFile
	if unmarshalErr := yaml.Unmarshal(data, &file); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse manifest %q: %w", loc.manifestPath, unmarshalErr)
	}

	return buildProjects(file.Manifest, loc)
}

// locate finds the manifest file and workspace topdir for the given source.
func (it *WestManifestRepository) locate(source entities.ManifestSource) (*location, error) {
	if source.File != "" {
		return locateExplicit(source)
	}

	start := source.Topdir
	if start == "" {
		cwd, err := it.workDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		start = cwd
	}

	topdir, err := findTopdir(start)
	if err != nil {
		return nil, err
	}

	cfg, err := readWorkspaceConfig(topdir)
	if err != nil {
		return nil, err
	}

	return &location{
		topdir:       topdir,
		manifestPath: filepath.Join(topdir, filepath.FromSlash(cfg.ManifestPath), cfg.ManifestFile),
		repoPath:     filepath.ToSlash(filepath.Clean(cfg.ManifestPath)),
	}, nil
}

// locateExplicit handles a manifest file given on the command line. Unless a
// topdir is given too, the workspace is the parent of the manifest repository.
func locateExplicit(source entities.ManifestSource) (*location, error) {
	manifestPath, err := filepath.Abs(source.File)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest path: %w", err)
	}
	repoDir := filepath.Dir(manifestPath)

	topdir := filepath.Dir(repoDir)
	if source.Topdir != "" {
		if topdir, err = filepath.Abs(source.Topdir); err != nil {
			return nil, fmt.Errorf("invalid topdir: %w", err)
		}
	}

	repoPath, err := filepath.Rel(topdir, repoDir)
	if err != nil {
		return nil, fmt.Errorf("manifest %s is not inside topdir %s: %w", manifestPath, topdir, err)
	}

	return &location{
		topdir:       topdir,
		manifestPath: manifestPath,
		repoPath:     filepath.ToSlash(repoPath),
	}, nil
}

// buildProjects resolves every manifest entry against remotes and defaults.
func buildProjects(body manifestBody, loc *location) ([]entities.Project, error) {
	remotes := make(map[string]string, len(body.Remotes))
	for _, remote := range body.Remotes {
		remotes[remote.Name] = remote.URLBase
	}

	selfPath := body.Self.Path
	if selfPath == "" {
		selfPath = loc.repoPath
	}
	if hasImport(body.Self.Import) {
		logger.Warnf("Manifest imports are not followed (self: import)")
	}

	projects := make([]entities.Project, 0, len(body.Projects)+1)
	projects = append(projects, entities.Project{
		Name:     manifestProjectName,
		Path:     selfPath,
		URL:      "",
		Revision: manifestProjectRevision,
		AbsPath:  filepath.Join(loc.topdir, filepath.FromSlash(selfPath)),
	})

	for i, raw := range body.Projects {
		project, err := resolveProject(raw, body.Defaults, remotes)
		if err != nil {
			return nil, fmt.Errorf("projects[%d]: %w", i, err)
		}
		if hasImport(raw.Import) {
			logger.Warnf("Manifest imports are not followed (project %q)", raw.Name)
		}
		project.AbsPath = filepath.Join(loc.topdir, filepath.FromSlash(project.Path))
		projects = append(projects, project)
	}

	return projects, nil
}

// resolveProject applies west's rules for url, revision and path.
func resolveProject(
	raw manifestProject,
	defaults manifestDefaults,
	remotes map[string]string,
) (entities.Project, error) {
	if raw.Name == "" {
		return entities.Project{}, errors.New("name is required")
	}
	if raw.URL != "" && raw.Remote != "" {
		return entities.Project{}, fmt.Errorf("project %q sets both url and remote", raw.Name)
	}

	url, err := projectURL(raw, defaults, remotes)
	if err != nil {
		return entities.Project{}, err
	}

	revision := raw.Revision
	if revision == "" {
		revision = defaults.Revision
	}
	if revision == "" {
		revision = defaultRevision
	}

	path := raw.Path
	if path == "" {
		path = raw.Name
	}

	return entities.Project{
		Name:     raw.Name,
		Path:     path,
		URL:      url,
		Revision: revision,
	}, nil
}

func projectURL(raw manifestProject, defaults manifestDefaults, remotes map[string]string) (string, error) {
	if raw.URL != "" {
		return raw.URL, nil
	}

	remoteName := raw.Remote
	if remoteName == "" {
		remoteName = defaults.Remote
	}
	if remoteName == "" {
		logger.Warnf("Project %q has neither url nor remote, leaving its URL empty", raw.Name)
		return "", nil
	}

	urlBase, ok := remotes[remoteName]
	if !ok {
		return "", fmt.Errorf("project %q uses unknown remote %q", raw.Name, remoteName)
	}

	repoPath := raw.RepoPath
	if repoPath == "" {
		repoPath = raw.Name
	}
	return strings.TrimSuffix(urlBase, "/") + "/" + repoPath, nil
}
