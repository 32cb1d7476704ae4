package west

import "github.com/rios0rios0/bobcheckout/internal/domain/repositories"

// NewWestManifestRepositoryFromDir creates a repository that discovers the
// workspace from dir instead of the process working directory.
func NewWestManifestRepositoryFromDir(dir string) repositories.ManifestRepository {
	return &WestManifestRepository{workDir: func() (string, error) { return dir, nil }}
}

// FindTopdir exports findTopdir for testing.
var FindTopdir = findTopdir //nolint:gochecknoglobals // test export
