package west

import (
	"fmt"
	"os"
	"path/filepath"

	gitconfig "github.com/go-git/go-git/v5/plumbing/format/config"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
)

const (
	westDirName         = ".west"
	westConfigName      = "config"
	defaultManifestFile = "west.yml"
)

// workspaceConfig is the manifest section of .west/config.
type workspaceConfig struct {
	ManifestPath string
	ManifestFile string
}

// findTopdir walks up from start to the first directory holding a .west directory.
func findTopdir(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	for {
		info, statErr := os.Stat(filepath.Join(dir, westDirName))
		if statErr == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: searched upwards from %s", entities.ErrTopdirNotFound, start)
		}
		dir = parent
	}
}

// readWorkspaceConfig parses <topdir>/.west/config, which uses git-config syntax:
//
//	[manifest]
//		path = zephyr
//		file = west.yml
func readWorkspaceConfig(topdir string) (*workspaceConfig, error) {
	path := filepath.Join(topdir, westDirName, westConfigName)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open west config %q: %w", path, err)
	}
	defer file.Close()

	raw := gitconfig.New()
	if decodeErr := gitconfig.NewDecoder(file).Decode(raw); decodeErr != nil {
		return nil, fmt.Errorf("failed to parse west config %q: %w", path, decodeErr)
	}

	section := raw.Section("manifest")
	cfg := &workspaceConfig{
		ManifestPath: section.Option("path"),
		ManifestFile: section.Option("file"),
	}
	if cfg.ManifestPath == "" {
		return nil, fmt.Errorf("manifest.path is not set in %s", path)
	}
	if cfg.ManifestFile == "" {
		cfg.ManifestFile = defaultManifestFile
	}

	return cfg, nil
}
