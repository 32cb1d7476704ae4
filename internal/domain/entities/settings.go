package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drone/envsubst"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// ResolverGoGit resolves revisions in-process with go-git.
	ResolverGoGit = "gogit"
	// ResolverGitCLI resolves revisions by running the git binary.
	ResolverGitCLI = "git"

	// FormatYAML renders the checkout document as block-style YAML.
	FormatYAML = "yaml"
	// FormatJSON renders the checkout document as indented JSON.
	FormatJSON = "json"
)

// Settings is the top-level configuration for bobcheckout.
type Settings struct {
	Manifest ManifestSettings `yaml:"manifest"`
	Upstream UpstreamSettings `yaml:"upstream"`
	Resolver string           `yaml:"resolver"` // "gogit" or "git"
	Output   OutputSettings   `yaml:"output"`
}

// ManifestSettings says where the west manifest lives.
type ManifestSettings struct {
	Topdir string `yaml:"topdir"` // west workspace; auto-detected when empty
	File   string `yaml:"file"`   // explicit manifest path; wins over topdir discovery
}

// UpstreamSettings configures the primary upstream project override.
type UpstreamSettings struct {
	Path string `yaml:"path"`
	URL  string `yaml:"url"`
	Ref  string `yaml:"ref"`
}

// OutputSettings configures how the document is rendered.
type OutputSettings struct {
	Format string `yaml:"format"` // "yaml" or "json"
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	settings := &Settings{}
	applyDefaults(settings)
	return settings
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and filling in defaults for everything left out.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	// Defaults go first so that a reference to an unset variable surfaces
	// as a validation error instead of silently falling back.
	applyDefaults(&settings)

	settings.Manifest.Topdir = expandEnv(settings.Manifest.Topdir)
	settings.Manifest.File = expandEnv(settings.Manifest.File)
	settings.Upstream.Path = expandEnv(settings.Upstream.Path)
	settings.Upstream.URL = expandEnv(settings.Upstream.URL)
	settings.Upstream.Ref = expandEnv(settings.Upstream.Ref)

	if validateErr := validateSettings(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// UpstreamRule builds the override rule described by the settings.
func (it *Settings) UpstreamRule() UpstreamRule {
	return UpstreamRule{
		Path: it.Upstream.Path,
		URL:  it.Upstream.URL,
		Ref:  it.Upstream.Ref,
	}
}

// ManifestSource builds the manifest lookup described by the settings.
func (it *Settings) ManifestSource() ManifestSource {
	return ManifestSource{
		Topdir: it.Manifest.Topdir,
		File:   it.Manifest.File,
	}
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".bobcheckout.yaml",
		".bobcheckout.yml",
		"bobcheckout.yaml",
		"bobcheckout.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv replaces ${ENV_VAR} references with their values. ${ENV_VAR:-fallback}
// and the other shell forms are honoured. A value that does not parse is
// returned unchanged.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	expanded, err := envsubst.Eval(raw, func(varName string) string {
		val := os.Getenv(varName)
		if val == "" {
			logger.Debugf("Environment variable %q is not set", varName)
		}
		return val
	})
	if err != nil {
		logger.Warnf("Cannot expand %q: %v", raw, err)
		return raw
	}
	return expanded
}

func applyDefaults(settings *Settings) {
	if settings.Upstream.Path == "" {
		settings.Upstream.Path = DefaultUpstreamPath
	}
	if settings.Upstream.URL == "" {
		settings.Upstream.URL = DefaultUpstreamURL
	}
	if settings.Upstream.Ref == "" {
		settings.Upstream.Ref = DefaultUpstreamRef
	}
	if settings.Resolver == "" {
		settings.Resolver = ResolverGoGit
	}
	if settings.Output.Format == "" {
		settings.Output.Format = FormatYAML
	}
}

// validateSettings checks for required configuration values.
func validateSettings(settings *Settings) error {
	if settings.Upstream.Path == "" {
		return errors.New("upstream.path is required")
	}
	if settings.Upstream.URL == "" {
		return errors.New("upstream.url is required")
	}
	if settings.Upstream.Ref == "" {
		return errors.New("upstream.ref is required")
	}
	return nil
}
