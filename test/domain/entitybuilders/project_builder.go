//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ProjectBuilder helps create test projects with a fluent interface.
type ProjectBuilder struct {
	*testkit.BaseBuilder
	name     string
	path     string
	url      string
	revision string
	absPath  string
}

// NewProjectBuilder creates a new project builder with sensible defaults.
func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-project",
		path:        "modules/test-project",
		url:         "https://example.com/test-project.git",
		revision:    "0123456789abcdef0123456789abcdef01234567",
		absPath:     "/workspace/modules/test-project",
	}
}

// WithName sets the project name.
func (b *ProjectBuilder) WithName(name string) *ProjectBuilder {
	b.name = name
	return b
}

// WithPath sets the checkout path relative to the workspace.
func (b *ProjectBuilder) WithPath(path string) *ProjectBuilder {
	b.path = path
	return b
}

// WithURL sets the fetch URL.
func (b *ProjectBuilder) WithURL(url string) *ProjectBuilder {
	b.url = url
	return b
}

// WithRevision sets the manifest revision.
func (b *ProjectBuilder) WithRevision(revision string) *ProjectBuilder {
	b.revision = revision
	return b
}

// WithAbsPath sets the absolute checkout path.
func (b *ProjectBuilder) WithAbsPath(absPath string) *ProjectBuilder {
	b.absPath = absPath
	return b
}

// Build creates the project (satisfies testkit.Builder interface).
func (b *ProjectBuilder) Build() interface{} {
	return b.BuildProject()
}

// BuildProject creates the project with a concrete return type.
func (b *ProjectBuilder) BuildProject() entities.Project {
	return entities.Project{
		Name:     b.name,
		Path:     b.path,
		URL:      b.url,
		Revision: b.revision,
		AbsPath:  b.absPath,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ProjectBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-project"
	b.path = "modules/test-project"
	b.url = "https://example.com/test-project.git"
	b.revision = "0123456789abcdef0123456789abcdef01234567"
	b.absPath = "/workspace/modules/test-project"
	return b
}

// Clone creates a deep copy of the ProjectBuilder.
func (b *ProjectBuilder) Clone() testkit.Builder {
	return &ProjectBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		path:        b.path,
		url:         b.url,
		revision:    b.revision,
		absPath:     b.absPath,
	}
}
