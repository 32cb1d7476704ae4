//go:build unit

package west_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	"github.com/rios0rios0/bobcheckout/internal/infrastructure/repositories/west"
)

const zephyrManifest = `
manifest:
  version: "0.13"
  defaults:
    remote: upstream
  remotes:
    - name: upstream
      url-base: https://github.com/zephyrproject-rtos/
    - name: babblesim
      url-base: https://github.com/BabbleSim
  group-filter: [-babblesim]
  projects:
    - name: cmsis
      revision: 4b96cbb174678dcd3ca86e11e1f24bc5f8726da0
      path: modules/hal/cmsis
      groups:
        - hal
    - name: babblesim_base
      remote: babblesim
      repo-path: base
      path: tools/bsim/components
      revision: 19d62424c0802c6c9fc15528febe666e40f372a1
    - name: net-tools
      revision: main
      path: tools/net-tools
    - name: hal_nordic
      url: https://example.com/mirrors/hal_nordic.git
      revision: v3.2.0
  self:
    path: zephyr
    west-commands: scripts/west-commands.yml
`

// newWorkspace lays out <topdir>/.west/config and <topdir>/<repo>/west.yml.
func newWorkspace(t *testing.T, repo, manifest string) string {
	t.Helper()

	topdir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(topdir, ".west"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(topdir, repo), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(topdir, ".west", "config"),
		[]byte("[manifest]\n\tpath = "+repo+"\n\tfile = west.yml\n[zephyr]\n\tbase = zephyr\n"),
		0o600,
	))
	require.NoError(t, os.WriteFile(filepath.Join(topdir, repo, "west.yml"), []byte(manifest), 0o600))
	return topdir
}

func TestWestManifestRepositoryLoad(t *testing.T) {
	t.Parallel()

	t.Run("should list the manifest repository first, then every project in order", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "zephyr", zephyrManifest)
		repository := west.NewWestManifestRepository()

		// when
		projects, err := repository.Load(context.Background(), entities.ManifestSource{Topdir: topdir})

		// then
		require.NoError(t, err)
		require.Len(t, projects, 5)
		assert.Equal(t, entities.Project{
			Name:     "manifest",
			Path:     "zephyr",
			URL:      "",
			Revision: "HEAD",
			AbsPath:  filepath.Join(topdir, "zephyr"),
		}, projects[0])
		assert.Equal(t, entities.Project{
			Name:     "cmsis",
			Path:     "modules/hal/cmsis",
			URL:      "https://github.com/zephyrproject-rtos/cmsis",
			Revision: "4b96cbb174678dcd3ca86e11e1f24bc5f8726da0",
			AbsPath:  filepath.Join(topdir, "modules", "hal", "cmsis"),
		}, projects[1])
		assert.Equal(t, "https://github.com/BabbleSim/base", projects[2].URL)
		assert.Equal(t, "tools/bsim/components", projects[2].Path)
		assert.Equal(t, "main", projects[3].Revision)
		assert.Equal(t, "https://example.com/mirrors/hal_nordic.git", projects[4].URL)
		assert.Equal(t, "hal_nordic", projects[4].Path)
	})

	t.Run("should discover the workspace from a nested working directory", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "zephyr", zephyrManifest)
		nested := filepath.Join(topdir, "zephyr", "samples", "hello_world")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		repository := west.NewWestManifestRepositoryFromDir(nested)

		// when
		projects, err := repository.Load(context.Background(), entities.ManifestSource{})

		// then
		require.NoError(t, err)
		require.Len(t, projects, 5)
		assert.Equal(t, filepath.Join(topdir, "zephyr"), projects[0].AbsPath)
	})

	t.Run("should default revision to master and path to name", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "app", `
manifest:
  remotes:
    - name: origin
      url-base: https://example.com
  projects:
    - name: lib
      remote: origin
`)
		repository := west.NewWestManifestRepository()

		// when
		projects, err := repository.Load(context.Background(), entities.ManifestSource{Topdir: topdir})

		// then
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "app", projects[0].Path)
		assert.Equal(t, entities.Project{
			Name:     "lib",
			Path:     "lib",
			URL:      "https://example.com/lib",
			Revision: "master",
			AbsPath:  filepath.Join(topdir, "lib"),
		}, projects[1])
	})

	t.Run("should use the defaults revision", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "app", `
manifest:
  defaults:
    revision: v1.0.0
  projects:
    - name: lib
      url: https://example.com/lib.git
`)
		repository := west.NewWestManifestRepository()

		// when
		projects, err := repository.Load(context.Background(), entities.ManifestSource{Topdir: topdir})

		// then
		require.NoError(t, err)
		assert.Equal(t, "v1.0.0", projects[1].Revision)
	})

	t.Run("should leave the URL empty when no remote applies", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "app", `
manifest:
  projects:
    - name: orphan
`)
		repository := west.NewWestManifestRepository()

		// when
		projects, err := repository.Load(context.Background(), entities.ManifestSource{Topdir: topdir})

		// then
		require.NoError(t, err)
		assert.Empty(t, projects[1].URL)
	})

	t.Run("should load an explicit manifest file", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := t.TempDir()
		manifestPath := filepath.Join(topdir, "zephyr", "west.yml")
		require.NoError(t, os.MkdirAll(filepath.Dir(manifestPath), 0o755))
		require.NoError(t, os.WriteFile(manifestPath, []byte(zephyrManifest), 0o600))
		repository := west.NewWestManifestRepository()

		// when
		projects, err := repository.Load(context.Background(), entities.ManifestSource{File: manifestPath})

		// then
		require.NoError(t, err)
		require.Len(t, projects, 5)
		assert.Equal(t, "zephyr", projects[0].Path)
		assert.Equal(t, filepath.Join(topdir, "zephyr"), projects[0].AbsPath)
		assert.Equal(t, filepath.Join(topdir, "modules", "hal", "cmsis"), projects[1].AbsPath)
	})

	t.Run("should name the manifest project after its directory without self.path", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := t.TempDir()
		manifestPath := filepath.Join(topdir, "my-manifest", "west.yml")
		require.NoError(t, os.MkdirAll(filepath.Dir(manifestPath), 0o755))
		require.NoError(t, os.WriteFile(manifestPath, []byte("manifest:\n  projects: []\n"), 0o600))
		repository := west.NewWestManifestRepository()

		// when
		projects, err := repository.Load(context.Background(), entities.ManifestSource{File: manifestPath})

		// then
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "my-manifest", projects[0].Path)
	})

	t.Run("should fail outside a west workspace", func(t *testing.T) {
		t.Parallel()

		// given
		repository := west.NewWestManifestRepositoryFromDir(t.TempDir())

		// when
		projects, err := repository.Load(context.Background(), entities.ManifestSource{})

		// then
		require.Error(t, err)
		assert.Nil(t, projects)
		assert.ErrorIs(t, err, entities.ErrTopdirNotFound)
	})

	t.Run("should fail when the manifest file is missing", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "zephyr", zephyrManifest)
		require.NoError(t, os.Remove(filepath.Join(topdir, "zephyr", "west.yml")))
		repository := west.NewWestManifestRepository()

		// when
		_, err := repository.Load(context.Background(), entities.ManifestSource{Topdir: topdir})

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrManifestNotFound)
	})

	t.Run("should fail when the west config has no manifest path", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "zephyr", zephyrManifest)
		require.NoError(t, os.WriteFile(filepath.Join(topdir, ".west", "config"), []byte("[zephyr]\n\tbase = zephyr\n"), 0o600))
		repository := west.NewWestManifestRepository()

		// when
		_, err := repository.Load(context.Background(), entities.ManifestSource{Topdir: topdir})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "manifest.path is not set")
	})

	t.Run("should fail for an unknown remote", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "app", `
manifest:
  projects:
    - name: lib
      remote: nowhere
`)
		repository := west.NewWestManifestRepository()

		// when
		_, err := repository.Load(context.Background(), entities.ManifestSource{Topdir: topdir})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `projects[0]: project "lib" uses unknown remote "nowhere"`)
	})

	t.Run("should fail when a project sets both url and remote", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "app", `
manifest:
  remotes:
    - name: origin
      url-base: https://example.com
  projects:
    - name: lib
      remote: origin
      url: https://example.com/lib.git
`)
		repository := west.NewWestManifestRepository()

		// when
		_, err := repository.Load(context.Background(), entities.ManifestSource{Topdir: topdir})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sets both url and remote")
	})

	t.Run("should fail for a project without a name", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "app", `
manifest:
  projects:
    - path: somewhere
`)
		repository := west.NewWestManifestRepository()

		// when
		_, err := repository.Load(context.Background(), entities.ManifestSource{Topdir: topdir})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("should fail for malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "app", "manifest: [")
		repository := west.NewWestManifestRepository()

		// when
		_, err := repository.Load(context.Background(), entities.ManifestSource{Topdir: topdir})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse manifest")
	})

	t.Run("should keep projects that import other manifests without following them", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "app", `
manifest:
  projects:
    - name: zephyr
      url: https://github.com/zephyrproject-rtos/zephyr
      revision: v3.6.0
      import: true
`)
		repository := west.NewWestManifestRepository()

		// when
		projects, err := repository.Load(context.Background(), entities.ManifestSource{Topdir: topdir})

		// then
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "zephyr", projects[1].Path)
		assert.Equal(t, "v3.6.0", projects[1].Revision)
	})

	t.Run("should stop on a cancelled context", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "zephyr", zephyrManifest)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		repository := west.NewWestManifestRepository()

		// when
		_, err := repository.Load(ctx, entities.ManifestSource{Topdir: topdir})

		// then
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestFindTopdir(t *testing.T) {
	t.Parallel()

	t.Run("should return the start directory when it holds .west", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := newWorkspace(t, "zephyr", zephyrManifest)

		// when
		found, err := west.FindTopdir(topdir)

		// then
		require.NoError(t, err)
		assert.Equal(t, topdir, found)
	})

	t.Run("should skip a .west file that is not a directory", func(t *testing.T) {
		t.Parallel()

		// given
		topdir := t.TempDir()
		nested := filepath.Join(topdir, "app")
		require.NoError(t, os.MkdirAll(filepath.Join(topdir, ".west"), 0o755))
		require.NoError(t, os.MkdirAll(nested, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(nested, ".west"), []byte(""), 0o600))

		// when
		found, err := west.FindTopdir(nested)

		// then
		require.NoError(t, err)
		assert.Equal(t, topdir, found)
	})
}
