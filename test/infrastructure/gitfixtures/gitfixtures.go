//go:build integration || unit || test

package gitfixtures //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// InitRepository creates a git repository in dir with a single commit and
// returns the hash HEAD points to.
func InitRepository(t *testing.T, dir string) string {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	return Commit(t, repo, dir, "initial commit")
}

// Commit writes a file named after the message and commits it, returning the new hash.
func Commit(t *testing.T, repo *git.Repository, dir, message string) string {
	t.Helper()

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	name := filepath.Base(dir) + "-" + time.Now().Format("150405.000000000") + ".txt"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(message+"\n"), 0o600))

	_, err = worktree.Add(name)
	require.NoError(t, err)

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return hash.String()
}
