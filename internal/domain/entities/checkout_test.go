//go:build unit

package entities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	builders "github.com/rios0rios0/bobcheckout/test/domain/entitybuilders"
)

func TestNewCheckoutEntry(t *testing.T) {
	t.Parallel()

	t.Run("should copy url, revision and path", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectBuilder().
			WithPath("app").
			WithURL("https://example.com/app.git").
			WithRevision("abcd123").
			BuildProject()

		// when
		entry := entities.NewCheckoutEntry(project)

		// then
		assert.Equal(t, "git", entry.SCM)
		assert.Equal(t, "https://example.com/app.git", entry.URL)
		assert.Equal(t, "abcd123", entry.Commit)
		assert.Equal(t, "app", entry.Dir)
	})

	t.Run("should pass empty url and revision through", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectBuilder().WithURL("").WithRevision("").BuildProject()

		// when
		entry := entities.NewCheckoutEntry(project)

		// then
		assert.Empty(t, entry.URL)
		assert.Empty(t, entry.Commit)
	})
}

func TestNewCheckoutDocument(t *testing.T) {
	t.Parallel()

	// given / when
	document := entities.NewCheckoutDocument(0)

	// then
	require.NotNil(t, document.CheckoutSCM)
	assert.Empty(t, document.CheckoutSCM)
}

func TestResolutionError(t *testing.T) {
	t.Parallel()

	t.Run("should name the project and unwrap the cause", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("repository does not exist")
		err := &entities.ResolutionError{Project: "manifest", Path: "zephyr", Ref: "HEAD", Err: cause}

		// when
		msg := err.Error()

		// then
		assert.Contains(t, msg, `"manifest"`)
		assert.Contains(t, msg, `"zephyr"`)
		assert.Contains(t, msg, `"HEAD"`)
		assert.ErrorIs(t, err, cause)
	})
}
