package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrTopdirNotFound is returned when no west workspace encloses the start directory.
	ErrTopdirNotFound = errors.New("no west workspace found (missing .west directory)")

	// ErrManifestNotFound is returned when the manifest file does not exist.
	ErrManifestNotFound = errors.New("manifest file not found")
)

// ResolutionError reports that a symbolic reference could not be resolved
// to a commit for a project.
type ResolutionError struct {
	Project string
	Path    string
	Ref     string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve %q for project %q (path %q): %v", e.Ref, e.Project, e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
