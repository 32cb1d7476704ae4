package entities

const (
	// DefaultUpstreamPath is the checkout directory assumed to hold upstream Zephyr.
	DefaultUpstreamPath = "zephyr"
	// DefaultUpstreamURL is the URL forced onto the upstream project.
	DefaultUpstreamURL = "https://github.com/zephyrproject-rtos/zephyr"
	// DefaultUpstreamRef is the symbolic reference resolved for the upstream project.
	DefaultUpstreamRef = "HEAD"
)

// UpstreamRule identifies the primary upstream project and says how its entry
// is overridden.
//
// west does not record where the manifest repository comes from, so the
// project checked out at Path is assumed to be the well-known upstream
// repository, and its meaningful revision is whatever is checked out on disk.
type UpstreamRule struct {
	Path string
	URL  string
	Ref  string
}

// DefaultUpstreamRule returns the rule for upstream Zephyr.
func DefaultUpstreamRule() UpstreamRule {
	return UpstreamRule{
		Path: DefaultUpstreamPath,
		URL:  DefaultUpstreamURL,
		Ref:  DefaultUpstreamRef,
	}
}

// IsPrimaryUpstreamProject reports whether the project is checked out at the
// upstream path. It is evaluated per project, so several projects may match.
func (it UpstreamRule) IsPrimaryUpstreamProject(project Project) bool {
	return project.Path == it.Path
}

// Apply overrides URL and commit of an entry produced for an upstream project.
// commit must be the value resolved for it.Ref.
func (it UpstreamRule) Apply(entry CheckoutEntry, commit string) CheckoutEntry {
	entry.URL = it.URL
	entry.Commit = commit
	return entry
}
