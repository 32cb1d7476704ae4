package entities

// Project is a single entry of a west manifest, with its URL, revision and
// path already resolved against the manifest defaults and remotes.
type Project struct {
	Name     string // west project name, used in diagnostics
	Path     string // checkout directory relative to the workspace topdir
	URL      string // fetch URL (may be empty, passed through as-is)
	Revision string // commit hash, tag or branch recorded in the manifest
	AbsPath  string // absolute checkout directory on disk
}

// ManifestSource tells the manifest repository where to find the manifest.
// Both fields are optional: an empty File triggers workspace discovery
// starting at Topdir (or the working directory when Topdir is empty too).
type ManifestSource struct {
	Topdir string
	File   string
}
