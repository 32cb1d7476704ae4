package west

// manifestFile is the root of a west.yml file.
type manifestFile struct {
	Manifest manifestBody `yaml:"manifest"`
}

type manifestBody struct {
	Defaults manifestDefaults  `yaml:"defaults"`
	Remotes  []manifestRemote  `yaml:"remotes"`
	Projects []manifestProject `yaml:"projects"`
	Self     manifestSelf      `yaml:"self"`
}

type manifestDefaults struct {
	Remote   string `yaml:"remote"`
	Revision string `yaml:"revision"`
}

type manifestRemote struct {
	Name    string `yaml:"name"`
	URLBase string `yaml:"url-base"`
}

type manifestProject struct {
	Name     string `yaml:"name"`
	Remote   string `yaml:"remote"`
	RepoPath string `yaml:"repo-path"`
	URL      string `yaml:"url"`
	Revision string `yaml:"revision"`
	Path     string `yaml:"path"`
	Import   any    `yaml:"import"`
}

type manifestSelf struct {
	Path   string `yaml:"path"`
	Import any    `yaml:"import"`
}

// hasImport reports whether an "import:" value asks west to pull in other
// manifests. "import: false" is the only explicit opt-out.
func hasImport(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}
