package entities

// CheckoutSCMGit is the only SCM kind emitted in a checkout document.
const CheckoutSCMGit = "git"

// CheckoutEntry describes how Bob checks out one repository.
// Field order matches the rendered key order.
type CheckoutEntry struct {
	SCM    string `json:"scm"    yaml:"scm"`
	URL    string `json:"url"    yaml:"url"`
	Commit string `json:"commit" yaml:"commit"`
	Dir    string `json:"dir"    yaml:"dir"`
}

// CheckoutDocument is the root of a Bob checkoutSCM document.
type CheckoutDocument struct {
	CheckoutSCM []CheckoutEntry `json:"checkoutSCM" yaml:"checkoutSCM"`
}

// NewCheckoutDocument returns a document with a non-nil, empty entry list
// sized for the given number of projects.
func NewCheckoutDocument(capacity int) *CheckoutDocument {
	return &CheckoutDocument{
		CheckoutSCM: make([]CheckoutEntry, 0, capacity),
	}
}

// NewCheckoutEntry maps a project to its default checkout entry.
func NewCheckoutEntry(project Project) CheckoutEntry {
	return CheckoutEntry{
		SCM:    CheckoutSCMGit,
		URL:    project.URL,
		Commit: project.Revision,
		Dir:    project.Path,
	}
}
