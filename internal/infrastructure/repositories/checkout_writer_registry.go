package repositories

import (
	"fmt"
	"sort"
	"strings"

	domainRepos "github.com/rios0rios0/bobcheckout/internal/domain/repositories"
)

// CheckoutWriterRegistry manages all registered output formats.
type CheckoutWriterRegistry struct {
	writers map[string]domainRepos.CheckoutWriterRepository
}

// NewCheckoutWriterRegistry creates an empty writer registry.
func NewCheckoutWriterRegistry() *CheckoutWriterRegistry {
	return &CheckoutWriterRegistry{
		writers: make(map[string]domainRepos.CheckoutWriterRepository),
	}
}

// Register adds a writer under its format name.
func (r *CheckoutWriterRegistry) Register(writer domainRepos.CheckoutWriterRepository) {
	r.writers[writer.Format()] = writer
}

// Get returns the writer for the given format.
func (r *CheckoutWriterRegistry) Get(format string) (domainRepos.CheckoutWriterRepository, error) {
	writer, ok := r.writers[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %q (available: %s)", format, strings.Join(r.Formats(), ", "))
	}
	return writer, nil
}

// Formats returns the sorted list of registered format names.
func (r *CheckoutWriterRegistry) Formats() []string {
	formats := make([]string, 0, len(r.writers))
	for format := range r.writers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
