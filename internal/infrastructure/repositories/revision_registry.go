package repositories

import (
	"fmt"
	"sort"
	"strings"

	domainRepos "github.com/rios0rios0/bobcheckout/internal/domain/repositories"
)

// RevisionRegistry manages all registered revision resolver implementations.
type RevisionRegistry struct {
	resolvers map[string]domainRepos.RevisionRepository
}

// NewRevisionRegistry creates an empty revision registry.
func NewRevisionRegistry() *RevisionRegistry {
	return &RevisionRegistry{
		resolvers: make(map[string]domainRepos.RevisionRepository),
	}
}

// Register adds a resolver under its name.
func (r *RevisionRegistry) Register(resolver domainRepos.RevisionRepository) {
	r.resolvers[resolver.Name()] = resolver
}

// Get returns the resolver registered under name.
func (r *RevisionRegistry) Get(name string) (domainRepos.RevisionRepository, error) {
	resolver, ok := r.resolvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown resolver: %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return resolver, nil
}

// Names returns the sorted list of registered resolver names.
func (r *RevisionRegistry) Names() []string {
	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
