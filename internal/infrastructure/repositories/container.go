package repositories

import (
	bobRepo "github.com/rios0rios0/bobcheckout/internal/infrastructure/repositories/bob"
	revisionRepo "github.com/rios0rios0/bobcheckout/internal/infrastructure/repositories/revision"
	westRepo "github.com/rios0rios0/bobcheckout/internal/infrastructure/repositories/west"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(westRepo.NewWestManifestRepository); err != nil {
		return err
	}

	// Register revision registry with all resolver implementations
	if err := container.Provide(func() *RevisionRegistry {
		reg := NewRevisionRegistry()
		reg.Register(revisionRepo.NewGoGitRevisionRepository())
		reg.Register(revisionRepo.NewCLIRevisionRepository())
		return reg
	}); err != nil {
		return err
	}

	// Register writer registry with all output formats
	if err := container.Provide(func() *CheckoutWriterRegistry {
		reg := NewCheckoutWriterRegistry()
		reg.Register(bobRepo.NewYAMLCheckoutWriter())
		reg.Register(bobRepo.NewJSONCheckoutWriter())
		return reg
	}); err != nil {
		return err
	}

	return nil
}
