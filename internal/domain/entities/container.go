package entities

import (
	"go.uber.org/dig"
)

// ConfigLocator returns the path of the config file to load, or an error when
// there is none.
type ConfigLocator func() (string, error)

// RegisterProviders registers all entity providers with the DIG container.
// Settings themselves depend on the --config flag, so controllers load them
// per invocation through the ConfigLocator.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() ConfigLocator {
		return FindConfigFile
	})
}
