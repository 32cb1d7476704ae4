package main

import (
	"fmt"

	"github.com/rios0rios0/bobcheckout/internal"
	"go.uber.org/dig"
)

// injectAppContext builds the DIG container and resolves the application root.
func injectAppContext() (*internal.AppInternal, error) {
	container := dig.New()
	if err := internal.RegisterProviders(container); err != nil {
		return nil, fmt.Errorf("failed to register providers: %w", err)
	}

	var appInternal *internal.AppInternal
	if err := container.Invoke(func(app *internal.AppInternal) {
		appInternal = app
	}); err != nil {
		return nil, fmt.Errorf("failed to build application context: %w", err)
	}

	return appInternal, nil
}
