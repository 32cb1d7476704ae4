//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bobcheckout/internal/domain/commands"
	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
)

// StubGenBobCheckoutCommand is a stub implementation of commands.GenBobCheckout.
type StubGenBobCheckoutCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.GenBobCheckoutOptions
}

var _ commands.GenBobCheckout = (*StubGenBobCheckoutCommand)(nil)

func (s *StubGenBobCheckoutCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.GenBobCheckoutOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
