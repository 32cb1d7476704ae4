package controllers

import (
	"io"

	"github.com/rios0rios0/bobcheckout/internal/domain/commands"
	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
)

// NewGenBobCheckoutControllerForTest builds a controller writing to output
// instead of stdout.
func NewGenBobCheckoutControllerForTest(
	command commands.GenBobCheckout,
	output io.Writer,
	findConfig entities.ConfigLocator,
) *GenBobCheckoutController {
	return &GenBobCheckoutController{
		command:    command,
		output:     output,
		findConfig: findConfig,
	}
}
