package controllers

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bobcheckout/internal/domain/commands"
	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
)

// GenBobCheckoutController handles the "gen-bob-checkout" subcommand.
type GenBobCheckoutController struct {
	command    commands.GenBobCheckout
	output     io.Writer
	findConfig entities.ConfigLocator
}

// NewGenBobCheckoutController creates a new GenBobCheckoutController writing to stdout.
func NewGenBobCheckoutController(
	command commands.GenBobCheckout,
	findConfig entities.ConfigLocator,
) *GenBobCheckoutController {
	return &GenBobCheckoutController{
		command:    command,
		output:     os.Stdout,
		findConfig: findConfig,
	}
}

// GetBind returns the Cobra command metadata for the gen-bob-checkout controller.
func (it *GenBobCheckoutController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "gen-bob-checkout",
		Short: "convert west.yml to bob format",
		Long: `Convert the manifest contents into a checkoutSCM
map suitable for Bob the Builder.`,
	}
}

// AddFlags adds the gen-bob-checkout flags to the given Cobra command.
func (it *GenBobCheckoutController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("manifest", "", "Path to the west manifest (default: from the workspace .west/config)")
	cmd.Flags().String("topdir", "", "West workspace directory (default: search upwards from the current directory)")
	cmd.Flags().String("resolver", "",
		fmt.Sprintf("How to resolve the upstream revision (%s)",
			strings.Join([]string{entities.ResolverGoGit, entities.ResolverGitCLI}, ", ")),
	)
	cmd.Flags().String("format", "",
		fmt.Sprintf("Output format (%s)", strings.Join([]string{entities.FormatYAML, entities.FormatJSON}, ", ")),
	)
}

// Execute converts the active manifest and prints the document.
func (it *GenBobCheckoutController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := it.loadSettings(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	if runErr := it.command.Execute(ctx, settings, commands.GenBobCheckoutOptions{
		Output:  it.output,
		Verbose: verbose,
	}); runErr != nil {
		return fmt.Errorf("gen-bob-checkout failed: %w", runErr)
	}
	return nil
}

// loadSettings reads the config file (explicit, discovered, or none) and
// applies command-line overrides on top of it.
func (it *GenBobCheckoutController) loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	settings := entities.DefaultSettings()
	if configPath == "" {
		if found, findErr := it.findConfig(); findErr == nil {
			configPath = found
		} else {
			logger.Debugf("No config file found, using defaults: %v", findErr)
		}
	}

	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)

		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	if manifest, _ := cmd.Flags().GetString("manifest"); manifest != "" {
		settings.Manifest.File = manifest
	}
	if topdir, _ := cmd.Flags().GetString("topdir"); topdir != "" {
		settings.Manifest.Topdir = topdir
	}
	if resolver, _ := cmd.Flags().GetString("resolver"); resolver != "" {
		settings.Resolver = resolver
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		settings.Output.Format = format
	}

	return settings, nil
}
