package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	"github.com/rios0rios0/bobcheckout/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/bobcheckout/internal/infrastructure/repositories"
)

// GenBobCheckout is the interface for the gen-bob-checkout command.
type GenBobCheckout interface {
	Execute(ctx context.Context, settings *entities.Settings, opts GenBobCheckoutOptions) error
}

// GenBobCheckoutOptions holds runtime options for a single conversion.
type GenBobCheckoutOptions struct {
	Output  io.Writer
	Verbose bool
}

// GenBobCheckoutCommand converts the active west manifest into a Bob
// checkoutSCM document.
type GenBobCheckoutCommand struct {
	manifestRepository repositories.ManifestRepository
	revisionRegistry   *infraRepos.RevisionRegistry
	writerRegistry     *infraRepos.CheckoutWriterRegistry
}

// NewGenBobCheckoutCommand creates a new GenBobCheckoutCommand.
func NewGenBobCheckoutCommand(
	manifestRepository repositories.ManifestRepository,
	revisionRegistry *infraRepos.RevisionRegistry,
	writerRegistry *infraRepos.CheckoutWriterRegistry,
) *GenBobCheckoutCommand {
	return &GenBobCheckoutCommand{
		manifestRepository: manifestRepository,
		revisionRegistry:   revisionRegistry,
		writerRegistry:     writerRegistry,
	}
}

// Execute loads the manifest, converts it and writes the rendered document to
// opts.Output. Nothing is written unless the whole document rendered.
func (it *GenBobCheckoutCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts GenBobCheckoutOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	writer, err := it.writerRegistry.Get(settings.Output.Format)
	if err != nil {
		return err
	}
	resolver, err := it.revisionRegistry.Get(settings.Resolver)
	if err != nil {
		return err
	}

	projects, err := it.manifestRepository.Load(ctx, settings.ManifestSource())
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	logger.Debugf("Loaded %d projects from manifest", len(projects))

	document, err := BuildCheckoutDocument(ctx, projects, resolver, settings.UpstreamRule())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if writeErr := writer.Write(&buf, document); writeErr != nil {
		return fmt.Errorf("failed to render %s document: %w", writer.Format(), writeErr)
	}

	if _, copyErr := io.Copy(opts.Output, &buf); copyErr != nil {
		return fmt.Errorf("failed to write output: %w", copyErr)
	}

	logger.Debugf("Wrote %d checkout entries as %s", len(document.CheckoutSCM), writer.Format())
	return nil
}
