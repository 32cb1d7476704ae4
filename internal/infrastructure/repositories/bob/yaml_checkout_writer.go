package bob

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	"github.com/rios0rios0/bobcheckout/internal/domain/repositories"
)

const yamlIndent = 2

// YAMLCheckoutWriter renders the document as block-style YAML, the format
// Bob recipes embed directly.
type YAMLCheckoutWriter struct{}

var _ repositories.CheckoutWriterRepository = (*YAMLCheckoutWriter)(nil)

// NewYAMLCheckoutWriter creates a new YAML writer.
func NewYAMLCheckoutWriter() repositories.CheckoutWriterRepository {
	return &YAMLCheckoutWriter{}
}

// Format returns the format identifier.
func (it *YAMLCheckoutWriter) Format() string { return entities.FormatYAML }

// Write encodes the document with two-space indentation.
func (it *YAMLCheckoutWriter) Write(w io.Writer, document *entities.CheckoutDocument) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(normalize(document)); err != nil {
		_ = encoder.Close()
		return err
	}
	return encoder.Close()
}

// normalize guarantees checkoutSCM is rendered as an empty list, never null.
func normalize(document *entities.CheckoutDocument) *entities.CheckoutDocument {
	if document == nil {
		return entities.NewCheckoutDocument(0)
	}
	if document.CheckoutSCM == nil {
		return &entities.CheckoutDocument{CheckoutSCM: []entities.CheckoutEntry{}}
	}
	return document
}
