package bob

import (
	"encoding/json"
	"io"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	"github.com/rios0rios0/bobcheckout/internal/domain/repositories"
)

// JSONCheckoutWriter renders the document as indented JSON.
type JSONCheckoutWriter struct{}

var _ repositories.CheckoutWriterRepository = (*JSONCheckoutWriter)(nil)

// NewJSONCheckoutWriter creates a new JSON writer.
func NewJSONCheckoutWriter() repositories.CheckoutWriterRepository {
	return &JSONCheckoutWriter{}
}

// Format returns the format identifier.
func (it *JSONCheckoutWriter) Format() string { return entities.FormatJSON }

// Write encodes the document followed by a newline.
func (it *JSONCheckoutWriter) Write(w io.Writer, document *entities.CheckoutDocument) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(normalize(document))
}
