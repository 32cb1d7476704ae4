//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
	"github.com/rios0rios0/bobcheckout/internal/domain/repositories"
)

// SpyCheckoutWriterRepository implements repositories.CheckoutWriterRepository as a spy.
// It writes Payload (if any) before returning WriteErr, so tests can check
// that partial output never reaches the real sink.
type SpyCheckoutWriterRepository struct {
	// --- identity ---
	FormatName string

	// --- Write ---
	Payload   string
	WriteErr  error
	Documents []*entities.CheckoutDocument
}

var _ repositories.CheckoutWriterRepository = (*SpyCheckoutWriterRepository)(nil)

func (s *SpyCheckoutWriterRepository) Format() string {
	if s.FormatName == "" {
		return entities.FormatYAML
	}
	return s.FormatName
}

func (s *SpyCheckoutWriterRepository) Write(w io.Writer, document *entities.CheckoutDocument) error {
	s.Documents = append(s.Documents, document)
	if s.Payload != "" {
		if _, err := io.WriteString(w, s.Payload); err != nil {
			return err
		}
	}
	return s.WriteErr
}
