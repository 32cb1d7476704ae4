package repositories

import (
	"io"

	"github.com/rios0rios0/bobcheckout/internal/domain/entities"
)

// CheckoutWriterRepository renders a checkout document in one output format.
type CheckoutWriterRepository interface {
	// Format returns the format identifier (e.g. "yaml", "json").
	Format() string

	// Write serializes the whole document to w.
	Write(w io.Writer, document *entities.CheckoutDocument) error
}
