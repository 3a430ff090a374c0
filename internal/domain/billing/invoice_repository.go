package billing

import (
	"context"
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice by ID within a panel
	FindByID(ctx context.Context, panelID, id uuid.UUID) (*Invoice, error)

	// FindAll finds all invoices for a panel
	FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]Invoice, error)

	// FindByClient finds all invoices for a client
	FindByClient(ctx context.Context, panelID, clientID uuid.UUID, filter shared.Filter) ([]Invoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error

	// MarkPaid sets status and paid_at with a single update
	MarkPaid(ctx context.Context, panelID, id uuid.UUID, paidAt time.Time) error

	// SetPinned flips the pinned flag
	SetPinned(ctx context.Context, panelID, id uuid.UUID, pinned bool) error

	// Delete deletes an invoice
	Delete(ctx context.Context, panelID, id uuid.UUID) error
}
