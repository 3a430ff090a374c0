package panel

import (
	"context"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionRepository defines the interface for commission persistence
type CommissionRepository interface {
	// FindByID finds a commission by ID within a panel
	FindByID(ctx context.Context, panelID, id uuid.UUID) (*Commission, error)

	// FindByTracking finds a commission by its public tracking token and ID pair.
	// Both must match; used by the unauthenticated tracking endpoints.
	FindByTracking(ctx context.Context, trackingID string, id uuid.UUID) (*Commission, error)

	// FindAll finds all commissions for a panel
	FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]Commission, error)

	// FindByClient finds all commissions for a client
	FindByClient(ctx context.Context, panelID, clientID uuid.UUID, filter shared.Filter) ([]Commission, error)

	// Save creates or updates a commission
	Save(ctx context.Context, commission *Commission) error

	// UpdatePaid sets total_paid with a single conditional update that
	// refuses to exceed total_value. Returns false when no row matched.
	UpdatePaid(ctx context.Context, panelID, id uuid.UUID, paid decimal.Decimal) (bool, error)

	// UpdateStatus sets the status with a single update. Returns false when
	// the commission does not exist in the panel.
	UpdateStatus(ctx context.Context, panelID, id uuid.UUID, status CommissionStatus) (bool, error)

	// SetPinned flips the pinned flag
	SetPinned(ctx context.Context, panelID, id uuid.UUID, pinned bool) error

	// Delete deletes a commission
	Delete(ctx context.Context, panelID, id uuid.UUID) error

	// Count counts commissions for a panel
	Count(ctx context.Context, panelID uuid.UUID) (int64, error)
}
