package panel

import (
	"context"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
)

// RequestRepository defines the interface for change request persistence
type RequestRepository interface {
	// FindByID finds a request by ID within a panel
	FindByID(ctx context.Context, panelID, id uuid.UUID) (*Request, error)

	// FindAll finds all requests for a panel
	FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]Request, error)

	// FindByCommission finds all requests for a commission
	FindByCommission(ctx context.Context, panelID, commissionID uuid.UUID, filter shared.Filter) ([]Request, error)

	// Save creates or updates a request
	Save(ctx context.Context, request *Request) error

	// Delete deletes a request
	Delete(ctx context.Context, panelID, id uuid.UUID) error
}
