package panel

import (
	"context"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	// FindByID finds a client by ID within a panel
	FindByID(ctx context.Context, panelID, id uuid.UUID) (*Client, error)

	// FindByEmail finds a client by email within a panel
	FindByEmail(ctx context.Context, panelID uuid.UUID, email string) (*Client, error)

	// FindByField finds clients matching an allow-listed column within a panel.
	// Used by the API-key select endpoint.
	FindByField(ctx context.Context, panelID uuid.UUID, field, value string) ([]Client, error)

	// FindAll finds all clients for a panel
	FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]Client, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// Delete deletes a client. Commissions cascade at the schema level.
	Delete(ctx context.Context, panelID, id uuid.UUID) error

	// Count counts clients for a panel
	Count(ctx context.Context, panelID uuid.UUID) (int64, error)
}
