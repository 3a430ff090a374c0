package panel

import (
	"context"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
)

// QuoteRepository defines the interface for quote persistence
type QuoteRepository interface {
	// FindByID finds a quote by ID within a panel
	FindByID(ctx context.Context, panelID, id uuid.UUID) (*Quote, error)

	// FindByPublicID finds a quote by ID alone. The quote page link is
	// shared with clients outside the dashboard, so the decision endpoints
	// have no panel scope; the random UUID is the capability.
	FindByPublicID(ctx context.Context, id uuid.UUID) (*Quote, error)

	// FindAll finds all quotes for a panel
	FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]Quote, error)

	// Save creates or updates a quote
	Save(ctx context.Context, quote *Quote) error

	// Decide transitions the quote from pending to the given terminal
	// status as a single conditional update. Returns false when the quote
	// was not pending (already decided, or not found), which is the
	// caller's conflict signal. Concurrent decisions cannot both succeed.
	Decide(ctx context.Context, panelID, id uuid.UUID, to QuoteStatus) (bool, error)

	// Delete deletes a quote
	Delete(ctx context.Context, panelID, id uuid.UUID) error
}
