package notification

import (
	"context"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for notification persistence
type Repository interface {
	// FindByID finds a notification by ID within a panel
	FindByID(ctx context.Context, panelID, id uuid.UUID) (*Notification, error)

	// FindAll finds all notifications for a panel, newest first
	FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]Notification, error)

	// CountUnread counts unread notifications for a panel
	CountUnread(ctx context.Context, panelID uuid.UUID) (int64, error)

	// Save creates or updates a notification
	Save(ctx context.Context, n *Notification) error

	// MarkRead marks a single notification as read
	MarkRead(ctx context.Context, panelID, id uuid.UUID) error

	// DeleteAll removes every notification for a panel
	DeleteAll(ctx context.Context, panelID uuid.UUID) error

	// Delete removes a single notification
	Delete(ctx context.Context, panelID, id uuid.UUID) error
}
