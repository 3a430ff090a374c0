package persistence

import (
	"context"
	"errors"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/notification"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNotificationRepository implements notification.Repository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// FindByID finds a notification by ID within a panel
func (r *GormNotificationRepository) FindByID(ctx context.Context, panelID, id uuid.UUID) (*notification.Notification, error) {
	var n notification.Notification
	if err := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// FindAll finds all notifications for a panel, newest first
func (r *GormNotificationRepository) FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]notification.Notification, error) {
	var notifications []notification.Notification
	query := dbFor(ctx, r.db).Model(&notification.Notification{}).
		Where("panel_id = ?", panelID).
		Order("created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// CountUnread counts unread notifications for a panel
func (r *GormNotificationRepository) CountUnread(ctx context.Context, panelID uuid.UUID) (int64, error) {
	var count int64
	if err := dbFor(ctx, r.db).Model(&notification.Notification{}).
		Where("panel_id = ? AND read = ?", panelID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a notification
func (r *GormNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	return dbFor(ctx, r.db).Save(n).Error
}

// MarkRead marks a single notification as read
func (r *GormNotificationRepository) MarkRead(ctx context.Context, panelID, id uuid.UUID) error {
	result := dbFor(ctx, r.db).Model(&notification.Notification{}).
		Where("panel_id = ? AND id = ?", panelID, id).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteAll removes every notification for a panel
func (r *GormNotificationRepository) DeleteAll(ctx context.Context, panelID uuid.UUID) error {
	return dbFor(ctx, r.db).
		Where("panel_id = ?", panelID).
		Delete(&notification.Notification{}).Error
}

// Delete removes a single notification
func (r *GormNotificationRepository) Delete(ctx context.Context, panelID, id uuid.UUID) error {
	result := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		Delete(&notification.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
