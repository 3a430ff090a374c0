package persistence

import (
	"context"
	"errors"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormCommissionRepository implements CommissionRepository using GORM
type GormCommissionRepository struct {
	db *gorm.DB
}

// NewGormCommissionRepository creates a new GormCommissionRepository
func NewGormCommissionRepository(db *gorm.DB) *GormCommissionRepository {
	return &GormCommissionRepository{db: db}
}

// FindByID finds a commission by ID within a panel
func (r *GormCommissionRepository) FindByID(ctx context.Context, panelID, id uuid.UUID) (*panel.Commission, error) {
	var commission panel.Commission
	if err := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		First(&commission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &commission, nil
}

// FindByTracking finds a commission by its public tracking token and ID pair
func (r *GormCommissionRepository) FindByTracking(ctx context.Context, trackingID string, id uuid.UUID) (*panel.Commission, error) {
	if trackingID == "" {
		return nil, shared.ErrNotFound
	}
	var commission panel.Commission
	if err := dbFor(ctx, r.db).
		Where("tracking_id = ? AND id = ?", trackingID, id).
		First(&commission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &commission, nil
}

// FindAll finds all commissions for a panel, pinned rows first
func (r *GormCommissionRepository) FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]panel.Commission, error) {
	var commissions []panel.Commission
	query := r.applyFilter(
		dbFor(ctx, r.db).Model(&panel.Commission{}).Where("panel_id = ?", panelID),
		filter,
	)
	if err := query.Find(&commissions).Error; err != nil {
		return nil, err
	}
	return commissions, nil
}

// FindByClient finds all commissions for a client
func (r *GormCommissionRepository) FindByClient(ctx context.Context, panelID, clientID uuid.UUID, filter shared.Filter) ([]panel.Commission, error) {
	var commissions []panel.Commission
	query := r.applyFilter(
		dbFor(ctx, r.db).Model(&panel.Commission{}).
			Where("panel_id = ? AND client_id = ?", panelID, clientID),
		filter,
	)
	if err := query.Find(&commissions).Error; err != nil {
		return nil, err
	}
	return commissions, nil
}

// Save creates or updates a commission
func (r *GormCommissionRepository) Save(ctx context.Context, commission *panel.Commission) error {
	return dbFor(ctx, r.db).Save(commission).Error
}

// UpdatePaid sets total_paid with a single conditional update that refuses
// to exceed total_value. Returns false when no row matched.
func (r *GormCommissionRepository) UpdatePaid(ctx context.Context, panelID, id uuid.UUID, paid decimal.Decimal) (bool, error) {
	result := dbFor(ctx, r.db).Model(&panel.Commission{}).
		Where("panel_id = ? AND id = ? AND total_value >= ?", panelID, id, paid).
		Updates(map[string]interface{}{
			"total_paid": paid,
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateStatus sets the status with a single update
func (r *GormCommissionRepository) UpdateStatus(ctx context.Context, panelID, id uuid.UUID, status panel.CommissionStatus) (bool, error) {
	result := dbFor(ctx, r.db).Model(&panel.Commission{}).
		Where("panel_id = ? AND id = ?", panelID, id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SetPinned flips the pinned flag
func (r *GormCommissionRepository) SetPinned(ctx context.Context, panelID, id uuid.UUID, pinned bool) error {
	result := dbFor(ctx, r.db).Model(&panel.Commission{}).
		Where("panel_id = ? AND id = ?", panelID, id).
		Update("pinned", pinned)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a commission
func (r *GormCommissionRepository) Delete(ctx context.Context, panelID, id uuid.UUID) error {
	result := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		Delete(&panel.Commission{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts commissions for a panel
func (r *GormCommissionRepository) Count(ctx context.Context, panelID uuid.UUID) (int64, error) {
	var count int64
	if err := dbFor(ctx, r.db).Model(&panel.Commission{}).
		Where("panel_id = ?", panelID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCommissionRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR notes ILIKE ? OR id::text ILIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	orderBy := ValidateSortField(filter.OrderBy, CommissionSortFields, "created_at")
	return query.Order("pinned DESC").Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}
