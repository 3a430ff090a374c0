package persistence

import (
	"context"
	"errors"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// FindByID finds a request by ID within a panel
func (r *GormRequestRepository) FindByID(ctx context.Context, panelID, id uuid.UUID) (*panel.Request, error) {
	var request panel.Request
	if err := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// FindAll finds all requests for a panel
func (r *GormRequestRepository) FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]panel.Request, error) {
	var requests []panel.Request
	query := r.applyFilter(
		dbFor(ctx, r.db).Model(&panel.Request{}).Where("panel_id = ?", panelID),
		filter,
	)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindByCommission finds all requests for a commission
func (r *GormRequestRepository) FindByCommission(ctx context.Context, panelID, commissionID uuid.UUID, filter shared.Filter) ([]panel.Request, error) {
	var requests []panel.Request
	query := r.applyFilter(
		dbFor(ctx, r.db).Model(&panel.Request{}).
			Where("panel_id = ? AND commission_id = ?", panelID, commissionID),
		filter,
	)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Save creates or updates a request
func (r *GormRequestRepository) Save(ctx context.Context, request *panel.Request) error {
	return dbFor(ctx, r.db).Save(request).Error
}

// Delete deletes a request
func (r *GormRequestRepository) Delete(ctx context.Context, panelID, id uuid.UUID) error {
	result := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		Delete(&panel.Request{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormRequestRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("description ILIKE ? OR id::text ILIKE ?", pattern, pattern)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	orderBy := ValidateSortField(filter.OrderBy, RequestSortFields, "created_at")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}
