package persistence

import (
	"context"
	"errors"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormQuoteRepository implements QuoteRepository using GORM
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// FindByID finds a quote by ID within a panel
func (r *GormQuoteRepository) FindByID(ctx context.Context, panelID, id uuid.UUID) (*panel.Quote, error) {
	var quote panel.Quote
	if err := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quote, nil
}

// FindByPublicID finds a quote by ID alone, for the public decision flow
func (r *GormQuoteRepository) FindByPublicID(ctx context.Context, id uuid.UUID) (*panel.Quote, error) {
	var quote panel.Quote
	if err := dbFor(ctx, r.db).
		Where("id = ?", id).
		First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quote, nil
}

// FindAll finds all quotes for a panel
func (r *GormQuoteRepository) FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]panel.Quote, error) {
	var quotes []panel.Quote
	query := r.applyFilter(
		dbFor(ctx, r.db).Model(&panel.Quote{}).Where("panel_id = ?", panelID),
		filter,
	)
	if err := query.Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

// Save creates or updates a quote
func (r *GormQuoteRepository) Save(ctx context.Context, quote *panel.Quote) error {
	return dbFor(ctx, r.db).Save(quote).Error
}

// Decide transitions the quote from pending to the given terminal status as
// a single conditional update. The status predicate makes concurrent
// decisions mutually exclusive; the loser sees zero rows affected.
func (r *GormQuoteRepository) Decide(ctx context.Context, panelID, id uuid.UUID, to panel.QuoteStatus) (bool, error) {
	result := dbFor(ctx, r.db).Model(&panel.Quote{}).
		Where("panel_id = ? AND id = ? AND status = ?", panelID, id, panel.QuoteStatusPending).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete deletes a quote
func (r *GormQuoteRepository) Delete(ctx context.Context, panelID, id uuid.UUID) error {
	result := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		Delete(&panel.Quote{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormQuoteRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR id::text ILIKE ?", pattern, pattern)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	orderBy := ValidateSortField(filter.OrderBy, QuoteSortFields, "created_at")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}
