package persistence

import (
	"context"
	"errors"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by ID within a panel
func (r *GormProductRepository) FindByID(ctx context.Context, panelID, id uuid.UUID) (*panel.Product, error) {
	var product panel.Product
	if err := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll finds all products for a panel
func (r *GormProductRepository) FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]panel.Product, error) {
	var products []panel.Product
	query := r.applyFilter(
		dbFor(ctx, r.db).Model(&panel.Product{}).Where("panel_id = ?", panelID),
		filter,
	)
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *panel.Product) error {
	return dbFor(ctx, r.db).Save(product).Error
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, panelID, id uuid.UUID) error {
	result := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		Delete(&panel.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	orderBy := ValidateSortField(filter.OrderBy, ProductSortFields, "created_at")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}
