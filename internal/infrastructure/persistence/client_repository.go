package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// clientSelectColumns maps the columns the API-key select endpoint may
// filter on. Anything else is rejected before touching the database.
var clientSelectColumns = map[string]bool{
	"username": true,
	"discord":  true,
	"email":    true,
}

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by ID within a panel
func (r *GormClientRepository) FindByID(ctx context.Context, panelID, id uuid.UUID) (*panel.Client, error) {
	var client panel.Client
	if err := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindByEmail finds a client by email within a panel
func (r *GormClientRepository) FindByEmail(ctx context.Context, panelID uuid.UUID, email string) (*panel.Client, error) {
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	var client panel.Client
	if err := dbFor(ctx, r.db).
		Where("panel_id = ? AND email = ?", panelID, strings.ToLower(email)).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindByField finds clients matching an allow-listed column within a panel
func (r *GormClientRepository) FindByField(ctx context.Context, panelID uuid.UUID, field, value string) ([]panel.Client, error) {
	if !clientSelectColumns[field] {
		return nil, shared.NewDomainError("INVALID_FIELD", "Field cannot be queried")
	}
	var clients []panel.Client
	if err := dbFor(ctx, r.db).
		Where("panel_id = ?", panelID).
		Where(field+" = ?", value).
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// FindAll finds all clients for a panel
func (r *GormClientRepository) FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]panel.Client, error) {
	var clients []panel.Client
	query := r.applyFilter(
		dbFor(ctx, r.db).Model(&panel.Client{}).Where("panel_id = ?", panelID),
		filter,
	)
	if err := query.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *panel.Client) error {
	return dbFor(ctx, r.db).Save(client).Error
}

// Delete deletes a client. Commissions cascade at the schema level.
func (r *GormClientRepository) Delete(ctx context.Context, panelID, id uuid.UUID) error {
	result := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		Delete(&panel.Client{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts clients for a panel
func (r *GormClientRepository) Count(ctx context.Context, panelID uuid.UUID) (int64, error) {
	var count int64
	if err := dbFor(ctx, r.db).Model(&panel.Client{}).
		Where("panel_id = ?", panelID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormClientRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("username ILIKE ? OR discord ILIKE ? OR email ILIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	orderBy := ValidateSortField(filter.OrderBy, ClientSortFields, "created_at")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}
