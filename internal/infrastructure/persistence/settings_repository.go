package persistence

import (
	"context"
	"errors"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSettingsRepository implements SettingsRepository using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// FindByPanel finds the settings row for a panel
func (r *GormSettingsRepository) FindByPanel(ctx context.Context, panelID uuid.UUID) (*panel.Settings, error) {
	var settings panel.Settings
	if err := dbFor(ctx, r.db).
		Where("id = ?", panelID).
		First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// FindByAPIKey finds active settings by API key. Rows without an active
// license are treated as not found so revoked keys stop working at once.
func (r *GormSettingsRepository) FindByAPIKey(ctx context.Context, apiKey string) (*panel.Settings, error) {
	if apiKey == "" {
		return nil, shared.ErrNotFound
	}
	var settings panel.Settings
	if err := dbFor(ctx, r.db).
		Where("api_key = ? AND license_active = ?", apiKey, true).
		First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// Save creates or updates the settings row
func (r *GormSettingsRepository) Save(ctx context.Context, settings *panel.Settings) error {
	return dbFor(ctx, r.db).Save(settings).Error
}

// ConsumeAPIUse atomically decrements api_uses_left when at least one use
// remains. The decrement and the quota check are a single statement, so
// concurrent callers cannot spend the same use twice.
func (r *GormSettingsRepository) ConsumeAPIUse(ctx context.Context, panelID uuid.UUID) (bool, error) {
	result := dbFor(ctx, r.db).Model(&panel.Settings{}).
		Where("id = ? AND api_uses_left >= ?", panelID, 1).
		Update("api_uses_left", gorm.Expr("api_uses_left - 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
