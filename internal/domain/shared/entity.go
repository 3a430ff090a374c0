package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with a generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PanelEntity extends BaseEntity with panel (tenant) scoping.
// Every business entity in the system belongs to exactly one panel.
type PanelEntity struct {
	BaseEntity
	PanelID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewPanelEntity creates a new panel-scoped entity
func NewPanelEntity(panelID uuid.UUID) PanelEntity {
	return PanelEntity{
		BaseEntity: NewBaseEntity(),
		PanelID:    panelID,
	}
}

// GetPanelID returns the owning panel ID
func (e *PanelEntity) GetPanelID() uuid.UUID {
	return e.PanelID
}

// Touch updates the entity's UpdatedAt timestamp
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}
