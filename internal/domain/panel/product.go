package panel

import (
	"context"
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a reusable service/item a freelancer sells; commissions may
// link one for revenue breakdowns.
type Product struct {
	shared.PanelEntity
	Name  string          `gorm:"type:varchar(200);not null"`
	Price decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(panelID uuid.UUID, name string, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	return &Product{
		PanelEntity: shared.NewPanelEntity(panelID),
		Name:        name,
		Price:       price,
	}, nil
}

// Update updates the product's fields
func (p *Product) Update(name string, price decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	p.Name = name
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	FindByID(ctx context.Context, panelID, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, panelID, id uuid.UUID) error
}
