package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/billing"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by ID within a panel
func (r *GormInvoiceRepository) FindByID(ctx context.Context, panelID, id uuid.UUID) (*billing.Invoice, error) {
	var invoice billing.Invoice
	if err := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindAll finds all invoices for a panel, pinned rows first
func (r *GormInvoiceRepository) FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]billing.Invoice, error) {
	var invoices []billing.Invoice
	query := r.applyFilter(
		dbFor(ctx, r.db).Model(&billing.Invoice{}).Where("panel_id = ?", panelID),
		filter,
	)
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindByClient finds all invoices for a client
func (r *GormInvoiceRepository) FindByClient(ctx context.Context, panelID, clientID uuid.UUID, filter shared.Filter) ([]billing.Invoice, error) {
	var invoices []billing.Invoice
	query := r.applyFilter(
		dbFor(ctx, r.db).Model(&billing.Invoice{}).
			Where("panel_id = ? AND client_id = ?", panelID, clientID),
		filter,
	)
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	return dbFor(ctx, r.db).Save(invoice).Error
}

// MarkPaid sets status and paid_at with a single update
func (r *GormInvoiceRepository) MarkPaid(ctx context.Context, panelID, id uuid.UUID, paidAt time.Time) error {
	result := dbFor(ctx, r.db).Model(&billing.Invoice{}).
		Where("panel_id = ? AND id = ?", panelID, id).
		Updates(map[string]interface{}{
			"status":     billing.InvoiceStatusPaid,
			"paid_at":    paidAt,
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SetPinned flips the pinned flag
func (r *GormInvoiceRepository) SetPinned(ctx context.Context, panelID, id uuid.UUID, pinned bool) error {
	result := dbFor(ctx, r.db).Model(&billing.Invoice{}).
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

// Delete deletes an invoice
func (r *GormInvoiceRepository) Delete(ctx context.Context, panelID, id uuid.UUID) error {
	result := dbFor(ctx, r.db).
		Where("panel_id = ? AND id = ?", panelID, id).
		Delete(&billing.Invoice{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormInvoiceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR memo ILIKE ? OR provider_invoice_id ILIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	orderBy := ValidateSortField(filter.OrderBy, InvoiceSortFields, "created_at")
	return query.Order("pinned DESC").Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}
