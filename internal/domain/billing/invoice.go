package billing

import (
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Provider identifies the payment platform hosting an invoice
type Provider string

const (
	ProviderStripe Provider = "stripe"
	ProviderPayPal Provider = "paypal"
)

// InvoiceStatus is the locally tracked payment state. It only changes
// when a check-payment call observes the remote state; there is no
// webhook, so the local value can lag the provider indefinitely.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// Invoice mirrors a remote provider invoice for a panel's client
type Invoice struct {
	shared.PanelEntity
	ClientID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProviderInvoiceID string          `gorm:"column:provider_invoice_id;type:varchar(100);not null;index"`
	Provider          Provider        `gorm:"type:varchar(10);not null"`
	Link              string          `gorm:"type:text"` // Provider-hosted payment URL
	Amount            decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DueDate           *time.Time      `gorm:"type:date"`
	Status            InvoiceStatus   `gorm:"type:varchar(10);not null;default:'unpaid'"`
	PaidAt            *time.Time
	Title             string `gorm:"type:varchar(200)"`
	Memo              string `gorm:"type:text"`
	Pinned            bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "panel_invoices"
}

// NewInvoice creates the local mirror of a freshly issued remote invoice
func NewInvoice(panelID, clientID uuid.UUID, provider Provider, providerInvoiceID, link string, amount decimal.Decimal, dueDate *time.Time, title, memo string) (*Invoice, error) {
	if providerInvoiceID == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Provider invoice ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice amount must be positive")
	}
	switch provider {
	case ProviderStripe, ProviderPayPal:
	default:
		return nil, shared.NewDomainError("INVALID_PROVIDER", "Unknown payment provider")
	}
	return &Invoice{
		PanelEntity:       shared.NewPanelEntity(panelID),
		ClientID:          clientID,
		ProviderInvoiceID: providerInvoiceID,
		Provider:          provider,
		Link:              link,
		Amount:            amount,
		DueDate:           dueDate,
		Status:            InvoiceStatusUnpaid,
		Title:             title,
		Memo:              memo,
	}, nil
}

// MarkPaid records an observed remote payment
func (i *Invoice) MarkPaid(paidAt time.Time) {
	i.Status = InvoiceStatusPaid
	i.PaidAt = &paidAt
	i.UpdatedAt = time.Now()
}

// IsPaid reports whether the invoice has been observed as paid
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}
