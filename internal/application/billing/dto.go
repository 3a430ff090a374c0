package billing

import (
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/billing"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListFilter carries pagination and sorting options from query strings
type ListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"sort" binding:"omitempty,max=50"`
	OrderDir string `form:"order" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search" binding:"omitempty,max=200"`
}

// ToDomainFilter converts the transport filter into the domain filter
func (f ListFilter) ToDomainFilter() shared.Filter {
	df := shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
	}
	df.Normalize()
	return df
}

// IssueInvoiceRequest describes an invoice to issue against a client.
// The same shape serves both providers.
type IssueInvoiceRequest struct {
	ClientID uuid.UUID       `json:"client_id" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  *time.Time      `json:"due_date"`
	Title    string          `json:"title" binding:"required,min=1,max=200"`
	Memo     string          `json:"memo"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID                uuid.UUID       `json:"id"`
	ClientID          uuid.UUID       `json:"client_id"`
	Provider          string          `json:"provider"`
	ProviderInvoiceID string          `json:"provider_invoice_id"`
	Link              string          `json:"link"`
	Amount            decimal.Decimal `json:"amount"`
	DueDate           *time.Time      `json:"due_date"`
	Status            string          `json:"status"`
	PaidAt            *time.Time      `json:"paid_at"`
	Title             string          `json:"title"`
	Memo              string          `json:"memo"`
	Pinned            bool            `json:"pinned"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CheckPaymentResponse is the remote payment state of an invoice. Field
// names match what the dashboard expects.
type CheckPaymentResponse struct {
	IsPaid bool       `json:"isPaid"`
	PaidAt *time.Time `json:"paidAt"`
}

// PinRequest flips the pinned flag on an invoice
type PinRequest struct {
	Pinned bool `json:"pinned"`
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                inv.ID,
		ClientID:          inv.ClientID,
		Provider:          string(inv.Provider),
		ProviderInvoiceID: inv.ProviderInvoiceID,
		Link:              inv.Link,
		Amount:            inv.Amount,
		DueDate:           inv.DueDate,
		Status:            string(inv.Status),
		PaidAt:            inv.PaidAt,
		Title:             inv.Title,
		Memo:              inv.Memo,
		Pinned:            inv.Pinned,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain invoices
func ToInvoiceResponses(invoices []billing.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out
}
