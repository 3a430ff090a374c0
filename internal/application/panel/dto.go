package panel

import (
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Common DTOs
// =============================================================================

// ListFilter carries pagination and sorting options from query strings
type ListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"sort" binding:"omitempty,max=50"`
	OrderDir string `form:"order" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search" binding:"omitempty,max=200"`
}

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=100"`
	Discord   string `json:"discord" binding:"max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Username  *string `json:"username" binding:"omitempty,min=1,max=100"`
	Discord   *string `json:"discord" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=200"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID               uuid.UUID `json:"id"`
	Username         string    `json:"username"`
	Discord          string    `json:"discord"`
	Email            string    `json:"email"`
	AvatarURL        string    `json:"avatar_url"`
	StripeCustomerID string    `json:"stripe_customer_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToClientResponse converts a domain client to a response DTO
func ToClientResponse(c *panel.Client) ClientResponse {
	return ClientResponse{
		ID:               c.ID,
		Username:         c.Username,
		Discord:          c.Discord,
		Email:            c.Email,
		AvatarURL:        c.AvatarURL,
		StripeCustomerID: c.StripeCustomerID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ToClientResponses converts a slice of domain clients
func ToClientResponses(clients []panel.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out
}

// =============================================================================
// Commission DTOs
// =============================================================================

// CreateCommissionRequest represents a request to create a new commission
type CreateCommissionRequest struct {
	ClientID   uuid.UUID       `json:"client_id" binding:"required"`
	Title      string          `json:"title" binding:"required,min=1,max=200"`
	TotalValue decimal.Decimal `json:"total_value"`
	StartDate  *time.Time      `json:"start_date"`
	Deadline   *time.Time      `json:"deadline"`
	ProductID  *uuid.UUID      `json:"product_id"`
	Notes      string          `json:"notes"`
}

// UpdateCommissionRequest represents a request to update a commission
type UpdateCommissionRequest struct {
	Title      *string          `json:"title" binding:"omitempty,min=1,max=200"`
	TotalValue *decimal.Decimal `json:"total_value"`
	TotalPaid  *decimal.Decimal `json:"total_paid"`
	StartDate  *time.Time       `json:"start_date"`
	Deadline   *time.Time       `json:"deadline"`
	ProductID  *uuid.UUID       `json:"product_id"`
	Notes      *string          `json:"notes"`
}

// UpdateCommissionStatusRequest changes a commission's lifecycle status
type UpdateCommissionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=not_started in_progress completed cancelled paused"`
}

// MarkCommissionPaidRequest marks a percentage of the commission as paid
type MarkCommissionPaidRequest struct {
	Percent int `json:"percent" binding:"required,oneof=10 25 50 75 100"`
}

// PinRequest flips the pinned flag on a pinnable resource
type PinRequest struct {
	Pinned bool `json:"pinned"`
}

// CommissionResponse represents a commission in API responses
type CommissionResponse struct {
	ID         uuid.UUID       `json:"id"`
	ClientID   uuid.UUID       `json:"client_id"`
	Title      string          `json:"title"`
	TotalValue decimal.Decimal `json:"total_value"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	StartDate  *time.Time      `json:"start_date"`
	Deadline   *time.Time      `json:"deadline"`
	Status     string          `json:"status"`
	TrackingID string          `json:"tracking_id"`
	Pinned     bool            `json:"pinned"`
	ProductID  *uuid.UUID      `json:"product_id"`
	Notes      string          `json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TrackedCommissionResponse is the public tracking page view of a
// commission. It deliberately omits internal fields like notes.
type TrackedCommissionResponse struct {
	ID         uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	TotalValue decimal.Decimal `json:"total_value"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	StartDate  *time.Time      `json:"start_date"`
	Deadline   *time.Time      `json:"deadline"`
	Status     string          `json:"status"`
}

// ToCommissionResponse converts a domain commission to a response DTO
func ToCommissionResponse(c *panel.Commission) CommissionResponse {
	return CommissionResponse{
		ID:         c.ID,
		ClientID:   c.ClientID,
		Title:      c.Title,
		TotalValue: c.TotalValue,
		TotalPaid:  c.TotalPaid,
		StartDate:  c.StartDate,
		Deadline:   c.Deadline,
		Status:     string(c.Status),
		TrackingID: c.TrackingID,
		Pinned:     c.Pinned,
		ProductID:  c.ProductID,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToCommissionResponses converts a slice of domain commissions
func ToCommissionResponses(commissions []panel.Commission) []CommissionResponse {
	out := make([]CommissionResponse, len(commissions))
	for i := range commissions {
		out[i] = ToCommissionResponse(&commissions[i])
	}
	return out
}

// ToTrackedCommissionResponse converts a commission to its public view
func ToTrackedCommissionResponse(c *panel.Commission) TrackedCommissionResponse {
	return TrackedCommissionResponse{
		ID:         c.ID,
		Title:      c.Title,
		TotalValue: c.TotalValue,
		TotalPaid:  c.TotalPaid,
		StartDate:  c.StartDate,
		Deadline:   c.Deadline,
		Status:     string(c.Status),
	}
}

// =============================================================================
// Quote DTOs
// =============================================================================

// CreateQuoteRequest represents a request to create a new quote
type CreateQuoteRequest struct {
	ClientID       uuid.UUID       `json:"client_id" binding:"required"`
	Title          string          `json:"title" binding:"required,min=1,max=200"`
	ProposedAmount decimal.Decimal `json:"proposed_amount"`
	StartDate      *time.Time      `json:"start_date"`
	Deadline       *time.Time      `json:"deadline"`
	PaymentTerms   string          `json:"payment_terms" binding:"required,oneof=100_before 100_after 50_50 25_75 custom"`
}

// AcceptQuoteRequest carries the terms-of-service confirmation
type AcceptQuoteRequest struct {
	AcceptedTos bool `json:"accepted_tos"`
}

// QuoteResponse represents a quote in API responses
type QuoteResponse struct {
	ID             uuid.UUID       `json:"id"`
	ClientID       uuid.UUID       `json:"client_id"`
	Title          string          `json:"title"`
	ProposedAmount decimal.Decimal `json:"proposed_amount"`
	StartDate      *time.Time      `json:"start_date"`
	Deadline       *time.Time      `json:"deadline"`
	PaymentTerms   string          `json:"payment_terms"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AcceptQuoteResponse is returned when a quote is accepted and a
// commission has been opened from it
type AcceptQuoteResponse struct {
	Quote      QuoteResponse      `json:"quote"`
	Commission CommissionResponse `json:"commission"`
}

// ToQuoteResponse converts a domain quote to a response DTO
func ToQuoteResponse(q *panel.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		ClientID:       q.ClientID,
		Title:          q.Title,
		ProposedAmount: q.ProposedAmount,
		StartDate:      q.StartDate,
		Deadline:       q.Deadline,
		PaymentTerms:   string(q.PaymentTerms),
		Status:         string(q.Status),
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

// ToQuoteResponses converts a slice of domain quotes
func ToQuoteResponses(quotes []panel.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		out[i] = ToQuoteResponse(&quotes[i])
	}
	return out
}

// =============================================================================
// Request DTOs
// =============================================================================

// CreateRequestRequest represents a panel-side request to record a change
// request against a commission
type CreateRequestRequest struct {
	CommissionID  uuid.UUID       `json:"commission_id" binding:"required"`
	Description   string          `json:"description" binding:"required,min=1"`
	OfferedAmount decimal.Decimal `json:"offered_amount"`
	Deadline      *time.Time      `json:"deadline"`
}

// PublicCreateRequestRequest is the unauthenticated tracking page variant.
// The tracking token and commission ID must both match the same commission.
type PublicCreateRequestRequest struct {
	TrackingID    string          `json:"tracking_id" binding:"required,min=1,max=32"`
	CommissionID  uuid.UUID       `json:"commission_id" binding:"required"`
	Description   string          `json:"description" binding:"required,min=1"`
	OfferedAmount decimal.Decimal `json:"offered_amount"`
	Deadline      *time.Time      `json:"deadline"`
}

// UpdateRequestRequest represents a request to update a change request
type UpdateRequestRequest struct {
	Description   *string          `json:"description" binding:"omitempty,min=1"`
	OfferedAmount *decimal.Decimal `json:"offered_amount"`
	Deadline      *time.Time       `json:"deadline"`
}

// UpdateRequestStatusRequest changes a change request's status
type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=not_started in_progress paused completed cancelled requested rejected"`
}

// RequestResponse represents a change request in API responses
type RequestResponse struct {
	ID            uuid.UUID       `json:"id"`
	CommissionID  uuid.UUID       `json:"commission_id"`
	Description   string          `json:"description"`
	OfferedAmount decimal.Decimal `json:"offered_amount"`
	Deadline      *time.Time      `json:"deadline"`
	Status        string          `json:"status"`
	Paid          bool            `json:"paid"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToRequestResponse converts a domain change request to a response DTO
func ToRequestResponse(r *panel.Request) RequestResponse {
	return RequestResponse{
		ID:            r.ID,
		CommissionID:  r.CommissionID,
		Description:   r.Description,
		OfferedAmount: r.OfferedAmount,
		Deadline:      r.Deadline,
		Status:        string(r.Status),
		Paid:          r.Paid,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ToRequestResponses converts a slice of domain change requests
func ToRequestResponses(requests []panel.Request) []RequestResponse {
	out := make([]RequestResponse, len(requests))
	for i := range requests {
		out[i] = ToRequestResponse(&requests[i])
	}
	return out
}

// =============================================================================
// Product DTOs
// =============================================================================

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name  string          `json:"name" binding:"required,min=1,max=200"`
	Price decimal.Decimal `json:"price"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name  *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Price *decimal.Decimal `json:"price"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *panel.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []panel.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}

// =============================================================================
// Settings DTOs
// =============================================================================

// UpdateSettingsRequest updates a panel's profile fields
type UpdateSettingsRequest struct {
	DisplayName    *string `json:"display_name" binding:"omitempty,max=100"`
	CurrencyPrefix *string `json:"currency_prefix" binding:"omitempty,max=10"`
	Terms          *string `json:"terms"`
	LogoURL        *string `json:"logo_url" binding:"omitempty,url"`
	Discord        *string `json:"discord" binding:"omitempty,max=100"`
}

// UpdateProviderKeysRequest stores panel-scoped payment credentials.
// Empty strings clear the stored value and fall back to process defaults.
type UpdateProviderKeysRequest struct {
	StripeSecretKey    *string `json:"stripe_secret_key"`
	PayPalClientID     *string `json:"paypal_client_id"`
	PayPalClientSecret *string `json:"paypal_client_secret"`
}

// SettingsResponse represents panel settings in API responses. Credential
// values are never echoed back, only their presence.
type SettingsResponse struct {
	ID             uuid.UUID `json:"id"`
	DisplayName    string    `json:"display_name"`
	CurrencyPrefix string    `json:"currency_prefix"`
	Terms          string    `json:"terms"`
	LogoURL        string    `json:"logo_url"`
	Discord        string    `json:"discord"`
	HasStripeKey   bool      `json:"has_stripe_key"`
	HasPayPalKeys  bool      `json:"has_paypal_keys"`
	APIKey         string    `json:"api_key"`
	APIUsesLeft    int       `json:"api_uses_left"`
	LicenseActive  bool      `json:"license_active"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToSettingsResponse converts domain settings to a response DTO
func ToSettingsResponse(s *panel.Settings) SettingsResponse {
	return SettingsResponse{
		ID:             s.ID,
		DisplayName:    s.DisplayName,
		CurrencyPrefix: s.CurrencyPrefix,
		Terms:          s.Terms,
		LogoURL:        s.LogoURL,
		Discord:        s.Discord,
		HasStripeKey:   s.HasStripeKey(),
		HasPayPalKeys:  s.HasPayPalKeys(),
		APIKey:         s.APIKey,
		APIUsesLeft:    s.APIUsesLeft,
		LicenseActive:  s.LicenseActive,
		UpdatedAt:      s.UpdatedAt,
	}
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
