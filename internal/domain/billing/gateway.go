package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CredentialSource records where resolved credentials came from, so the
// issuance path can log which tier served a request.
type CredentialSource string

const (
	CredentialSourcePanel       CredentialSource = "panel"
	CredentialSourceEnvironment CredentialSource = "environment"
)

// StripeCredentials is a resolved Stripe secret key
type StripeCredentials struct {
	SecretKey string
	Source    CredentialSource
}

// PayPalCredentials is a resolved PayPal REST app credential pair
type PayPalCredentials struct {
	ClientID     string
	ClientSecret string
	Source       CredentialSource
}

// CredentialResolver resolves provider credentials for a panel,
// preferring panel-stored keys over process-wide defaults.
type CredentialResolver interface {
	ResolveStripe(ctx context.Context, panelID uuid.UUID) (StripeCredentials, error)
	ResolvePayPal(ctx context.Context, panelID uuid.UUID) (PayPalCredentials, error)
}

// StripeInvoiceInput describes a Stripe invoice to issue
type StripeInvoiceInput struct {
	CustomerEmail string
	CustomerName  string
	CustomerID    string // Reuse this remote customer when set
	Amount        decimal.Decimal
	DueDate       time.Time
	Title         string
	Memo          string
	ClientID      string // Carried in provider metadata
}

// PayPalInvoiceInput describes a PayPal invoice to issue
type PayPalInvoiceInput struct {
	RecipientName    string
	RecipientEmail   string
	Amount           decimal.Decimal
	DueDate          time.Time
	Title            string
	Memo             string
	Terms            string // Plain text; HTML already stripped
	InvoicerName     string
	InvoicerLogoURL  string
}

// IssuedInvoice is the provider-side result of issuing an invoice
type IssuedInvoice struct {
	ProviderInvoiceID string
	HostedURL         string
	CustomerID        string // Stripe only; the customer used or created
	CustomerCreated   bool   // Stripe only; true when a new remote customer was made
}

// PaymentStatus is the remote payment state of an invoice
type PaymentStatus struct {
	Paid   bool
	PaidAt *time.Time
}

// StripeGateway issues and inspects Stripe invoices. Implementations take
// credentials per call because every panel may use its own key.
type StripeGateway interface {
	// IssueInvoice runs the full issuance sequence: ensure a customer
	// exists for the email, create the invoice and its line item,
	// finalize it and send it.
	IssueInvoice(ctx context.Context, creds StripeCredentials, in StripeInvoiceInput) (*IssuedInvoice, error)

	// VoidInvoice cancels a remote invoice. Used as compensation when the
	// local mirror cannot be persisted after a successful send.
	VoidInvoice(ctx context.Context, creds StripeCredentials, providerInvoiceID string) error

	// GetPaymentStatus retrieves the remote payment state
	GetPaymentStatus(ctx context.Context, creds StripeCredentials, providerInvoiceID string) (*PaymentStatus, error)
}

// PayPalGateway issues and inspects PayPal invoices
type PayPalGateway interface {
	IssueInvoice(ctx context.Context, creds PayPalCredentials, in PayPalInvoiceInput) (*IssuedInvoice, error)
	GetPaymentStatus(ctx context.Context, creds PayPalCredentials, providerInvoiceID string) (*PaymentStatus, error)
}
