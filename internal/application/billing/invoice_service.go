package billing

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/billing"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultDueDays is applied when an issue request carries no due date
const defaultDueDays = 30

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// InvoiceService issues invoices through payment providers and keeps the
// local mirror rows in sync. All request validation happens before any
// provider call is made.
type InvoiceService struct {
	invoiceRepo  billing.InvoiceRepository
	clientRepo   panel.ClientRepository
	settingsRepo panel.SettingsRepository
	stripe       billing.StripeGateway
	paypal       billing.PayPalGateway
	credentials  billing.CredentialResolver
	logger       *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	clientRepo panel.ClientRepository,
	settingsRepo panel.SettingsRepository,
	stripe billing.StripeGateway,
	paypal billing.PayPalGateway,
	credentials billing.CredentialResolver,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
		stripe:       stripe,
		paypal:       paypal,
		credentials:  credentials,
		logger:       logger,
	}
}

// IssueStripe issues a Stripe invoice to a client and persists the local
// mirror. If the local persist fails after the remote invoice was sent,
// the remote invoice is voided; a failed void is logged for manual
// reconciliation.
func (s *InvoiceService) IssueStripe(ctx context.Context, panelID uuid.UUID, req IssueInvoiceRequest) (*InvoiceResponse, error) {
	client, err := s.validateIssueRequest(ctx, panelID, req)
	if err != nil {
		return nil, err
	}

	creds, err := s.credentials.ResolveStripe(ctx, panelID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Resolved Stripe credentials",
		zap.String("panel_id", panelID.String()),
		zap.String("source", string(creds.Source)))

	dueDate := s.dueDateOrDefault(req.DueDate)
	issued, err := s.stripe.IssueInvoice(ctx, creds, billing.StripeInvoiceInput{
		CustomerEmail: client.Email,
		CustomerName:  client.Username,
		CustomerID:    client.StripeCustomerID,
		Amount:        req.Amount,
		DueDate:       dueDate,
		Title:         req.Title,
		Memo:          req.Memo,
		ClientID:      client.ID.String(),
	})
	if err != nil {
		return nil, err
	}

	// Remember the remote customer so later invoices reuse it
	if issued.CustomerID != "" && issued.CustomerID != client.StripeCustomerID {
		client.LinkStripeCustomer(issued.CustomerID)
		if err := s.clientRepo.Save(ctx, client); err != nil {
			s.logger.Warn("Failed to persist Stripe customer ID on client",
				zap.String("client_id", client.ID.String()),
				zap.Error(err))
		}
	}

	invoice, err := s.persistIssued(ctx, panelID, client.ID, billing.ProviderStripe, issued, req, dueDate)
	if err != nil {
		if voidErr := s.stripe.VoidInvoice(ctx, creds, issued.ProviderInvoiceID); voidErr != nil {
			s.logger.Error("Failed to void remote Stripe invoice after local persist failure, reconcile manually",
				zap.String("panel_id", panelID.String()),
				zap.String("provider_invoice_id", issued.ProviderInvoiceID),
				zap.Error(voidErr))
		}
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// IssuePayPal issues a PayPal invoice to a client and persists the local
// mirror. PayPal offers no void on sent invoices, so a persist failure
// after send is logged for manual reconciliation.
func (s *InvoiceService) IssuePayPal(ctx context.Context, panelID uuid.UUID, req IssueInvoiceRequest) (*InvoiceResponse, error) {
	client, err := s.validateIssueRequest(ctx, panelID, req)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.FindByPanel(ctx, panelID)
	if err != nil {
		return nil, err
	}

	creds, err := s.credentials.ResolvePayPal(ctx, panelID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Resolved PayPal credentials",
		zap.String("panel_id", panelID.String()),
		zap.String("source", string(creds.Source)))

	dueDate := s.dueDateOrDefault(req.DueDate)
	issued, err := s.paypal.IssueInvoice(ctx, creds, billing.PayPalInvoiceInput{
		RecipientName:   client.Username,
		RecipientEmail:  client.Email,
		Amount:          req.Amount,
		DueDate:         dueDate,
		Title:           req.Title,
		Memo:            req.Memo,
		Terms:           StripHTML(settings.Terms),
		InvoicerName:    settings.DisplayName,
		InvoicerLogoURL: settings.LogoURL,
	})
	if err != nil {
		return nil, err
	}

	invoice, err := s.persistIssued(ctx, panelID, client.ID, billing.ProviderPayPal, issued, req, dueDate)
	if err != nil {
		s.logger.Error("Remote PayPal invoice sent but local persist failed, reconcile manually",
			zap.String("panel_id", panelID.String()),
			zap.String("provider_invoice_id", issued.ProviderInvoiceID),
			zap.Error(err))
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// CheckPayment asks the provider whether an invoice has been paid and
// updates the local row when it has.
func (s *InvoiceService) CheckPayment(ctx context.Context, panelID, invoiceID uuid.UUID) (*CheckPaymentResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, panelID, invoiceID)
	if err != nil {
		return nil, err
	}

	// Paid is terminal; no need to ask the provider again
	if invoice.IsPaid() {
		return &CheckPaymentResponse{IsPaid: true, PaidAt: invoice.PaidAt}, nil
	}

	var status *billing.PaymentStatus
	switch invoice.Provider {
	case billing.ProviderStripe:
		creds, err := s.credentials.ResolveStripe(ctx, panelID)
		if err != nil {
			return nil, err
		}
		status, err = s.stripe.GetPaymentStatus(ctx, creds, invoice.ProviderInvoiceID)
		if err != nil {
			return nil, err
		}
	case billing.ProviderPayPal:
		creds, err := s.credentials.ResolvePayPal(ctx, panelID)
		if err != nil {
			return nil, err
		}
		status, err = s.paypal.GetPaymentStatus(ctx, creds, invoice.ProviderInvoiceID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, shared.NewDomainError("INVALID_PROVIDER", "Unknown invoice provider")
	}

	if status.Paid {
		paidAt := time.Now()
		if status.PaidAt != nil {
			paidAt = *status.PaidAt
		}
		if err := s.invoiceRepo.MarkPaid(ctx, panelID, invoiceID, paidAt); err != nil {
			return nil, err
		}
		return &CheckPaymentResponse{IsPaid: true, PaidAt: &paidAt}, nil
	}
	return &CheckPaymentResponse{IsPaid: false}, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, panelID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, panelID, invoiceID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices with filtering and pagination
func (s *InvoiceService) List(ctx context.Context, panelID uuid.UUID, filter ListFilter) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx, panelID, filter.ToDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponses(invoices), nil
}

// ListByClient retrieves all invoices for one client
func (s *InvoiceService) ListByClient(ctx context.Context, panelID, clientID uuid.UUID, filter ListFilter) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindByClient(ctx, panelID, clientID, filter.ToDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponses(invoices), nil
}

// SetPinned flips the pinned flag
func (s *InvoiceService) SetPinned(ctx context.Context, panelID, invoiceID uuid.UUID, pinned bool) error {
	if _, err := s.invoiceRepo.FindByID(ctx, panelID, invoiceID); err != nil {
		return err
	}
	return s.invoiceRepo.SetPinned(ctx, panelID, invoiceID, pinned)
}

// Delete deletes the local mirror row. The remote invoice is untouched.
func (s *InvoiceService) Delete(ctx context.Context, panelID, invoiceID uuid.UUID) error {
	if _, err := s.invoiceRepo.FindByID(ctx, panelID, invoiceID); err != nil {
		return err
	}
	return s.invoiceRepo.Delete(ctx, panelID, invoiceID)
}

// validateIssueRequest runs every local check before a provider is
// contacted: the client must exist, have an email, and the amount must be
// positive.
func (s *InvoiceService) validateIssueRequest(ctx context.Context, panelID uuid.UUID, req IssueInvoiceRequest) (*panel.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, panelID, req.ClientID)
	if err != nil {
		return nil, err
	}
	if !client.HasEmail() {
		return nil, shared.NewDomainError("CLIENT_EMAIL_REQUIRED", "This client has no email address!")
	}
	if !req.Amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Please enter an amount")
	}
	return client, nil
}

func (s *InvoiceService) persistIssued(ctx context.Context, panelID, clientID uuid.UUID, provider billing.Provider, issued *billing.IssuedInvoice, req IssueInvoiceRequest, dueDate time.Time) (*billing.Invoice, error) {
	invoice, err := billing.NewInvoice(panelID, clientID, provider, issued.ProviderInvoiceID, issued.HostedURL, req.Amount, &dueDate, req.Title, req.Memo)
	if err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) dueDateOrDefault(due *time.Time) time.Time {
	if due != nil {
		return *due
	}
	return time.Now().AddDate(0, 0, defaultDueDays)
}

// StripHTML reduces rich text to plain text for provider payloads
func StripHTML(in string) string {
	return strings.TrimSpace(htmlTagRegex.ReplaceAllString(in, ""))
}
