package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/billing"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
)

// StripeAdapter implements billing.StripeGateway using the official
// Stripe SDK. A fresh API client is built per call because every panel
// may bring its own secret key.
type StripeAdapter struct {
	backend stripe.Backend
}

// NewStripeAdapter creates a new Stripe adapter
func NewStripeAdapter() *StripeAdapter {
	return &StripeAdapter{}
}

// NewStripeAdapterWithBackend creates an adapter whose API clients route
// through the given backend instead of the Stripe HTTP transport. Used in
// tests.
func NewStripeAdapterWithBackend(backend stripe.Backend) *StripeAdapter {
	return &StripeAdapter{backend: backend}
}

func (a *StripeAdapter) api(creds billing.StripeCredentials) (*client.API, error) {
	if creds.SecretKey == "" {
		return nil, shared.ErrProviderNotConfigured
	}
	sc := &client.API{}
	var backends *stripe.Backends
	if a.backend != nil {
		backends = &stripe.Backends{API: a.backend, Connect: a.backend, Uploads: a.backend}
	}
	sc.Init(creds.SecretKey, backends)
	return sc, nil
}

// IssueInvoice runs the full issuance sequence: ensure a customer exists
// for the email, create the invoice and its line item, finalize and send
func (a *StripeAdapter) IssueInvoice(ctx context.Context, creds billing.StripeCredentials, in billing.StripeInvoiceInput) (*billing.IssuedInvoice, error) {
	sc, err := a.api(creds)
	if err != nil {
		return nil, err
	}

	customerID, created, err := a.ensureCustomer(ctx, sc, in)
	if err != nil {
		return nil, err
	}

	invoiceParams := &stripe.InvoiceParams{
		Params:           stripe.Params{Context: ctx},
		Customer:         stripe.String(customerID),
		CollectionMethod: stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		Currency:         stripe.String(string(stripe.CurrencyUSD)),
		DueDate:          stripe.Int64(in.DueDate.Unix()),
	}
	if in.Memo != "" {
		invoiceParams.Description = stripe.String(in.Memo)
	}
	if in.ClientID != "" {
		invoiceParams.AddMetadata("client_id", in.ClientID)
	}

	invoice, err := sc.Invoices.New(invoiceParams)
	if err != nil {
		return nil, fmt.Errorf("stripe: create invoice: %w", err)
	}

	_, err = sc.InvoiceItems.New(&stripe.InvoiceItemParams{
		Params:      stripe.Params{Context: ctx},
		Customer:    stripe.String(customerID),
		Invoice:     stripe.String(invoice.ID),
		Amount:      stripe.Int64(amountToCents(in.Amount)),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(in.Title),
	})
	if err != nil {
		return nil, fmt.Errorf("stripe: add line item: %w", err)
	}

	finalized, err := sc.Invoices.FinalizeInvoice(invoice.ID, &stripe.InvoiceFinalizeInvoiceParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("stripe: finalize invoice: %w", err)
	}

	sent, err := sc.Invoices.SendInvoice(finalized.ID, &stripe.InvoiceSendInvoiceParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("stripe: send invoice: %w", err)
	}

	return &billing.IssuedInvoice{
		ProviderInvoiceID: sent.ID,
		HostedURL:         sent.HostedInvoiceURL,
		CustomerID:        customerID,
		CustomerCreated:   created,
	}, nil
}

// VoidInvoice cancels a remote invoice
func (a *StripeAdapter) VoidInvoice(ctx context.Context, creds billing.StripeCredentials, providerInvoiceID string) error {
	sc, err := a.api(creds)
	if err != nil {
		return err
	}
	if _, err := sc.Invoices.VoidInvoice(providerInvoiceID, &stripe.InvoiceVoidInvoiceParams{
		Params: stripe.Params{Context: ctx},
	}); err != nil {
		return fmt.Errorf("stripe: void invoice: %w", err)
	}
	return nil
}

// GetPaymentStatus retrieves the remote payment state of an invoice
func (a *StripeAdapter) GetPaymentStatus(ctx context.Context, creds billing.StripeCredentials, providerInvoiceID string) (*billing.PaymentStatus, error) {
	sc, err := a.api(creds)
	if err != nil {
		return nil, err
	}

	invoice, err := sc.Invoices.Get(providerInvoiceID, &stripe.InvoiceParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("stripe: get invoice: %w", err)
	}

	status := &billing.PaymentStatus{Paid: invoice.Status == stripe.InvoiceStatusPaid}
	if status.Paid && invoice.StatusTransitions != nil && invoice.StatusTransitions.PaidAt > 0 {
		paidAt := time.Unix(invoice.StatusTransitions.PaidAt, 0)
		status.PaidAt = &paidAt
	}
	return status, nil
}

// ensureCustomer returns the remote customer to bill. A stored customer ID
// wins; otherwise the email is searched and a new customer is created only
// when no match exists.
func (a *StripeAdapter) ensureCustomer(ctx context.Context, sc *client.API, in billing.StripeInvoiceInput) (string, bool, error) {
	if in.CustomerID != "" {
		return in.CustomerID, false, nil
	}

	searchParams := &stripe.CustomerSearchParams{
		SearchParams: stripe.SearchParams{
			Context: ctx,
			Query:   fmt.Sprintf("email:'%s'", in.CustomerEmail),
		},
	}
	iter := sc.Customers.Search(searchParams)
	if iter.Next() {
		return iter.Customer().ID, false, nil
	}
	if err := iter.Err(); err != nil {
		return "", false, fmt.Errorf("stripe: search customer: %w", err)
	}

	customer, err := sc.Customers.New(&stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(in.CustomerEmail),
		Name:   stripe.String(in.CustomerName),
	})
	if err != nil {
		return "", false, fmt.Errorf("stripe: create customer: %w", err)
	}
	return customer.ID, true, nil
}

// amountToCents converts a decimal major-unit amount to Stripe's integer
// minor units
func amountToCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
