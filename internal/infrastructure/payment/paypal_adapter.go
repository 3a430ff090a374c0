package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/billing"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
)

const (
	paypalDateLayout = "2006-01-02"
	paypalInvoiceURL = "https://www.paypal.com/invoice/p/#"
)

// PayPalAdapter implements billing.PayPalGateway against the PayPal
// Invoicing v2 REST API
type PayPalAdapter struct {
	config     *PayPalConfig
	httpClient *http.Client
}

// NewPayPalAdapter creates a new PayPal adapter
func NewPayPalAdapter(config *PayPalConfig) (*PayPalAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &PayPalAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// IssueInvoice creates a draft invoice, waits for it to become sendable
// and sends it to the recipient
func (a *PayPalAdapter) IssueInvoice(ctx context.Context, creds billing.PayPalCredentials, in billing.PayPalInvoiceInput) (*billing.IssuedInvoice, error) {
	token, err := a.fetchToken(ctx, creds)
	if err != nil {
		return nil, err
	}

	invoiceID, err := a.createDraft(ctx, token, in)
	if err != nil {
		return nil, err
	}

	if a.config.SendDelay > 0 {
		select {
		case <-time.After(a.config.SendDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err := a.sendInvoice(ctx, token, invoiceID); err != nil {
		return nil, err
	}

	return &billing.IssuedInvoice{
		ProviderInvoiceID: invoiceID,
		HostedURL:         PayPalInvoiceLink(invoiceID),
	}, nil
}

// GetPaymentStatus retrieves the remote payment state of an invoice
func (a *PayPalAdapter) GetPaymentStatus(ctx context.Context, creds billing.PayPalCredentials, providerInvoiceID string) (*billing.PaymentStatus, error) {
	token, err := a.fetchToken(ctx, creds)
	if err != nil {
		return nil, err
	}

	endpoint := a.config.APIBase + "/v2/invoicing/invoices/" + url.PathEscape(providerInvoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paypal: get invoice: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, a.apiError("get invoice", resp)
	}

	var invoice paypalGetInvoiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&invoice); err != nil {
		return nil, fmt.Errorf("paypal: decode invoice: %w", err)
	}

	status := &billing.PaymentStatus{
		Paid: invoice.Status == "PAID" || invoice.Status == "MARKED_AS_PAID",
	}
	if status.Paid && invoice.Payments != nil && len(invoice.Payments.Transactions) > 0 {
		if paidAt, err := time.Parse(paypalDateLayout, invoice.Payments.Transactions[0].PaymentDate); err == nil {
			status.PaidAt = &paidAt
		}
	}
	return status, nil
}

// fetchToken performs an OAuth2 client-credentials grant. Invoicing calls
// are infrequent enough that tokens are not cached across calls; every
// panel may use different credentials anyway.
func (a *PayPalAdapter) fetchToken(ctx context.Context, creds billing.PayPalCredentials) (string, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return "", shared.ErrProviderNotConfigured
	}

	body := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.APIBase+"/v1/oauth2/token", body)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(creds.ClientID, creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("paypal: token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", a.apiError("token request", resp)
	}

	var token paypalTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("paypal: decode token: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("paypal: empty access token: %w", shared.ErrProviderFailure)
	}
	return token.AccessToken, nil
}

// createDraft creates a draft invoice and returns its ID
func (a *PayPalAdapter) createDraft(ctx context.Context, token string, in billing.PayPalInvoiceInput) (string, error) {
	draft := paypalCreateInvoiceRequest{
		Detail: paypalInvoiceDetail{
			CurrencyCode:       "USD",
			Note:               in.Memo,
			TermsAndConditions: in.Terms,
			PaymentTerm: &paypalPaymentTerm{
				TermType: "DUE_ON_DATE_SPECIFIED",
				DueDate:  in.DueDate.Format(paypalDateLayout),
			},
		},
		PrimaryRecipients: []paypalRecipient{
			{BillingInfo: paypalBillingInfo{
				Name:         &paypalName{GivenName: in.RecipientName},
				EmailAddress: in.RecipientEmail,
			}},
		},
		Items: []paypalItem{
			{
				Name:     in.Title,
				Quantity: "1",
				UnitAmount: paypalAmount{
					CurrencyCode: "USD",
					Value:        in.Amount.StringFixed(2),
				},
			},
		},
	}
	if in.InvoicerName != "" || in.InvoicerLogoURL != "" {
		draft.Invoicer = &paypalInvoicer{
			BusinessName: in.InvoicerName,
			LogoURL:      in.InvoicerLogoURL,
		}
	}

	payload, err := json.Marshal(draft)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.APIBase+"/v2/invoicing/invoices", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("paypal: create invoice: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", a.apiError("create invoice", resp)
	}

	var created paypalCreateInvoiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("paypal: decode create response: %w", err)
	}

	invoiceID := created.ID
	if invoiceID == "" {
		invoiceID = InvoiceIDFromHref(created.Href)
	}
	if invoiceID == "" {
		return "", fmt.Errorf("paypal: create response carried no invoice ID: %w", shared.ErrProviderFailure)
	}
	return invoiceID, nil
}

// sendInvoice moves a draft invoice to sent, which emails the recipient
func (a *PayPalAdapter) sendInvoice(ctx context.Context, token, invoiceID string) error {
	payload, err := json.Marshal(paypalSendInvoiceRequest{SendToInvoicer: false})
	if err != nil {
		return err
	}

	endpoint := a.config.APIBase + "/v2/invoicing/invoices/" + url.PathEscape(invoiceID) + "/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paypal: send invoice: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return a.apiError("send invoice", resp)
	}
	return nil
}

// apiError turns a non-success response into an error carrying the
// provider's own message when one is present
func (a *PayPalAdapter) apiError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var apiErr paypalErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("paypal: %s: %s (%s): %w", op, apiErr.Message, apiErr.Name, shared.ErrProviderFailure)
	}
	return fmt.Errorf("paypal: %s: status %d: %w", op, resp.StatusCode, shared.ErrProviderFailure)
}

// InvoiceIDFromHref extracts the invoice ID from a created-resource href
func InvoiceIDFromHref(href string) string {
	if href == "" {
		return ""
	}
	parts := strings.Split(strings.TrimRight(href, "/"), "/")
	return parts[len(parts)-1]
}

// PayPalInvoiceLink builds the customer-facing payment URL for an invoice.
// The fragment form takes the invoice ID with its dashes removed.
func PayPalInvoiceLink(invoiceID string) string {
	return paypalInvoiceURL + strings.ReplaceAll(invoiceID, "-", "")
}
