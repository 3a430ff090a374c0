package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/billing"
)

func testPayPalCreds() billing.PayPalCredentials {
	return billing.PayPalCredentials{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Source:       billing.CredentialSourceEnvironment,
	}
}

func TestPayPalConfig_Validate(t *testing.T) {
	t.Run("rejects missing API base", func(t *testing.T) {
		config := &PayPalConfig{}
		assert.ErrorIs(t, config.Validate(), ErrPayPalMissingAPIBase)
	})

	t.Run("clamps negative send delay", func(t *testing.T) {
		config := &PayPalConfig{APIBase: "https://api-m.paypal.com", SendDelay: -time.Second}
		require.NoError(t, config.Validate())
		assert.Equal(t, time.Duration(0), config.SendDelay)
	})
}

func TestPayPalAdapter_IssueInvoice(t *testing.T) {
	var tokenRequests, createRequests, sendRequests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/v1/oauth2/token":
			tokenRequests++
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "client-id", user)
			assert.Equal(t, "client-secret", pass)
			json.NewEncoder(w).Encode(paypalTokenResponse{AccessToken: "token-abc", TokenType: "Bearer"})

		case r.URL.Path == "/v2/invoicing/invoices" && r.Method == http.MethodPost:
			createRequests++
			assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

			var draft paypalCreateInvoiceRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
			assert.Equal(t, "USD", draft.Detail.CurrencyCode)
			assert.Equal(t, "250.00", draft.Items[0].UnitAmount.Value)
			assert.Equal(t, "client@example.com", draft.PrimaryRecipients[0].BillingInfo.EmailAddress)
			assert.Equal(t, "Payment due promptly", draft.Detail.TermsAndConditions)
			assert.Equal(t, "Ember Studio", draft.Invoicer.BusinessName)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(paypalCreateInvoiceResponse{
				Href: server0URL(r) + "/v2/invoicing/invoices/INV2-AAAA-BBBB",
			})

		case r.URL.Path == "/v2/invoicing/invoices/INV2-AAAA-BBBB/send":
			sendRequests++
			w.WriteHeader(http.StatusOK)

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	adapter, err := NewPayPalAdapter(&PayPalConfig{APIBase: server.URL})
	require.NoError(t, err)

	issued, err := adapter.IssueInvoice(context.Background(), testPayPalCreds(), billing.PayPalInvoiceInput{
		RecipientName:  "skyline",
		RecipientEmail: "client@example.com",
		Amount:         decimal.NewFromInt(250),
		DueDate:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Title:          "Website build",
		Terms:          "Payment due promptly",
		InvoicerName:   "Ember Studio",
	})

	require.NoError(t, err)
	assert.Equal(t, "INV2-AAAA-BBBB", issued.ProviderInvoiceID)
	assert.Equal(t, "https://www.paypal.com/invoice/p/#INV2AAAABBBB", issued.HostedURL)
	assert.Equal(t, 1, tokenRequests)
	assert.Equal(t, 1, createRequests)
	assert.Equal(t, 1, sendRequests)
}

// server0URL rebuilds the test server origin from the incoming request
func server0URL(r *http.Request) string {
	return "http://" + r.Host
}

func TestPayPalAdapter_IssueInvoice_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(paypalErrorResponse{Name: "AUTHENTICATION_FAILURE", Message: "Authentication failed"})
	}))
	defer server.Close()

	adapter, err := NewPayPalAdapter(&PayPalConfig{APIBase: server.URL})
	require.NoError(t, err)

	_, err = adapter.IssueInvoice(context.Background(), testPayPalCreds(), billing.PayPalInvoiceInput{
		RecipientEmail: "client@example.com",
		Amount:         decimal.NewFromInt(100),
		DueDate:        time.Now(),
		Title:          "Job",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Authentication failed")
}

func TestPayPalAdapter_GetPaymentStatus(t *testing.T) {
	t.Run("paid invoice", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/oauth2/token" {
				json.NewEncoder(w).Encode(paypalTokenResponse{AccessToken: "token-abc"})
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":     "INV2-AAAA-BBBB",
				"status": "PAID",
				"payments": map[string]interface{}{
					"transactions": []map[string]interface{}{
						{"payment_date": "2026-02-10"},
					},
				},
			})
		}))
		defer server.Close()

		adapter, err := NewPayPalAdapter(&PayPalConfig{APIBase: server.URL})
		require.NoError(t, err)

		status, err := adapter.GetPaymentStatus(context.Background(), testPayPalCreds(), "INV2-AAAA-BBBB")

		require.NoError(t, err)
		assert.True(t, status.Paid)
		require.NotNil(t, status.PaidAt)
		assert.Equal(t, 2026, status.PaidAt.Year())
	})

	t.Run("unpaid invoice", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/oauth2/token" {
				json.NewEncoder(w).Encode(paypalTokenResponse{AccessToken: "token-abc"})
				return
			}
			json.NewEncoder(w).Encode(paypalGetInvoiceResponse{ID: "INV2-AAAA-BBBB", Status: "SENT"})
		}))
		defer server.Close()

		adapter, err := NewPayPalAdapter(&PayPalConfig{APIBase: server.URL})
		require.NoError(t, err)

		status, err := adapter.GetPaymentStatus(context.Background(), testPayPalCreds(), "INV2-AAAA-BBBB")

		require.NoError(t, err)
		assert.False(t, status.Paid)
		assert.Nil(t, status.PaidAt)
	})
}

func TestInvoiceIDFromHref(t *testing.T) {
	assert.Equal(t, "INV2-AAAA-BBBB", InvoiceIDFromHref("https://api-m.paypal.com/v2/invoicing/invoices/INV2-AAAA-BBBB"))
	assert.Equal(t, "INV2-AAAA-BBBB", InvoiceIDFromHref("https://api-m.paypal.com/v2/invoicing/invoices/INV2-AAAA-BBBB/"))
	assert.Equal(t, "", InvoiceIDFromHref(""))
}

func TestPayPalInvoiceLink(t *testing.T) {
	assert.Equal(t, "https://www.paypal.com/invoice/p/#INV2AAAABBBB", PayPalInvoiceLink("INV2-AAAA-BBBB"))
}
