package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/form"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/billing"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
)

// mockBackend implements stripe.Backend for testing. Plain API calls go
// through handler; list/search endpoints encode their params up front and
// arrive via CallRaw, so searches go through rawHandler.
type mockBackend struct {
	calls      []string
	handler    func(method, path string, params stripe.ParamsContainer) ([]byte, error)
	rawHandler func(method, path string) ([]byte, error)
}

func (m *mockBackend) Call(method, path, key string, params stripe.ParamsContainer, v stripe.LastResponseSetter) error {
	m.calls = append(m.calls, method+" "+path)
	data, err := m.handler(method, path, params)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (m *mockBackend) CallStreaming(method, path, key string, params stripe.ParamsContainer, v stripe.StreamingLastResponseSetter) error {
	return nil
}

func (m *mockBackend) CallRaw(method, path, key string, body *form.Values, params *stripe.Params, v stripe.LastResponseSetter) error {
	m.calls = append(m.calls, method+" "+path)
	if m.rawHandler == nil {
		return nil
	}
	data, err := m.rawHandler(method, path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (m *mockBackend) CallMultipart(method, path, key, boundary string, body *bytes.Buffer, params *stripe.Params, v stripe.LastResponseSetter) error {
	return nil
}

func (m *mockBackend) SetMaxNetworkRetries(maxNetworkRetries int64) {}

func (m *mockBackend) called(call string) bool {
	for _, c := range m.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (m *mockBackend) indexOf(call string) int {
	for i, c := range m.calls {
		if c == call {
			return i
		}
	}
	return -1
}

func testStripeCreds() billing.StripeCredentials {
	return billing.StripeCredentials{
		SecretKey: "sk_test_123456789",
		Source:    billing.CredentialSourcePanel,
	}
}

func testStripeInput() billing.StripeInvoiceInput {
	return billing.StripeInvoiceInput{
		CustomerEmail: "ada@example.com",
		CustomerName:  "Ada Lovelace",
		Amount:        decimal.NewFromFloat(125.50),
		DueDate:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Title:         "Landing page build",
		Memo:          "Milestone 1",
		ClientID:      "c1",
	}
}

// searchResultJSON builds a customer search response with the given IDs
func searchResultJSON(ids ...string) []byte {
	customers := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		customers = append(customers, map[string]any{"id": id, "object": "customer"})
	}
	data, _ := json.Marshal(map[string]any{
		"object":      "search_result",
		"url":         "/v1/customers/search",
		"has_more":    false,
		"total_count": len(ids),
		"data":        customers,
	})
	return data
}

// invoiceHandler serves the invoice issuance endpoints for a single
// invoice in_123
func invoiceHandler(t *testing.T) func(method, path string, params stripe.ParamsContainer) ([]byte, error) {
	t.Helper()
	return func(method, path string, params stripe.ParamsContainer) ([]byte, error) {
		switch {
		case method == http.MethodPost && path == "/v1/customers":
			return []byte(`{"id":"cus_new","object":"customer"}`), nil
		case method == http.MethodPost && path == "/v1/invoices":
			return []byte(`{"id":"in_123","status":"draft"}`), nil
		case method == http.MethodPost && path == "/v1/invoiceitems":
			return []byte(`{"id":"ii_1"}`), nil
		case method == http.MethodPost && path == "/v1/invoices/in_123/finalize":
			return []byte(`{"id":"in_123","status":"open"}`), nil
		case method == http.MethodPost && path == "/v1/invoices/in_123/send":
			return []byte(`{"id":"in_123","status":"open","hosted_invoice_url":"https://invoice.stripe.test/in_123"}`), nil
		}
		return nil, fmt.Errorf("unexpected call: %s %s", method, path)
	}
}

func TestStripeAdapter_IssueInvoice_ReusesMatchedCustomer(t *testing.T) {
	mock := &mockBackend{
		handler: invoiceHandler(t),
		rawHandler: func(method, path string) ([]byte, error) {
			if method == http.MethodGet && path == "/v1/customers/search" {
				return searchResultJSON("cus_existing"), nil
			}
			return nil, fmt.Errorf("unexpected raw call: %s %s", method, path)
		},
	}
	adapter := NewStripeAdapterWithBackend(mock)

	issued, err := adapter.IssueInvoice(context.Background(), testStripeCreds(), testStripeInput())

	require.NoError(t, err)
	assert.Equal(t, "cus_existing", issued.CustomerID)
	assert.False(t, issued.CustomerCreated)
	assert.False(t, mock.called("POST /v1/customers"), "matched customer must be reused, not recreated")
	assert.Equal(t, "in_123", issued.ProviderInvoiceID)
}

func TestStripeAdapter_IssueInvoice_CreatesCustomerWhenNoMatch(t *testing.T) {
	mock := &mockBackend{
		handler: invoiceHandler(t),
		rawHandler: func(method, path string) ([]byte, error) {
			return searchResultJSON(), nil
		},
	}
	adapter := NewStripeAdapterWithBackend(mock)

	issued, err := adapter.IssueInvoice(context.Background(), testStripeCreds(), testStripeInput())

	require.NoError(t, err)
	assert.Equal(t, "cus_new", issued.CustomerID)
	assert.True(t, issued.CustomerCreated)
	assert.True(t, mock.called("POST /v1/customers"))
}

func TestStripeAdapter_IssueInvoice_StoredCustomerSkipsLookup(t *testing.T) {
	mock := &mockBackend{handler: invoiceHandler(t)}
	adapter := NewStripeAdapterWithBackend(mock)

	in := testStripeInput()
	in.CustomerID = "cus_known"
	issued, err := adapter.IssueInvoice(context.Background(), testStripeCreds(), in)

	require.NoError(t, err)
	assert.Equal(t, "cus_known", issued.CustomerID)
	assert.False(t, issued.CustomerCreated)
	assert.False(t, mock.called("GET /v1/customers/search"))
	assert.False(t, mock.called("POST /v1/customers"))
}

func TestStripeAdapter_IssueInvoice_FinalizesThenSends(t *testing.T) {
	mock := &mockBackend{
		handler: invoiceHandler(t),
		rawHandler: func(method, path string) ([]byte, error) {
			return searchResultJSON("cus_existing"), nil
		},
	}
	adapter := NewStripeAdapterWithBackend(mock)

	issued, err := adapter.IssueInvoice(context.Background(), testStripeCreds(), testStripeInput())

	require.NoError(t, err)
	assert.Equal(t, "https://invoice.stripe.test/in_123", issued.HostedURL)

	create := mock.indexOf("POST /v1/invoices")
	item := mock.indexOf("POST /v1/invoiceitems")
	finalize := mock.indexOf("POST /v1/invoices/in_123/finalize")
	send := mock.indexOf("POST /v1/invoices/in_123/send")
	require.NotEqual(t, -1, create)
	require.NotEqual(t, -1, item)
	require.NotEqual(t, -1, finalize)
	require.NotEqual(t, -1, send)
	assert.Less(t, create, item)
	assert.Less(t, item, finalize)
	assert.Less(t, finalize, send)
}

func TestStripeAdapter_MissingSecretKey(t *testing.T) {
	mock := &mockBackend{handler: invoiceHandler(t)}
	adapter := NewStripeAdapterWithBackend(mock)
	creds := billing.StripeCredentials{}

	_, err := adapter.IssueInvoice(context.Background(), creds, testStripeInput())
	assert.ErrorIs(t, err, shared.ErrProviderNotConfigured)

	err = adapter.VoidInvoice(context.Background(), creds, "in_123")
	assert.ErrorIs(t, err, shared.ErrProviderNotConfigured)

	_, err = adapter.GetPaymentStatus(context.Background(), creds, "in_123")
	assert.ErrorIs(t, err, shared.ErrProviderNotConfigured)

	assert.Empty(t, mock.calls)
}

func TestStripeAdapter_VoidInvoice(t *testing.T) {
	mock := &mockBackend{
		handler: func(method, path string, params stripe.ParamsContainer) ([]byte, error) {
			if method == http.MethodPost && path == "/v1/invoices/in_123/void" {
				return []byte(`{"id":"in_123","status":"void"}`), nil
			}
			return nil, fmt.Errorf("unexpected call: %s %s", method, path)
		},
	}
	adapter := NewStripeAdapterWithBackend(mock)

	err := adapter.VoidInvoice(context.Background(), testStripeCreds(), "in_123")

	require.NoError(t, err)
	assert.True(t, mock.called("POST /v1/invoices/in_123/void"))
}

func TestStripeAdapter_GetPaymentStatus(t *testing.T) {
	paidAt := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		response string
		wantPaid bool
		wantAt   *time.Time
	}{
		{
			name:     "paid invoice",
			response: fmt.Sprintf(`{"id":"in_123","status":"paid","status_transitions":{"paid_at":%d}}`, paidAt.Unix()),
			wantPaid: true,
			wantAt:   &paidAt,
		},
		{
			name:     "open invoice",
			response: `{"id":"in_123","status":"open"}`,
			wantPaid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockBackend{
				handler: func(method, path string, params stripe.ParamsContainer) ([]byte, error) {
					if method == http.MethodGet && path == "/v1/invoices/in_123" {
						return []byte(tt.response), nil
					}
					return nil, fmt.Errorf("unexpected call: %s %s", method, path)
				},
			}
			adapter := NewStripeAdapterWithBackend(mock)

			status, err := adapter.GetPaymentStatus(context.Background(), testStripeCreds(), "in_123")

			require.NoError(t, err)
			assert.Equal(t, tt.wantPaid, status.Paid)
			if tt.wantAt != nil {
				require.NotNil(t, status.PaidAt)
				assert.True(t, tt.wantAt.Equal(*status.PaidAt))
			} else {
				assert.Nil(t, status.PaidAt)
			}
		})
	}
}

func TestAmountToCents(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"125.50", 12550},
		{"0.01", 1},
		{"1000", 100000},
		{"19.999", 2000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, amountToCents(decimal.RequireFromString(tt.amount)), "amount %s", tt.amount)
	}
}
