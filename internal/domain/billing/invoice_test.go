package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewInvoice_Defaults(t *testing.T) {
	invoice, err := NewInvoice(uuid.New(), uuid.New(), ProviderStripe, "in_123", "https://pay.stripe.com/i/in_123",
		decimal.NewFromInt(250), nil, "Logo design", "First half")

	assert.NoError(t, err)
	assert.Equal(t, InvoiceStatusUnpaid, invoice.Status)
	assert.Nil(t, invoice.PaidAt)
	assert.False(t, invoice.IsPaid())
}

func TestNewInvoice_RejectsNonPositiveAmount(t *testing.T) {
	_, err := NewInvoice(uuid.New(), uuid.New(), ProviderStripe, "in_123", "", decimal.Zero, nil, "", "")
	assert.Error(t, err)

	_, err = NewInvoice(uuid.New(), uuid.New(), ProviderStripe, "in_123", "", decimal.NewFromInt(-5), nil, "", "")
	assert.Error(t, err)
}

func TestNewInvoice_RejectsUnknownProvider(t *testing.T) {
	_, err := NewInvoice(uuid.New(), uuid.New(), Provider("square"), "in_123", "", decimal.NewFromInt(5), nil, "", "")
	assert.Error(t, err)
}

func TestInvoice_MarkPaid(t *testing.T) {
	invoice, err := NewInvoice(uuid.New(), uuid.New(), ProviderPayPal, "INV2-XXXX", "", decimal.NewFromInt(99), nil, "", "")
	assert.NoError(t, err)

	paidAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	invoice.MarkPaid(paidAt)

	assert.True(t, invoice.IsPaid())
	assert.Equal(t, paidAt, *invoice.PaidAt)
}
