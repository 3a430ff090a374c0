package panel

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewQuote_Defaults(t *testing.T) {
	panelID := uuid.New()
	clientID := uuid.New()

	quote, err := NewQuote(panelID, clientID, "Logo design", decimal.NewFromInt(500), PaymentTermsHalfHalf)

	assert.NoError(t, err)
	assert.Equal(t, QuoteStatusPending, quote.Status)
	assert.Equal(t, panelID, quote.PanelID)
	assert.Equal(t, clientID, quote.ClientID)
	assert.True(t, quote.IsPending())
	assert.False(t, quote.IsDecided())
}

func TestNewQuote_EmptyTitle(t *testing.T) {
	_, err := NewQuote(uuid.New(), uuid.New(), "", decimal.NewFromInt(500), PaymentTermsFullBefore)
	assert.Error(t, err)
}

func TestNewQuote_NegativeAmount(t *testing.T) {
	_, err := NewQuote(uuid.New(), uuid.New(), "Logo design", decimal.NewFromInt(-1), PaymentTermsFullBefore)
	assert.Error(t, err)
}

func TestNewQuote_InvalidPaymentTerms(t *testing.T) {
	_, err := NewQuote(uuid.New(), uuid.New(), "Logo design", decimal.NewFromInt(500), PaymentTerms("monthly"))
	assert.Error(t, err)
}

func TestQuote_IsDecided(t *testing.T) {
	quote, err := NewQuote(uuid.New(), uuid.New(), "Logo design", decimal.NewFromInt(500), PaymentTermsFullAfter)
	assert.NoError(t, err)

	quote.Status = QuoteStatusAccepted
	assert.True(t, quote.IsDecided())
	assert.False(t, quote.IsPending())

	quote.Status = QuoteStatusRejected
	assert.True(t, quote.IsDecided())
}
