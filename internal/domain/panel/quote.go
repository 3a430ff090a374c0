package panel

import (
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteStatus represents the decision state of a quote
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// PaymentTerms represents how payment is split around the work
type PaymentTerms string

const (
	PaymentTermsFullBefore PaymentTerms = "100_before"
	PaymentTermsFullAfter  PaymentTerms = "100_after"
	PaymentTermsHalfHalf   PaymentTerms = "50_50"
	PaymentTermsQuarter    PaymentTerms = "25_75"
	PaymentTermsCustom     PaymentTerms = "custom"
)

// Quote proposes a future commission to a client. Once accepted or
// rejected the decision is terminal; there is no path back to pending.
type Quote struct {
	shared.PanelEntity
	ClientID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title          string          `gorm:"type:varchar(200);not null"`
	ProposedAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	StartDate      *time.Time      `gorm:"type:date"`
	Deadline       *time.Time      `gorm:"type:date"`
	PaymentTerms   PaymentTerms    `gorm:"type:varchar(20);not null;default:'100_before'"`
	Status         QuoteStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (Quote) TableName() string {
	return "panel_quotes"
}

// NewQuote creates a new pending quote
func NewQuote(panelID, clientID uuid.UUID, title string, proposedAmount decimal.Decimal, terms PaymentTerms) (*Quote, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Quote title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Quote title cannot exceed 200 characters")
	}
	if proposedAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Proposed amount cannot be negative")
	}
	if err := validatePaymentTerms(terms); err != nil {
		return nil, err
	}
	return &Quote{
		PanelEntity:    shared.NewPanelEntity(panelID),
		ClientID:       clientID,
		Title:          title,
		ProposedAmount: proposedAmount,
		PaymentTerms:   terms,
		Status:         QuoteStatusPending,
	}, nil
}

// IsPending reports whether the quote is still awaiting a decision
func (q *Quote) IsPending() bool {
	return q.Status == QuoteStatusPending
}

// IsDecided reports whether the quote has reached a terminal state
func (q *Quote) IsDecided() bool {
	return q.Status == QuoteStatusAccepted || q.Status == QuoteStatusRejected
}

func validatePaymentTerms(terms PaymentTerms) error {
	switch terms {
	case PaymentTermsFullBefore, PaymentTermsFullAfter, PaymentTermsHalfHalf,
		PaymentTermsQuarter, PaymentTermsCustom:
		return nil
	default:
		return shared.NewDomainError("INVALID_PAYMENT_TERMS", "Invalid payment terms")
	}
}
