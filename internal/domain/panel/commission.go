package panel

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionStatus represents the lifecycle status of a commission
type CommissionStatus string

const (
	CommissionStatusNotStarted CommissionStatus = "not_started"
	CommissionStatusInProgress CommissionStatus = "in_progress"
	CommissionStatusCompleted  CommissionStatus = "completed"
	CommissionStatusCancelled  CommissionStatus = "cancelled"
	CommissionStatusPaused     CommissionStatus = "paused"
)

// PaidPercentages are the supported "mark paid" shortcuts
var PaidPercentages = []int{10, 25, 50, 75, 100}

// Commission represents a freelance project for a client
type Commission struct {
	shared.PanelEntity
	ClientID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Title      string           `gorm:"type:varchar(200);not null"`
	TotalValue decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	TotalPaid  decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	StartDate  *time.Time       `gorm:"type:date"`
	Deadline   *time.Time       `gorm:"type:date"`
	Status     CommissionStatus `gorm:"type:varchar(20);not null;default:'not_started'"`
	TrackingID string           `gorm:"type:varchar(32);not null;uniqueIndex"` // Public lookup token
	Pinned     bool             `gorm:"not null;default:false"`
	ProductID  *uuid.UUID       `gorm:"type:uuid"`
	Notes      string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Commission) TableName() string {
	return "panel_commissions"
}

// NewCommission creates a new commission with a generated tracking ID
func NewCommission(panelID, clientID uuid.UUID, title string, totalValue decimal.Decimal) (*Commission, error) {
	if err := validateCommissionTitle(title); err != nil {
		return nil, err
	}
	if totalValue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_VALUE", "Commission value cannot be negative")
	}
	return &Commission{
		PanelEntity: shared.NewPanelEntity(panelID),
		ClientID:    clientID,
		Title:       title,
		TotalValue:  totalValue,
		TotalPaid:   decimal.Zero,
		Status:      CommissionStatusNotStarted,
		TrackingID:  newTrackingID(),
	}, nil
}

// Update updates the commission's editable fields
func (c *Commission) Update(title string, totalValue, totalPaid decimal.Decimal, startDate, deadline *time.Time, notes string) error {
	if err := validateCommissionTitle(title); err != nil {
		return err
	}
	if totalValue.IsNegative() || totalPaid.IsNegative() {
		return shared.NewDomainError("INVALID_VALUE", "Amounts cannot be negative")
	}
	if totalPaid.GreaterThan(totalValue) {
		return shared.NewDomainError("INVALID_VALUE", "Paid amount cannot exceed the commission value")
	}
	c.Title = title
	c.TotalValue = totalValue
	c.TotalPaid = totalPaid
	c.StartDate = startDate
	c.Deadline = deadline
	c.Notes = notes
	c.UpdatedAt = time.Now()
	return nil
}

// ChangeStatus moves the commission to a new status
func (c *Commission) ChangeStatus(status CommissionStatus) error {
	if err := validateCommissionStatus(status); err != nil {
		return err
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	return nil
}

// SetProduct links or unlinks a panel product
func (c *Commission) SetProduct(productID *uuid.UUID) {
	c.ProductID = productID
	c.UpdatedAt = time.Now()
}

// SetPinned sets the pinned flag
func (c *Commission) SetPinned(pinned bool) {
	c.Pinned = pinned
	c.UpdatedAt = time.Now()
}

// PaidAmountForPercent returns total_value scaled by the given percentage.
// Only the percentages in PaidPercentages are accepted.
func (c *Commission) PaidAmountForPercent(percent int) (decimal.Decimal, error) {
	if !ValidPaidPercent(percent) {
		return decimal.Zero, shared.NewDomainError("INVALID_PERCENT", "Paid percentage must be one of 10, 25, 50, 75, 100")
	}
	return c.TotalValue.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100)), nil
}

// IsFullyPaid reports whether total_paid has reached total_value
func (c *Commission) IsFullyPaid() bool {
	return !c.TotalValue.IsZero() && c.TotalPaid.GreaterThanOrEqual(c.TotalValue)
}

// ValidPaidPercent reports whether percent is a supported shortcut
func ValidPaidPercent(percent int) bool {
	for _, p := range PaidPercentages {
		if p == percent {
			return true
		}
	}
	return false
}

func validateCommissionTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Commission title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Commission title cannot exceed 200 characters")
	}
	return nil
}

func validateCommissionStatus(status CommissionStatus) error {
	switch status {
	case CommissionStatusNotStarted, CommissionStatusInProgress, CommissionStatusCompleted,
		CommissionStatusCancelled, CommissionStatusPaused:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invalid commission status")
	}
}

// newTrackingID generates an opaque public token for the tracking page
func newTrackingID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}
