package panel

import (
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestStatus represents the lifecycle status of a change request
type RequestStatus string

const (
	RequestStatusNotStarted RequestStatus = "not_started"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusPaused     RequestStatus = "paused"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
	RequestStatusRequested  RequestStatus = "requested"
	RequestStatusRejected   RequestStatus = "rejected"
)

// Request is a change request raised against an existing commission,
// either by the freelancer or by the end client through the tracking page.
type Request struct {
	shared.PanelEntity
	CommissionID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description   string          `gorm:"type:text;not null"`
	OfferedAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Deadline      *time.Time      `gorm:"type:date"`
	Status        RequestStatus   `gorm:"type:varchar(20);not null;default:'requested'"`
	Paid          bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Request) TableName() string {
	return "panel_requests"
}

// NewRequest creates a new change request in the requested state
func NewRequest(panelID, commissionID uuid.UUID, description string, offeredAmount decimal.Decimal, deadline *time.Time) (*Request, error) {
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Request description cannot be empty")
	}
	if offeredAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Offered amount cannot be negative")
	}
	return &Request{
		PanelEntity:   shared.NewPanelEntity(panelID),
		CommissionID:  commissionID,
		Description:   description,
		OfferedAmount: offeredAmount,
		Deadline:      deadline,
		Status:        RequestStatusRequested,
	}, nil
}

// Update updates the request's editable fields
func (r *Request) Update(description string, offeredAmount decimal.Decimal, deadline *time.Time) error {
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Request description cannot be empty")
	}
	if offeredAmount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Offered amount cannot be negative")
	}
	r.Description = description
	r.OfferedAmount = offeredAmount
	r.Deadline = deadline
	r.UpdatedAt = time.Now()
	return nil
}

// ChangeStatus moves the request to a new status
func (r *Request) ChangeStatus(status RequestStatus) error {
	switch status {
	case RequestStatusNotStarted, RequestStatusInProgress, RequestStatusPaused,
		RequestStatusCompleted, RequestStatusCancelled, RequestStatusRequested,
		RequestStatusRejected:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invalid request status")
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	return nil
}

// MarkPaid marks the request as paid
func (r *Request) MarkPaid() {
	r.Paid = true
	r.UpdatedAt = time.Now()
}
