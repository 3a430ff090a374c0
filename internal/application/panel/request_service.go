package panel

import (
	"context"
	"fmt"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/notification"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/google/uuid"
)

// RequestService handles change-request business operations
type RequestService struct {
	requestRepo      panel.RequestRepository
	commissionRepo   panel.CommissionRepository
	notificationRepo notification.Repository
}

// NewRequestService creates a new RequestService
func NewRequestService(
	requestRepo panel.RequestRepository,
	commissionRepo panel.CommissionRepository,
	notificationRepo notification.Repository,
) *RequestService {
	return &RequestService{
		requestRepo:      requestRepo,
		commissionRepo:   commissionRepo,
		notificationRepo: notificationRepo,
	}
}

// Create records a change request against an existing commission
func (s *RequestService) Create(ctx context.Context, panelID uuid.UUID, req CreateRequestRequest) (*RequestResponse, error) {
	if _, err := s.commissionRepo.FindByID(ctx, panelID, req.CommissionID); err != nil {
		return nil, err
	}

	request, err := panel.NewRequest(panelID, req.CommissionID, req.Description, req.OfferedAmount, req.Deadline)
	if err != nil {
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// CreateTracked records a change request raised from the public tracking
// page. The tracking token and commission ID must identify the same
// commission; a notification is emitted for the panel owner.
func (s *RequestService) CreateTracked(ctx context.Context, req PublicCreateRequestRequest) (*RequestResponse, error) {
	commission, err := s.commissionRepo.FindByTracking(ctx, req.TrackingID, req.CommissionID)
	if err != nil {
		return nil, err
	}

	request, err := panel.NewRequest(commission.PanelID, commission.ID, req.Description, req.OfferedAmount, req.Deadline)
	if err != nil {
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%s has made a new request on %s!", notification.SubjectPlaceholder, commission.Title)
	n, err := notification.New(commission.PanelID, commission.ClientID, "New request", message, "/requests")
	if err != nil {
		return nil, err
	}
	if err := s.notificationRepo.Save(ctx, n); err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// GetByID retrieves a change request by ID
func (s *RequestService) GetByID(ctx context.Context, panelID, requestID uuid.UUID) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, panelID, requestID)
	if err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// List retrieves change requests with filtering and pagination
func (s *RequestService) List(ctx context.Context, panelID uuid.UUID, filter ListFilter) ([]RequestResponse, error) {
	requests, err := s.requestRepo.FindAll(ctx, panelID, filter.ToDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToRequestResponses(requests), nil
}

// ListByCommission retrieves all change requests for one commission
func (s *RequestService) ListByCommission(ctx context.Context, panelID, commissionID uuid.UUID, filter ListFilter) ([]RequestResponse, error) {
	requests, err := s.requestRepo.FindByCommission(ctx, panelID, commissionID, filter.ToDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToRequestResponses(requests), nil
}

// Update updates a change request's editable fields
func (s *RequestService) Update(ctx context.Context, panelID, requestID uuid.UUID, req UpdateRequestRequest) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, panelID, requestID)
	if err != nil {
		return nil, err
	}

	description := request.Description
	offeredAmount := request.OfferedAmount
	deadline := request.Deadline
	if req.Description != nil {
		description = *req.Description
	}
	if req.OfferedAmount != nil {
		offeredAmount = *req.OfferedAmount
	}
	if req.Deadline != nil {
		deadline = req.Deadline
	}
	if err := request.Update(description, offeredAmount, deadline); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// UpdateStatus changes a change request's status
func (s *RequestService) UpdateStatus(ctx context.Context, panelID, requestID uuid.UUID, req UpdateRequestStatusRequest) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, panelID, requestID)
	if err != nil {
		return nil, err
	}

	if err := request.ChangeStatus(panel.RequestStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// MarkPaid marks a change request as paid
func (s *RequestService) MarkPaid(ctx context.Context, panelID, requestID uuid.UUID) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, panelID, requestID)
	if err != nil {
		return nil, err
	}

	request.MarkPaid()
	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, err
	}

	response := ToRequestResponse(request)
	return &response, nil
}

// Delete deletes a change request
func (s *RequestService) Delete(ctx context.Context, panelID, requestID uuid.UUID) error {
	if _, err := s.requestRepo.FindByID(ctx, panelID, requestID); err != nil {
		return err
	}
	return s.requestRepo.Delete(ctx, panelID, requestID)
}
