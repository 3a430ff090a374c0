package panel

import (
	"context"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
)

// CommissionService handles commission-related business operations
type CommissionService struct {
	commissionRepo panel.CommissionRepository
	clientRepo     panel.ClientRepository
}

// NewCommissionService creates a new CommissionService
func NewCommissionService(commissionRepo panel.CommissionRepository, clientRepo panel.ClientRepository) *CommissionService {
	return &CommissionService{
		commissionRepo: commissionRepo,
		clientRepo:     clientRepo,
	}
}

// Create creates a new commission for an existing client
func (s *CommissionService) Create(ctx context.Context, panelID uuid.UUID, req CreateCommissionRequest) (*CommissionResponse, error) {
	if _, err := s.clientRepo.FindByID(ctx, panelID, req.ClientID); err != nil {
		return nil, err
	}

	commission, err := panel.NewCommission(panelID, req.ClientID, req.Title, req.TotalValue)
	if err != nil {
		return nil, err
	}
	commission.StartDate = req.StartDate
	commission.Deadline = req.Deadline
	commission.Notes = req.Notes
	if req.ProductID != nil {
		commission.SetProduct(req.ProductID)
	}

	if err := s.commissionRepo.Save(ctx, commission); err != nil {
		return nil, err
	}

	response := ToCommissionResponse(commission)
	return &response, nil
}

// GetByID retrieves a commission by ID
func (s *CommissionService) GetByID(ctx context.Context, panelID, commissionID uuid.UUID) (*CommissionResponse, error) {
	commission, err := s.commissionRepo.FindByID(ctx, panelID, commissionID)
	if err != nil {
		return nil, err
	}

	response := ToCommissionResponse(commission)
	return &response, nil
}

// List retrieves commissions with filtering and pagination
func (s *CommissionService) List(ctx context.Context, panelID uuid.UUID, filter ListFilter) ([]CommissionResponse, int64, error) {
	commissions, err := s.commissionRepo.FindAll(ctx, panelID, filter.ToDomainFilter())
	if err != nil {
		return nil, 0, err
	}

	total, err := s.commissionRepo.Count(ctx, panelID)
	if err != nil {
		return nil, 0, err
	}

	return ToCommissionResponses(commissions), total, nil
}

// ListByClient retrieves all commissions for one client
func (s *CommissionService) ListByClient(ctx context.Context, panelID, clientID uuid.UUID, filter ListFilter) ([]CommissionResponse, error) {
	commissions, err := s.commissionRepo.FindByClient(ctx, panelID, clientID, filter.ToDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToCommissionResponses(commissions), nil
}

// Update updates a commission's editable fields
func (s *CommissionService) Update(ctx context.Context, panelID, commissionID uuid.UUID, req UpdateCommissionRequest) (*CommissionResponse, error) {
	commission, err := s.commissionRepo.FindByID(ctx, panelID, commissionID)
	if err != nil {
		return nil, err
	}

	title := commission.Title
	totalValue := commission.TotalValue
	totalPaid := commission.TotalPaid
	startDate := commission.StartDate
	deadline := commission.Deadline
	notes := commission.Notes
	if req.Title != nil {
		title = *req.Title
	}
	if req.TotalValue != nil {
		totalValue = *req.TotalValue
	}
	if req.TotalPaid != nil {
		totalPaid = *req.TotalPaid
	}
	if req.StartDate != nil {
		startDate = req.StartDate
	}
	if req.Deadline != nil {
		deadline = req.Deadline
	}
	if req.Notes != nil {
		notes = *req.Notes
	}
	if err := commission.Update(title, totalValue, totalPaid, startDate, deadline, notes); err != nil {
		return nil, err
	}
	if req.ProductID != nil {
		commission.SetProduct(req.ProductID)
	}

	if err := s.commissionRepo.Save(ctx, commission); err != nil {
		return nil, err
	}

	response := ToCommissionResponse(commission)
	return &response, nil
}

// UpdateStatus changes a commission's lifecycle status
func (s *CommissionService) UpdateStatus(ctx context.Context, panelID, commissionID uuid.UUID, req UpdateCommissionStatusRequest) error {
	status := panel.CommissionStatus(req.Status)
	updated, err := s.commissionRepo.UpdateStatus(ctx, panelID, commissionID, status)
	if err != nil {
		return err
	}
	if !updated {
		return shared.ErrNotFound
	}
	return nil
}

// MarkPaid records that a percentage of the commission value has been
// paid. The write is a single conditional update so concurrent edits to
// total_value cannot push total_paid past it.
func (s *CommissionService) MarkPaid(ctx context.Context, panelID, commissionID uuid.UUID, req MarkCommissionPaidRequest) (*CommissionResponse, error) {
	commission, err := s.commissionRepo.FindByID(ctx, panelID, commissionID)
	if err != nil {
		return nil, err
	}

	paid, err := commission.PaidAmountForPercent(req.Percent)
	if err != nil {
		return nil, err
	}

	updated, err := s.commissionRepo.UpdatePaid(ctx, panelID, commissionID, paid)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, shared.ErrConcurrencyConflict
	}

	commission, err = s.commissionRepo.FindByID(ctx, panelID, commissionID)
	if err != nil {
		return nil, err
	}

	response := ToCommissionResponse(commission)
	return &response, nil
}

// SetPinned flips the pinned flag
func (s *CommissionService) SetPinned(ctx context.Context, panelID, commissionID uuid.UUID, pinned bool) error {
	if _, err := s.commissionRepo.FindByID(ctx, panelID, commissionID); err != nil {
		return err
	}
	return s.commissionRepo.SetPinned(ctx, panelID, commissionID, pinned)
}

// Delete deletes a commission
func (s *CommissionService) Delete(ctx context.Context, panelID, commissionID uuid.UUID) error {
	if _, err := s.commissionRepo.FindByID(ctx, panelID, commissionID); err != nil {
		return err
	}
	return s.commissionRepo.Delete(ctx, panelID, commissionID)
}

// Track retrieves the public view of a commission by its tracking token
// and ID pair. Both must match; a bare ID is never enough.
func (s *CommissionService) Track(ctx context.Context, trackingID string, commissionID uuid.UUID) (*TrackedCommissionResponse, error) {
	commission, err := s.commissionRepo.FindByTracking(ctx, trackingID, commissionID)
	if err != nil {
		return nil, err
	}

	response := ToTrackedCommissionResponse(commission)
	return &response, nil
}
