package panel

import (
	"context"
	"fmt"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/notification"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
)

// QuoteService handles quote-related business operations, including the
// public accept/reject decision flow.
type QuoteService struct {
	quoteRepo        panel.QuoteRepository
	commissionRepo   panel.CommissionRepository
	clientRepo       panel.ClientRepository
	notificationRepo notification.Repository
	tx               shared.Transactor
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(
	quoteRepo panel.QuoteRepository,
	commissionRepo panel.CommissionRepository,
	clientRepo panel.ClientRepository,
	notificationRepo notification.Repository,
	tx shared.Transactor,
) *QuoteService {
	return &QuoteService{
		quoteRepo:        quoteRepo,
		commissionRepo:   commissionRepo,
		clientRepo:       clientRepo,
		notificationRepo: notificationRepo,
		tx:               tx,
	}
}

// Create creates a new pending quote for an existing client
func (s *QuoteService) Create(ctx context.Context, panelID uuid.UUID, req CreateQuoteRequest) (*QuoteResponse, error) {
	if _, err := s.clientRepo.FindByID(ctx, panelID, req.ClientID); err != nil {
		return nil, err
	}

	quote, err := panel.NewQuote(panelID, req.ClientID, req.Title, req.ProposedAmount, panel.PaymentTerms(req.PaymentTerms))
	if err != nil {
		return nil, err
	}
	quote.StartDate = req.StartDate
	quote.Deadline = req.Deadline

	if err := s.quoteRepo.Save(ctx, quote); err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// GetByID retrieves a quote by ID
func (s *QuoteService) GetByID(ctx context.Context, panelID, quoteID uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, panelID, quoteID)
	if err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// List retrieves quotes with filtering and pagination
func (s *QuoteService) List(ctx context.Context, panelID uuid.UUID, filter ListFilter) ([]QuoteResponse, error) {
	quotes, err := s.quoteRepo.FindAll(ctx, panelID, filter.ToDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToQuoteResponses(quotes), nil
}

// Accept accepts a pending quote and opens a commission from it. The
// status transition is a conditional update, so two concurrent decisions
// cannot both succeed, and the commission, notification and quote writes
// all commit or roll back together.
func (s *QuoteService) Accept(ctx context.Context, panelID, quoteID uuid.UUID, req AcceptQuoteRequest) (*AcceptQuoteResponse, error) {
	if !req.AcceptedTos {
		return nil, shared.NewDomainError("TOS_NOT_ACCEPTED", "You must accept the terms of service!")
	}

	quote, err := s.quoteRepo.FindByID(ctx, panelID, quoteID)
	if err != nil {
		return nil, err
	}

	var commission *panel.Commission
	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		decided, err := s.quoteRepo.Decide(ctx, panelID, quoteID, panel.QuoteStatusAccepted)
		if err != nil {
			return err
		}
		if !decided {
			return shared.ErrQuoteAlreadyDecided
		}

		commission, err = panel.NewCommission(panelID, quote.ClientID, quote.Title, quote.ProposedAmount)
		if err != nil {
			return err
		}
		commission.StartDate = quote.StartDate
		commission.Deadline = quote.Deadline
		if err := s.commissionRepo.Save(ctx, commission); err != nil {
			return err
		}

		return s.notifyDecision(ctx, quote, "Quote accepted", "accepted")
	})
	if err != nil {
		return nil, err
	}

	quote.Status = panel.QuoteStatusAccepted
	return &AcceptQuoteResponse{
		Quote:      ToQuoteResponse(quote),
		Commission: ToCommissionResponse(commission),
	}, nil
}

// Reject rejects a pending quote
func (s *QuoteService) Reject(ctx context.Context, panelID, quoteID uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, panelID, quoteID)
	if err != nil {
		return nil, err
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		decided, err := s.quoteRepo.Decide(ctx, panelID, quoteID, panel.QuoteStatusRejected)
		if err != nil {
			return err
		}
		if !decided {
			return shared.ErrQuoteAlreadyDecided
		}

		return s.notifyDecision(ctx, quote, "Quote rejected", "rejected")
	})
	if err != nil {
		return nil, err
	}

	quote.Status = panel.QuoteStatusRejected
	response := ToQuoteResponse(quote)
	return &response, nil
}

// AcceptPublic accepts a quote reached through its shared link. The link
// carries no panel identity, so the panel is resolved from the quote row.
func (s *QuoteService) AcceptPublic(ctx context.Context, quoteID uuid.UUID, req AcceptQuoteRequest) (*AcceptQuoteResponse, error) {
	quote, err := s.quoteRepo.FindByPublicID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return s.Accept(ctx, quote.PanelID, quoteID, req)
}

// RejectPublic rejects a quote reached through its shared link
func (s *QuoteService) RejectPublic(ctx context.Context, quoteID uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByPublicID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return s.Reject(ctx, quote.PanelID, quoteID)
}

// Delete deletes a quote
func (s *QuoteService) Delete(ctx context.Context, panelID, quoteID uuid.UUID) error {
	if _, err := s.quoteRepo.FindByID(ctx, panelID, quoteID); err != nil {
		return err
	}
	return s.quoteRepo.Delete(ctx, panelID, quoteID)
}

// notifyDecision records the in-app notification for a quote decision.
// The message keeps the subject placeholder; the client's current name is
// substituted when the notification is listed.
func (s *QuoteService) notifyDecision(ctx context.Context, quote *panel.Quote, title, verb string) error {
	message := fmt.Sprintf("%s has %s quote %s!", notification.SubjectPlaceholder, verb, quote.ID)
	link := fmt.Sprintf("/quotes?sort=start_date&descending=false&page=1&search=%s", quote.ID)

	n, err := notification.New(quote.PanelID, quote.ClientID, title, message, link)
	if err != nil {
		return err
	}
	return s.notificationRepo.Save(ctx, n)
}
