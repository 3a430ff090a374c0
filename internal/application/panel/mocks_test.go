package panel

import (
	"context"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/notification"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, panelID, id uuid.UUID) (*panel.Client, error) {
	args := m.Called(ctx, panelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*panel.Client), args.Error(1)
}

func (m *MockClientRepository) FindByEmail(ctx context.Context, panelID uuid.UUID, email string) (*panel.Client, error) {
	args := m.Called(ctx, panelID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*panel.Client), args.Error(1)
}

func (m *MockClientRepository) FindByField(ctx context.Context, panelID uuid.UUID, field, value string) ([]panel.Client, error) {
	args := m.Called(ctx, panelID, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]panel.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]panel.Client, error) {
	args := m.Called(ctx, panelID, filter)
	return args.Get(0).([]panel.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *panel.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, panelID, id uuid.UUID) error {
	args := m.Called(ctx, panelID, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context, panelID uuid.UUID) (int64, error) {
	args := m.Called(ctx, panelID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommissionRepository is a mock implementation of CommissionRepository
type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) FindByID(ctx context.Context, panelID, id uuid.UUID) (*panel.Commission, error) {
	args := m.Called(ctx, panelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*panel.Commission), args.Error(1)
}

func (m *MockCommissionRepository) FindByTracking(ctx context.Context, trackingID string, id uuid.UUID) (*panel.Commission, error) {
	args := m.Called(ctx, trackingID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*panel.Commission), args.Error(1)
}

func (m *MockCommissionRepository) FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]panel.Commission, error) {
	args := m.Called(ctx, panelID, filter)
	return args.Get(0).([]panel.Commission), args.Error(1)
}

func (m *MockCommissionRepository) FindByClient(ctx context.Context, panelID, clientID uuid.UUID, filter shared.Filter) ([]panel.Commission, error) {
	args := m.Called(ctx, panelID, clientID, filter)
	return args.Get(0).([]panel.Commission), args.Error(1)
}

func (m *MockCommissionRepository) Save(ctx context.Context, commission *panel.Commission) error {
	args := m.Called(ctx, commission)
	return args.Error(0)
}

func (m *MockCommissionRepository) UpdatePaid(ctx context.Context, panelID, id uuid.UUID, paid decimal.Decimal) (bool, error) {
	args := m.Called(ctx, panelID, id, paid)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommissionRepository) UpdateStatus(ctx context.Context, panelID, id uuid.UUID, status panel.CommissionStatus) (bool, error) {
	args := m.Called(ctx, panelID, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommissionRepository) SetPinned(ctx context.Context, panelID, id uuid.UUID, pinned bool) error {
	args := m.Called(ctx, panelID, id, pinned)
	return args.Error(0)
}

func (m *MockCommissionRepository) Delete(ctx context.Context, panelID, id uuid.UUID) error {
	args := m.Called(ctx, panelID, id)
	return args.Error(0)
}

func (m *MockCommissionRepository) Count(ctx context.Context, panelID uuid.UUID) (int64, error) {
	args := m.Called(ctx, panelID)
	return args.Get(0).(int64), args.Error(1)
}

// MockQuoteRepository is a mock implementation of QuoteRepository
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindByID(ctx context.Context, panelID, id uuid.UUID) (*panel.Quote, error) {
	args := m.Called(ctx, panelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*panel.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindByPublicID(ctx context.Context, id uuid.UUID) (*panel.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*panel.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]panel.Quote, error) {
	args := m.Called(ctx, panelID, filter)
	return args.Get(0).([]panel.Quote), args.Error(1)
}

func (m *MockQuoteRepository) Save(ctx context.Context, quote *panel.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) Decide(ctx context.Context, panelID, id uuid.UUID, to panel.QuoteStatus) (bool, error) {
	args := m.Called(ctx, panelID, id, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuoteRepository) Delete(ctx context.Context, panelID, id uuid.UUID) error {
	args := m.Called(ctx, panelID, id)
	return args.Error(0)
}

// MockRequestRepository is a mock implementation of RequestRepository
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) FindByID(ctx context.Context, panelID, id uuid.UUID) (*panel.Request, error) {
	args := m.Called(ctx, panelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*panel.Request), args.Error(1)
}

func (m *MockRequestRepository) FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]panel.Request, error) {
	args := m.Called(ctx, panelID, filter)
	return args.Get(0).([]panel.Request), args.Error(1)
}

func (m *MockRequestRepository) FindByCommission(ctx context.Context, panelID, commissionID uuid.UUID, filter shared.Filter) ([]panel.Request, error) {
	args := m.Called(ctx, panelID, commissionID, filter)
	return args.Get(0).([]panel.Request), args.Error(1)
}

func (m *MockRequestRepository) Save(ctx context.Context, request *panel.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) Delete(ctx context.Context, panelID, id uuid.UUID) error {
	args := m.Called(ctx, panelID, id)
	return args.Error(0)
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindByPanel(ctx context.Context, panelID uuid.UUID) (*panel.Settings, error) {
	args := m.Called(ctx, panelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*panel.Settings), args.Error(1)
}

func (m *MockSettingsRepository) FindByAPIKey(ctx context.Context, apiKey string) (*panel.Settings, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*panel.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *panel.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) ConsumeAPIUse(ctx context.Context, panelID uuid.UUID) (bool, error) {
	args := m.Called(ctx, panelID)
	return args.Bool(0), args.Error(1)
}

// MockNotificationRepository is a mock implementation of notification.Repository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, panelID, id uuid.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, panelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindAll(ctx context.Context, panelID uuid.UUID, filter shared.Filter) ([]notification.Notification, error) {
	args := m.Called(ctx, panelID, filter)
	return args.Get(0).([]notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, panelID uuid.UUID) (int64, error) {
	args := m.Called(ctx, panelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, panelID, id uuid.UUID) error {
	args := m.Called(ctx, panelID, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteAll(ctx context.Context, panelID uuid.UUID) error {
	args := m.Called(ctx, panelID)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, panelID, id uuid.UUID) error {
	args := m.Called(ctx, panelID, id)
	return args.Error(0)
}

// MockTransactor runs the callback inline without a database
type MockTransactor struct{}

func (MockTransactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
