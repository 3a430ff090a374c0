package notification

import (
	"context"
	"testing"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/notification"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

// MockClientRepository is a mock implementation of panel.ClientRepository
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

func TestService_List_RendersCurrentUsername(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	clientRepo := new(MockClientRepository)
	svc := NewService(notificationRepo, clientRepo)

	panelID := uuid.New()
	client, _ := panel.NewClient(panelID, "skyline")

	n1, _ := notification.New(panelID, client.ID, "Quote accepted", "%subject_username% has accepted quote 42!", "/quotes")
	n2, _ := notification.New(panelID, client.ID, "New request", "%subject_username% has made a new request!", "/requests")

	notificationRepo.On("FindAll", mock.Anything, panelID, mock.Anything).Return([]notification.Notification{*n1, *n2}, nil)
	notificationRepo.On("CountUnread", mock.Anything, panelID).Return(int64(2), nil)
	// Both notifications share a subject, so the client is fetched once
	clientRepo.On("FindByID", mock.Anything, panelID, client.ID).Return(client, nil).Once()

	out, unread, err := svc.List(context.Background(), panelID, ListFilter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), unread)
	assert.Equal(t, "skyline has accepted quote 42!", out[0].Message)
	assert.Equal(t, "skyline has made a new request!", out[1].Message)
	clientRepo.AssertExpectations(t)
}

func TestService_List_DeletedSubject(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	clientRepo := new(MockClientRepository)
	svc := NewService(notificationRepo, clientRepo)

	panelID := uuid.New()
	subjectID := uuid.New()
	n, _ := notification.New(panelID, subjectID, "Quote accepted", "%subject_username% has accepted quote 42!", "")

	notificationRepo.On("FindAll", mock.Anything, panelID, mock.Anything).Return([]notification.Notification{*n}, nil)
	notificationRepo.On("CountUnread", mock.Anything, panelID).Return(int64(1), nil)
	clientRepo.On("FindByID", mock.Anything, panelID, subjectID).Return(nil, shared.ErrNotFound)

	out, _, err := svc.List(context.Background(), panelID, ListFilter{})

	assert.NoError(t, err)
	assert.Equal(t, "A deleted client has accepted quote 42!", out[0].Message)
}
