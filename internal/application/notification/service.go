package notification

import (
	"context"
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/notification"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
)

// deletedSubjectName stands in when the subject client no longer exists
const deletedSubjectName = "A deleted client"

// NotificationResponse represents a rendered notification in API responses
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ListFilter carries pagination options for notification listings
type ListFilter struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Service lists and manages in-app notifications. Messages are rendered
// at list time, substituting the subject client's current username.
type Service struct {
	notificationRepo notification.Repository
	clientRepo       panel.ClientRepository
}

// NewService creates a new notification Service
func NewService(notificationRepo notification.Repository, clientRepo panel.ClientRepository) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		clientRepo:       clientRepo,
	}
}

// List retrieves a page of notifications, newest first, with subject
// usernames substituted into the messages
func (s *Service) List(ctx context.Context, panelID uuid.UUID, filter ListFilter) ([]NotificationResponse, int64, error) {
	domainFilter := shared.Filter{Page: filter.Page, PageSize: filter.PageSize}
	domainFilter.Normalize()

	notifications, err := s.notificationRepo.FindAll(ctx, panelID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.notificationRepo.CountUnread(ctx, panelID)
	if err != nil {
		return nil, 0, err
	}

	// Subject usernames are looked up once per distinct client
	names := make(map[uuid.UUID]string)
	out := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		name, ok := names[n.SubjectID]
		if !ok {
			name = s.subjectName(ctx, panelID, n.SubjectID)
			names[n.SubjectID] = name
		}
		out[i] = NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Render(name),
			Link:      n.Link,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	return out, unread, nil
}

// UnreadCount returns the number of unread notifications for a panel
func (s *Service) UnreadCount(ctx context.Context, panelID uuid.UUID) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, panelID)
}

// MarkRead marks one notification as read
func (s *Service) MarkRead(ctx context.Context, panelID, notificationID uuid.UUID) error {
	if _, err := s.notificationRepo.FindByID(ctx, panelID, notificationID); err != nil {
		return err
	}
	return s.notificationRepo.MarkRead(ctx, panelID, notificationID)
}

// Delete deletes one notification
func (s *Service) Delete(ctx context.Context, panelID, notificationID uuid.UUID) error {
	if _, err := s.notificationRepo.FindByID(ctx, panelID, notificationID); err != nil {
		return err
	}
	return s.notificationRepo.Delete(ctx, panelID, notificationID)
}

// DeleteAll removes every notification for a panel
func (s *Service) DeleteAll(ctx context.Context, panelID uuid.UUID) error {
	return s.notificationRepo.DeleteAll(ctx, panelID)
}

func (s *Service) subjectName(ctx context.Context, panelID, subjectID uuid.UUID) string {
	if subjectID == uuid.Nil {
		return deletedSubjectName
	}
	client, err := s.clientRepo.FindByID(ctx, panelID, subjectID)
	if err != nil {
		return deletedSubjectName
	}
	return client.Username
}
