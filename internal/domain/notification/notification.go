package notification

import (
	"strings"
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
)

// SubjectPlaceholder is the literal token substituted with the subject
// client's username when a notification is rendered. Substitution happens
// at read time, so a later username change shows the new name.
const SubjectPlaceholder = "%subject_username%"

// Notification is an in-app message addressed to a panel, referencing a
// subject client.
type Notification struct {
	shared.PanelEntity
	Title     string    `gorm:"type:varchar(100);not null"`
	Message   string    `gorm:"type:text;not null"` // May contain SubjectPlaceholder
	Link      string    `gorm:"type:text"`
	SubjectID uuid.UUID `gorm:"column:subject;type:uuid"` // The client this notification is about
	Read      bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// New creates an unread notification
func New(panelID, subjectID uuid.UUID, title, message, link string) (*Notification, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}
	if message == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Notification message cannot be empty")
	}
	return &Notification{
		PanelEntity: shared.NewPanelEntity(panelID),
		Title:       title,
		Message:     message,
		Link:        link,
		SubjectID:   subjectID,
	}, nil
}

// Render returns the message with the subject placeholder resolved
func (n *Notification) Render(subjectUsername string) string {
	return strings.ReplaceAll(n.Message, SubjectPlaceholder, subjectUsername)
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead() {
	n.Read = true
	n.UpdatedAt = time.Now()
}
