package panel

import (
	"regexp"
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Client represents an end client of a freelancer's panel.
// Commissions, quotes and invoices all reference a client.
type Client struct {
	shared.PanelEntity
	Username         string `gorm:"type:varchar(100);not null"`
	Discord          string `gorm:"type:varchar(100)"`
	Email            string `gorm:"type:varchar(200);index"`
	AvatarURL        string `gorm:"type:text"`
	StripeCustomerID string `gorm:"type:varchar(100)"` // Remote Stripe customer, set lazily on first invoice
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "panel_clients"
}

// NewClient creates a new client for a panel
func NewClient(panelID uuid.UUID, username string) (*Client, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	return &Client{
		PanelEntity: shared.NewPanelEntity(panelID),
		Username:    username,
	}, nil
}

// Update updates the client's editable fields
func (c *Client) Update(username, discord, email, avatarURL string) error {
	if err := validateUsername(username); err != nil {
		return err
	}
	if email != "" && !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	c.Username = username
	c.Discord = discord
	c.Email = email
	c.AvatarURL = avatarURL
	c.UpdatedAt = time.Now()
	return nil
}

// LinkStripeCustomer records the remote Stripe customer ID for this client
func (c *Client) LinkStripeCustomer(customerID string) {
	c.StripeCustomerID = customerID
	c.UpdatedAt = time.Now()
}

// HasEmail reports whether the client can receive invoices
func (c *Client) HasEmail() bool {
	return c.Email != ""
}

func validateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Client username cannot be empty")
	}
	if len(username) > 100 {
		return shared.NewDomainError("INVALID_USERNAME", "Client username cannot exceed 100 characters")
	}
	return nil
}
