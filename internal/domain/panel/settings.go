package panel

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/google/uuid"
)

// Settings holds a panel's profile, billing credentials and API access.
// There is exactly one row per panel; the row ID is the panel ID.
type Settings struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"` // Panel ID
	DisplayName    string    `gorm:"type:varchar(100)"`
	CurrencyPrefix string    `gorm:"type:varchar(10);default:'$'"`
	Terms          string    `gorm:"type:text"` // Rich text; stripped to plain text for invoices
	LogoURL        string    `gorm:"type:text"`
	Discord        string    `gorm:"type:varchar(100)"`

	// Provider credentials. Empty values fall back to process-wide defaults.
	StripeSecretKey    string `gorm:"column:sk;type:text"`
	PayPalClientID     string `gorm:"column:paypal_client_id;type:text"`
	PayPalClientSecret string `gorm:"column:paypal_client_secret;type:text"`

	// External API access
	APIKey        string `gorm:"column:api_key;type:varchar(64);uniqueIndex"`
	APIUsesLeft   int    `gorm:"column:api_uses_left;not null;default:0"`
	LicenseActive bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (Settings) TableName() string {
	return "panel_settings"
}

// NewSettings creates the settings row for a freshly provisioned panel
func NewSettings(panelID uuid.UUID, displayName string) *Settings {
	now := time.Now()
	return &Settings{
		ID:             panelID,
		DisplayName:    displayName,
		CurrencyPrefix: "$",
		APIKey:         NewAPIKey(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UpdateProfile updates the display fields
func (s *Settings) UpdateProfile(displayName, currencyPrefix, terms, logoURL, discord string) error {
	if len(displayName) > 100 {
		return shared.NewDomainError("INVALID_DISPLAY_NAME", "Display name cannot exceed 100 characters")
	}
	if len(currencyPrefix) > 10 {
		return shared.NewDomainError("INVALID_CURRENCY_PREFIX", "Currency prefix cannot exceed 10 characters")
	}
	s.DisplayName = displayName
	if currencyPrefix != "" {
		s.CurrencyPrefix = currencyPrefix
	}
	s.Terms = terms
	s.LogoURL = logoURL
	s.Discord = discord
	s.UpdatedAt = time.Now()
	return nil
}

// SetProviderKeys updates stored payment provider credentials
func (s *Settings) SetProviderKeys(stripeSecretKey, paypalClientID, paypalClientSecret string) {
	s.StripeSecretKey = stripeSecretKey
	s.PayPalClientID = paypalClientID
	s.PayPalClientSecret = paypalClientSecret
	s.UpdatedAt = time.Now()
}

// RotateAPIKey replaces the panel's API key
func (s *Settings) RotateAPIKey() string {
	s.APIKey = NewAPIKey()
	s.UpdatedAt = time.Now()
	return s.APIKey
}

// HasAPIUses reports whether any API quota remains
func (s *Settings) HasAPIUses() bool {
	return s.APIUsesLeft > 0
}

// HasStripeKey reports whether a panel-scoped Stripe key is stored
func (s *Settings) HasStripeKey() bool {
	return s.StripeSecretKey != ""
}

// HasPayPalKeys reports whether panel-scoped PayPal credentials are stored
func (s *Settings) HasPayPalKeys() bool {
	return s.PayPalClientID != "" && s.PayPalClientSecret != ""
}

// NewAPIKey generates a new opaque API key
func NewAPIKey() string {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return "ember_" + hex.EncodeToString(b)
}

// SettingsRepository defines the interface for panel settings persistence
type SettingsRepository interface {
	// FindByPanel finds the settings row for a panel
	FindByPanel(ctx context.Context, panelID uuid.UUID) (*Settings, error)

	// FindByAPIKey finds active settings by API key. Only rows with
	// license_active are returned.
	FindByAPIKey(ctx context.Context, apiKey string) (*Settings, error)

	// Save creates or updates the settings row
	Save(ctx context.Context, settings *Settings) error

	// ConsumeAPIUse atomically decrements api_uses_left when at least one
	// use remains. Returns false when the quota is already exhausted.
	ConsumeAPIUse(ctx context.Context, panelID uuid.UUID) (bool, error)
}
