package panel

import (
	"context"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/google/uuid"
)

// SettingsService handles panel settings operations
type SettingsService struct {
	settingsRepo panel.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo panel.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get retrieves the settings row for a panel
func (s *SettingsService) Get(ctx context.Context, panelID uuid.UUID) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.FindByPanel(ctx, panelID)
	if err != nil {
		return nil, err
	}

	response := ToSettingsResponse(settings)
	return &response, nil
}

// Update updates the panel's profile fields
func (s *SettingsService) Update(ctx context.Context, panelID uuid.UUID, req UpdateSettingsRequest) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.FindByPanel(ctx, panelID)
	if err != nil {
		return nil, err
	}

	displayName := settings.DisplayName
	currencyPrefix := settings.CurrencyPrefix
	terms := settings.Terms
	logoURL := settings.LogoURL
	discord := settings.Discord
	if req.DisplayName != nil {
		displayName = *req.DisplayName
	}
	if req.CurrencyPrefix != nil {
		currencyPrefix = *req.CurrencyPrefix
	}
	if req.Terms != nil {
		terms = *req.Terms
	}
	if req.LogoURL != nil {
		logoURL = *req.LogoURL
	}
	if req.Discord != nil {
		discord = *req.Discord
	}
	if err := settings.UpdateProfile(displayName, currencyPrefix, terms, logoURL, discord); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	response := ToSettingsResponse(settings)
	return &response, nil
}

// UpdateProviderKeys stores panel-scoped payment credentials. Fields left
// out of the request keep their current value.
func (s *SettingsService) UpdateProviderKeys(ctx context.Context, panelID uuid.UUID, req UpdateProviderKeysRequest) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.FindByPanel(ctx, panelID)
	if err != nil {
		return nil, err
	}

	stripeKey := settings.StripeSecretKey
	paypalID := settings.PayPalClientID
	paypalSecret := settings.PayPalClientSecret
	if req.StripeSecretKey != nil {
		stripeKey = *req.StripeSecretKey
	}
	if req.PayPalClientID != nil {
		paypalID = *req.PayPalClientID
	}
	if req.PayPalClientSecret != nil {
		paypalSecret = *req.PayPalClientSecret
	}
	settings.SetProviderKeys(stripeKey, paypalID, paypalSecret)

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	response := ToSettingsResponse(settings)
	return &response, nil
}

// RotateAPIKey replaces the panel's API key and returns the new value
func (s *SettingsService) RotateAPIKey(ctx context.Context, panelID uuid.UUID) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.FindByPanel(ctx, panelID)
	if err != nil {
		return nil, err
	}

	settings.RotateAPIKey()
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	response := ToSettingsResponse(settings)
	return &response, nil
}
