package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/billing"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
)

// EnvironmentCredentials are the process-wide fallback keys used when a
// panel has not stored its own
type EnvironmentCredentials struct {
	StripeSecretKey    string
	PayPalClientID     string
	PayPalClientSecret string
}

// SettingsCredentialResolver implements billing.CredentialResolver by
// preferring panel-stored keys over process-wide defaults
type SettingsCredentialResolver struct {
	settingsRepo panel.SettingsRepository
	fallback     EnvironmentCredentials
}

// NewSettingsCredentialResolver creates a new SettingsCredentialResolver
func NewSettingsCredentialResolver(settingsRepo panel.SettingsRepository, fallback EnvironmentCredentials) *SettingsCredentialResolver {
	return &SettingsCredentialResolver{
		settingsRepo: settingsRepo,
		fallback:     fallback,
	}
}

// ResolveStripe resolves the Stripe secret key for a panel
func (r *SettingsCredentialResolver) ResolveStripe(ctx context.Context, panelID uuid.UUID) (billing.StripeCredentials, error) {
	settings, err := r.settingsRepo.FindByPanel(ctx, panelID)
	if err != nil && err != shared.ErrNotFound {
		return billing.StripeCredentials{}, err
	}
	if settings != nil && settings.HasStripeKey() {
		return billing.StripeCredentials{
			SecretKey: settings.StripeSecretKey,
			Source:    billing.CredentialSourcePanel,
		}, nil
	}
	if r.fallback.StripeSecretKey != "" {
		return billing.StripeCredentials{
			SecretKey: r.fallback.StripeSecretKey,
			Source:    billing.CredentialSourceEnvironment,
		}, nil
	}
	return billing.StripeCredentials{}, shared.ErrProviderNotConfigured
}

// ResolvePayPal resolves the PayPal REST app credentials for a panel
func (r *SettingsCredentialResolver) ResolvePayPal(ctx context.Context, panelID uuid.UUID) (billing.PayPalCredentials, error) {
	settings, err := r.settingsRepo.FindByPanel(ctx, panelID)
	if err != nil && err != shared.ErrNotFound {
		return billing.PayPalCredentials{}, err
	}
	if settings != nil && settings.HasPayPalKeys() {
		return billing.PayPalCredentials{
			ClientID:     settings.PayPalClientID,
			ClientSecret: settings.PayPalClientSecret,
			Source:       billing.CredentialSourcePanel,
		}, nil
	}
	if r.fallback.PayPalClientID != "" && r.fallback.PayPalClientSecret != "" {
		return billing.PayPalCredentials{
			ClientID:     r.fallback.PayPalClientID,
			ClientSecret: r.fallback.PayPalClientSecret,
			Source:       billing.CredentialSourceEnvironment,
		}, nil
	}
	return billing.PayPalCredentials{}, shared.ErrProviderNotConfigured
}
