package payment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/billing"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
)

// MockSettingsRepository is a mock implementation of panel.SettingsRepository
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

func TestSettingsCredentialResolver_ResolveStripe(t *testing.T) {
	panelID := uuid.New()

	t.Run("prefers the panel-stored key", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepository)
		settings := panel.NewSettings(panelID, "Ember Studio")
		settings.SetProviderKeys("sk_live_panel", "", "")
		settingsRepo.On("FindByPanel", mock.Anything, panelID).Return(settings, nil)

		resolver := NewSettingsCredentialResolver(settingsRepo, EnvironmentCredentials{StripeSecretKey: "sk_live_env"})
		creds, err := resolver.ResolveStripe(context.Background(), panelID)

		require.NoError(t, err)
		assert.Equal(t, "sk_live_panel", creds.SecretKey)
		assert.Equal(t, billing.CredentialSourcePanel, creds.Source)
	})

	t.Run("falls back to the environment key", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepository)
		settingsRepo.On("FindByPanel", mock.Anything, panelID).Return(panel.NewSettings(panelID, "Ember Studio"), nil)

		resolver := NewSettingsCredentialResolver(settingsRepo, EnvironmentCredentials{StripeSecretKey: "sk_live_env"})
		creds, err := resolver.ResolveStripe(context.Background(), panelID)

		require.NoError(t, err)
		assert.Equal(t, "sk_live_env", creds.SecretKey)
		assert.Equal(t, billing.CredentialSourceEnvironment, creds.Source)
	})

	t.Run("falls back when the settings row is missing", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepository)
		settingsRepo.On("FindByPanel", mock.Anything, panelID).Return(nil, shared.ErrNotFound)

		resolver := NewSettingsCredentialResolver(settingsRepo, EnvironmentCredentials{StripeSecretKey: "sk_live_env"})
		creds, err := resolver.ResolveStripe(context.Background(), panelID)

		require.NoError(t, err)
		assert.Equal(t, billing.CredentialSourceEnvironment, creds.Source)
	})

	t.Run("errors when no key exists anywhere", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepository)
		settingsRepo.On("FindByPanel", mock.Anything, panelID).Return(nil, shared.ErrNotFound)

		resolver := NewSettingsCredentialResolver(settingsRepo, EnvironmentCredentials{})
		_, err := resolver.ResolveStripe(context.Background(), panelID)

		assert.Equal(t, shared.ErrProviderNotConfigured, err)
	})
}

func TestSettingsCredentialResolver_ResolvePayPal(t *testing.T) {
	panelID := uuid.New()

	t.Run("prefers panel-stored credentials", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepository)
		settings := panel.NewSettings(panelID, "Ember Studio")
		settings.SetProviderKeys("", "panel-client", "panel-secret")
		settingsRepo.On("FindByPanel", mock.Anything, panelID).Return(settings, nil)

		resolver := NewSettingsCredentialResolver(settingsRepo, EnvironmentCredentials{
			PayPalClientID:     "env-client",
			PayPalClientSecret: "env-secret",
		})
		creds, err := resolver.ResolvePayPal(context.Background(), panelID)

		require.NoError(t, err)
		assert.Equal(t, "panel-client", creds.ClientID)
		assert.Equal(t, billing.CredentialSourcePanel, creds.Source)
	})

	t.Run("ignores a half-configured panel pair", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepository)
		settings := panel.NewSettings(panelID, "Ember Studio")
		settings.SetProviderKeys("", "panel-client", "")
		settingsRepo.On("FindByPanel", mock.Anything, panelID).Return(settings, nil)

		resolver := NewSettingsCredentialResolver(settingsRepo, EnvironmentCredentials{
			PayPalClientID:     "env-client",
			PayPalClientSecret: "env-secret",
		})
		creds, err := resolver.ResolvePayPal(context.Background(), panelID)

		require.NoError(t, err)
		assert.Equal(t, "env-client", creds.ClientID)
		assert.Equal(t, billing.CredentialSourceEnvironment, creds.Source)
	})

	t.Run("errors when nothing is configured", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepository)
		settingsRepo.On("FindByPanel", mock.Anything, panelID).Return(nil, shared.ErrNotFound)

		resolver := NewSettingsCredentialResolver(settingsRepo, EnvironmentCredentials{})
		_, err := resolver.ResolvePayPal(context.Background(), panelID)

		assert.Equal(t, shared.ErrProviderNotConfigured, err)
	})
}
