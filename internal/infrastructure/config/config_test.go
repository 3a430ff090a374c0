package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"EMBER_APP_NAME":                os.Getenv("EMBER_APP_NAME"),
		"EMBER_APP_ENV":                 os.Getenv("EMBER_APP_ENV"),
		"EMBER_APP_PORT":                os.Getenv("EMBER_APP_PORT"),
		"EMBER_DATABASE_HOST":           os.Getenv("EMBER_DATABASE_HOST"),
		"EMBER_DATABASE_PORT":           os.Getenv("EMBER_DATABASE_PORT"),
		"EMBER_DATABASE_USER":           os.Getenv("EMBER_DATABASE_USER"),
		"EMBER_DATABASE_PASSWORD":       os.Getenv("EMBER_DATABASE_PASSWORD"),
		"EMBER_DATABASE_DBNAME":         os.Getenv("EMBER_DATABASE_DBNAME"),
		"EMBER_DATABASE_SSLMODE":        os.Getenv("EMBER_DATABASE_SSLMODE"),
		"EMBER_DATABASE_MAX_OPEN_CONNS": os.Getenv("EMBER_DATABASE_MAX_OPEN_CONNS"),
		"EMBER_DATABASE_MAX_IDLE_CONNS": os.Getenv("EMBER_DATABASE_MAX_IDLE_CONNS"),
		"EMBER_STRIPE_SECRET_KEY":       os.Getenv("EMBER_STRIPE_SECRET_KEY"),
		"EMBER_PAYPAL_CLIENT_ID":        os.Getenv("EMBER_PAYPAL_CLIENT_ID"),
		"EMBER_PAYPAL_CLIENT_SECRET":    os.Getenv("EMBER_PAYPAL_CLIENT_SECRET"),
		"EMBER_PAYPAL_SEND_DELAY":       os.Getenv("EMBER_PAYPAL_SEND_DELAY"),
		"EMBER_HTTP_RATE_LIMIT_ENABLED": os.Getenv("EMBER_HTTP_RATE_LIMIT_ENABLED"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "ember-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "", cfg.Database.Password)
		assert.Equal(t, "ember", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "https://api-m.paypal.com", cfg.PayPal.APIBase)
		assert.Equal(t, time.Second, cfg.PayPal.SendDelay)
		assert.Equal(t, 60, cfg.HTTP.RateLimitRequests)
		assert.Equal(t, time.Minute, cfg.HTTP.RateLimitWindow)
	})

	t.Run("loads values from environment variables with EMBER prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("EMBER_APP_NAME", "test-app")
		os.Setenv("EMBER_APP_ENV", "testing")
		os.Setenv("EMBER_APP_PORT", "9000")
		os.Setenv("EMBER_DATABASE_HOST", "testdb.local")
		os.Setenv("EMBER_DATABASE_PORT", "5433")
		os.Setenv("EMBER_DATABASE_USER", "testuser")
		os.Setenv("EMBER_DATABASE_PASSWORD", "testpass")
		os.Setenv("EMBER_DATABASE_DBNAME", "testdb")
		os.Setenv("EMBER_DATABASE_SSLMODE", "require")
		os.Setenv("EMBER_DATABASE_MAX_OPEN_CONNS", "50")
		os.Setenv("EMBER_DATABASE_MAX_IDLE_CONNS", "10")
		os.Setenv("EMBER_STRIPE_SECRET_KEY", "sk_test_fallback")
		os.Setenv("EMBER_PAYPAL_CLIENT_ID", "paypal-cid")
		os.Setenv("EMBER_PAYPAL_CLIENT_SECRET", "paypal-secret")
		os.Setenv("EMBER_PAYPAL_SEND_DELAY", "2s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.Equal(t, "sk_test_fallback", cfg.Stripe.SecretKey)
		assert.Equal(t, "paypal-cid", cfg.PayPal.ClientID)
		assert.Equal(t, "paypal-secret", cfg.PayPal.ClientSecret)
		assert.Equal(t, 2*time.Second, cfg.PayPal.SendDelay)
	})

	t.Run("rejects idle conns exceeding open conns", func(t *testing.T) {
		clearEnv()
		os.Setenv("EMBER_DATABASE_MAX_OPEN_CONNS", "5")
		os.Setenv("EMBER_DATABASE_MAX_IDLE_CONNS", "10")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("production requires a database password", func(t *testing.T) {
		clearEnv()
		os.Setenv("EMBER_APP_ENV", "production")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "ember",
		SSLMode:  "disable",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%2Fword")
	assert.Contains(t, dsn, "sslmode=disable")
}
