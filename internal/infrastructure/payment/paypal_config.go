package payment

import (
	"errors"
	"time"
)

// PayPalConfig contains configuration for the PayPal Invoicing REST API.
// Credentials are not part of the config; every call resolves its own
// credential pair because panels may bring their own REST app.
type PayPalConfig struct {
	// APIBase is the REST endpoint root, e.g. https://api-m.paypal.com
	// or the sandbox equivalent.
	APIBase string
	// SendDelay is how long to wait between creating an invoice and
	// sending it. A freshly created invoice is not always immediately
	// sendable.
	SendDelay time.Duration
}

var ErrPayPalMissingAPIBase = errors.New("paypal: missing API base URL")

// Validate validates the configuration and fills in defaults
func (c *PayPalConfig) Validate() error {
	if c.APIBase == "" {
		return ErrPayPalMissingAPIBase
	}
	if c.SendDelay < 0 {
		c.SendDelay = 0
	}
	return nil
}
