package payment

// paypalTokenResponse represents an OAuth2 client-credentials grant response
type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// paypalErrorResponse represents an error body from the PayPal REST API
type paypalErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Details []struct {
		Issue       string `json:"issue"`
		Description string `json:"description"`
	} `json:"details,omitempty"`
}

// paypalAmount is a currency/value pair
type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// paypalName is a recipient display name
type paypalName struct {
	GivenName string `json:"given_name,omitempty"`
	FullName  string `json:"full_name,omitempty"`
}

// paypalInvoiceDetail holds invoice-level metadata
type paypalInvoiceDetail struct {
	CurrencyCode       string             `json:"currency_code"`
	Note               string             `json:"note,omitempty"`
	TermsAndConditions string             `json:"terms_and_conditions,omitempty"`
	PaymentTerm        *paypalPaymentTerm `json:"payment_term,omitempty"`
}

// paypalPaymentTerm sets the invoice due date
type paypalPaymentTerm struct {
	TermType string `json:"term_type,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
}

// paypalInvoicer identifies the sender on the rendered invoice
type paypalInvoicer struct {
	BusinessName string `json:"business_name,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
}

// paypalBillingInfo identifies a recipient
type paypalBillingInfo struct {
	Name         *paypalName `json:"name,omitempty"`
	EmailAddress string      `json:"email_address"`
}

// paypalRecipient wraps a recipient's billing info
type paypalRecipient struct {
	BillingInfo paypalBillingInfo `json:"billing_info"`
}

// paypalItem is a single invoice line item
type paypalItem struct {
	Name       string       `json:"name"`
	Quantity   string       `json:"quantity"`
	UnitAmount paypalAmount `json:"unit_amount"`
}

// paypalCreateInvoiceRequest represents a draft invoice to create
type paypalCreateInvoiceRequest struct {
	Detail            paypalInvoiceDetail `json:"detail"`
	Invoicer          *paypalInvoicer     `json:"invoicer,omitempty"`
	PrimaryRecipients []paypalRecipient   `json:"primary_recipients"`
	Items             []paypalItem        `json:"items"`
}

// paypalCreateInvoiceResponse is the draft creation result. PayPal returns
// the new resource as an href; the invoice ID is its last path segment.
type paypalCreateInvoiceResponse struct {
	ID   string `json:"id,omitempty"`
	Href string `json:"href,omitempty"`
}

// paypalSendInvoiceRequest controls send notifications
type paypalSendInvoiceRequest struct {
	SendToInvoicer bool `json:"send_to_invoicer"`
}

// paypalGetInvoiceResponse is the subset of an invoice read used for
// payment status checks
type paypalGetInvoiceResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Payments *struct {
		Transactions []struct {
			PaymentDate string `json:"payment_date,omitempty"`
		} `json:"transactions,omitempty"`
	} `json:"payments,omitempty"`
}
