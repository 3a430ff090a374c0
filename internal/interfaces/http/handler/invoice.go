package handler

import (
	billingapp "github.com/NoMulaax/MoonSoftwareMeta/internal/application/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice-related API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billingapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *billingapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// IssueStripe issues a Stripe invoice to a client and persists the local
// record with the hosted payment link
func (h *InvoiceHandler) IssueStripe(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	var req billingapp.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	invoice, err := h.invoiceService.IssueStripe(c.Request.Context(), panelID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invoice)
}

// IssuePayPal issues a PayPal invoice to a client
func (h *InvoiceHandler) IssuePayPal(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	var req billingapp.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	invoice, err := h.invoiceService.IssuePayPal(c.Request.Context(), panelID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invoice)
}

// CheckPayment queries the provider for the invoice's payment state and
// updates the local row when it has been paid
func (h *InvoiceHandler) CheckPayment(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	status, err := h.invoiceService.CheckPayment(c.Request.Context(), panelID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, status)
}

// GetByID retrieves an invoice by its ID
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), panelID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// List retrieves invoices, pinned first, with search and pagination.
// An optional client_id query parameter narrows to one client.
func (h *InvoiceHandler) List(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	var filter billingapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			h.BadRequest(c, "Invalid client ID format")
			return
		}
		invoices, err := h.invoiceService.ListByClient(c.Request.Context(), panelID, clientID, filter)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, invoices)
		return
	}

	invoices, err := h.invoiceService.List(c.Request.Context(), panelID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoices)
}

// Pin flips the pinned flag on an invoice
func (h *InvoiceHandler) Pin(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	var req billingapp.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.invoiceService.SetPinned(c.Request.Context(), panelID, invoiceID, req.Pinned); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, SuccessResponse{Success: true})
}

// Delete deletes the local invoice record. The provider-side invoice is
// left alone; voiding it remains a manual step in the provider dashboard.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), panelID, invoiceID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
