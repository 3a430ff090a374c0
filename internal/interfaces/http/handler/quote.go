package handler

import (
	panelapp "github.com/NoMulaax/MoonSoftwareMeta/internal/application/panel"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuoteHandler handles quote-related API endpoints. Accept and Reject are
// public: the quote page link is shared with clients who have no panel
// session, so those two routes sit behind the rate limiter instead.
type QuoteHandler struct {
	BaseHandler
	quoteService *panelapp.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *panelapp.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// Create creates a new pending quote
func (h *QuoteHandler) Create(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	var req panelapp.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	quote, err := h.quoteService.Create(c.Request.Context(), panelID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, quote)
}

// GetByID retrieves a quote by its ID
func (h *QuoteHandler) GetByID(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid quote ID format")
		return
	}

	quote, err := h.quoteService.GetByID(c.Request.Context(), panelID, quoteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quote)
}

// List retrieves quotes with search, sorting and pagination
func (h *QuoteHandler) List(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	var filter panelapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	quotes, err := h.quoteService.List(c.Request.Context(), panelID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quotes)
}

// Accept accepts a pending quote and opens a commission from it. Requires
// the terms-of-service confirmation in the body.
func (h *QuoteHandler) Accept(c *gin.Context) {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid quote ID format")
		return
	}

	var req panelapp.AcceptQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	accepted, err := h.quoteService.AcceptPublic(c.Request.Context(), quoteID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, accepted)
}

// Reject rejects a pending quote
func (h *QuoteHandler) Reject(c *gin.Context) {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid quote ID format")
		return
	}

	quote, err := h.quoteService.RejectPublic(c.Request.Context(), quoteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quote)
}

// Delete deletes a quote
func (h *QuoteHandler) Delete(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid quote ID format")
		return
	}

	if err := h.quoteService.Delete(c.Request.Context(), panelID, quoteID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
