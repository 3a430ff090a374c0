package handler

import (
	panelapp "github.com/NoMulaax/MoonSoftwareMeta/internal/application/panel"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommissionHandler handles commission-related API endpoints, including
// the public tracking page lookup
type CommissionHandler struct {
	BaseHandler
	commissionService *panelapp.CommissionService
}

// NewCommissionHandler creates a new CommissionHandler
func NewCommissionHandler(commissionService *panelapp.CommissionService) *CommissionHandler {
	return &CommissionHandler{
		commissionService: commissionService,
	}
}

// Create creates a new commission
func (h *CommissionHandler) Create(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	var req panelapp.CreateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	commission, err := h.commissionService.Create(c.Request.Context(), panelID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, commission)
}

// GetByID retrieves a commission by its ID
func (h *CommissionHandler) GetByID(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	commissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid commission ID format")
		return
	}

	commission, err := h.commissionService.GetByID(c.Request.Context(), panelID, commissionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, commission)
}

// List retrieves commissions, pinned first, with search and pagination.
// An optional client_id query parameter narrows to one client.
func (h *CommissionHandler) List(c *gin.Context) {
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

	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			h.BadRequest(c, "Invalid client ID format")
			return
		}
		commissions, err := h.commissionService.ListByClient(c.Request.Context(), panelID, clientID, filter)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, commissions)
		return
	}

	commissions, total, err := h.commissionService.List(c.Request.Context(), panelID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	domainFilter := filter.ToDomainFilter()
	h.SuccessWithMeta(c, commissions, total, domainFilter.Page, domainFilter.PageSize)
}

// Update updates a commission's fields
func (h *CommissionHandler) Update(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	commissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid commission ID format")
		return
	}

	var req panelapp.UpdateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	commission, err := h.commissionService.Update(c.Request.Context(), panelID, commissionID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, commission)
}

// UpdateStatus changes a commission's lifecycle status
func (h *CommissionHandler) UpdateStatus(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	commissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid commission ID format")
		return
	}

	var req panelapp.UpdateCommissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.commissionService.UpdateStatus(c.Request.Context(), panelID, commissionID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, SuccessResponse{Success: true})
}

// MarkPaid records a paid percentage of the commission's total value
func (h *CommissionHandler) MarkPaid(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	commissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid commission ID format")
		return
	}

	var req panelapp.MarkCommissionPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	commission, err := h.commissionService.MarkPaid(c.Request.Context(), panelID, commissionID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, commission)
}

// Pin flips the pinned flag on a commission
func (h *CommissionHandler) Pin(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	commissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid commission ID format")
		return
	}

	var req panelapp.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.commissionService.SetPinned(c.Request.Context(), panelID, commissionID, req.Pinned); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, SuccessResponse{Success: true})
}

// Delete deletes a commission
func (h *CommissionHandler) Delete(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	commissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid commission ID format")
		return
	}

	if err := h.commissionService.Delete(c.Request.Context(), panelID, commissionID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Track serves the public tracking page lookup. The tracking token and
// commission ID must both match the same row; any mismatch is a plain 404.
func (h *CommissionHandler) Track(c *gin.Context) {
	commissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid commission ID format")
		return
	}

	tracked, err := h.commissionService.Track(c.Request.Context(), c.Param("tracking_id"), commissionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tracked)
}
