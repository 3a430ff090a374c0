package handler

import (
	panelapp "github.com/NoMulaax/MoonSoftwareMeta/internal/application/panel"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestHandler handles change-request API endpoints, including the
// public tracked insert from the tracking page
type RequestHandler struct {
	BaseHandler
	requestService *panelapp.RequestService
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(requestService *panelapp.RequestService) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// Create records a change request against a commission
func (h *RequestHandler) Create(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	var req panelapp.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), panelID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, request)
}

// CreatePublic records a change request submitted from the public
// tracking page. The tracking token and commission ID must match.
func (h *RequestHandler) CreatePublic(c *gin.Context) {
	var req panelapp.PublicCreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	request, err := h.requestService.CreateTracked(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, request)
}

// GetByID retrieves a change request by its ID
func (h *RequestHandler) GetByID(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid request ID format")
		return
	}

	request, err := h.requestService.GetByID(c.Request.Context(), panelID, requestID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, request)
}

// List retrieves change requests with search, sorting and pagination.
// An optional commission_id query parameter narrows to one commission.
func (h *RequestHandler) List(c *gin.Context) {
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

	if commissionIDStr := c.Query("commission_id"); commissionIDStr != "" {
		commissionID, err := uuid.Parse(commissionIDStr)
		if err != nil {
			h.BadRequest(c, "Invalid commission ID format")
			return
		}
		requests, err := h.requestService.ListByCommission(c.Request.Context(), panelID, commissionID, filter)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, requests)
		return
	}

	requests, err := h.requestService.List(c.Request.Context(), panelID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, requests)
}

// Update updates a change request's fields
func (h *RequestHandler) Update(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid request ID format")
		return
	}

	var req panelapp.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	request, err := h.requestService.Update(c.Request.Context(), panelID, requestID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, request)
}

// UpdateStatus changes a change request's status
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid request ID format")
		return
	}

	var req panelapp.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	request, err := h.requestService.UpdateStatus(c.Request.Context(), panelID, requestID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, request)
}

// MarkPaid marks a change request as paid
func (h *RequestHandler) MarkPaid(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid request ID format")
		return
	}

	request, err := h.requestService.MarkPaid(c.Request.Context(), panelID, requestID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, request)
}

// Delete deletes a change request
func (h *RequestHandler) Delete(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid request ID format")
		return
	}

	if err := h.requestService.Delete(c.Request.Context(), panelID, requestID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
