package handler

import (
	notificationapp "github.com/NoMulaax/MoonSoftwareMeta/internal/application/notification"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler handles notification API endpoints
type NotificationHandler struct {
	BaseHandler
	notificationService *notificationapp.Service
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *notificationapp.Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List retrieves notifications newest first, with subject usernames
// substituted into the messages
func (h *NotificationHandler) List(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	var filter notificationapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	notifications, total, err := h.notificationService.List(c.Request.Context(), panelID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, notifications, total, page, pageSize)
}

// UnreadCount returns the number of unread notifications
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	count, err := h.notificationService.UnreadCount(c.Request.Context(), panelID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CountData{Count: count})
}

// MarkRead marks a notification as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid notification ID format")
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), panelID, notificationID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, SuccessResponse{Success: true})
}

// Delete deletes a notification
func (h *NotificationHandler) Delete(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid notification ID format")
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), panelID, notificationID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteAll clears every notification for the panel
func (h *NotificationHandler) DeleteAll(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	if err := h.notificationService.DeleteAll(c.Request.Context(), panelID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
