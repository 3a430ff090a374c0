package handler

import (
	panelapp "github.com/NoMulaax/MoonSoftwareMeta/internal/application/panel"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientHandler handles client-related API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *panelapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *panelapp.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// Create creates a new client
func (h *ClientHandler) Create(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	var req panelapp.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), panelID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, client)
}

// GetByID retrieves a client by its ID
func (h *ClientHandler) GetByID(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), panelID, clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// List retrieves clients with search, sorting and pagination
func (h *ClientHandler) List(c *gin.Context) {
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

	clients, total, err := h.clientService.List(c.Request.Context(), panelID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	domainFilter := filter.ToDomainFilter()
	h.SuccessWithMeta(c, clients, total, domainFilter.Page, domainFilter.PageSize)
}

// Update updates a client's fields
func (h *ClientHandler) Update(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	var req panelapp.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), panelID, clientID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// Delete deletes a client and, through the schema cascade, its commissions
func (h *ClientHandler) Delete(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), panelID, clientID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
