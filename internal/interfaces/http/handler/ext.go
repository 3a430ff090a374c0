package handler

import (
	panelapp "github.com/NoMulaax/MoonSoftwareMeta/internal/application/panel"
	"github.com/gin-gonic/gin"
)

// ExtHandler handles the API-key surface. The panel identity is derived
// from the bearer key by the API key middleware, and every call has
// already spent one API use by the time a handler runs.
type ExtHandler struct {
	BaseHandler
	requestService *panelapp.RequestService
	clientService  *panelapp.ClientService
}

// NewExtHandler creates a new ExtHandler
func NewExtHandler(requestService *panelapp.RequestService, clientService *panelapp.ClientService) *ExtHandler {
	return &ExtHandler{
		requestService: requestService,
		clientService:  clientService,
	}
}

// CreateRequest records a change request through the API-key surface
func (h *ExtHandler) CreateRequest(c *gin.Context) {
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

// SelectClients selects clients matching an exact field value. Only a
// fixed set of fields may be queried; anything else is rejected before
// touching the database.
func (h *ExtHandler) SelectClients(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	field := c.Query("field")
	value := c.Query("value")
	if field == "" || value == "" {
		h.BadRequest(c, "Both field and value query parameters are required")
		return
	}

	clients, err := h.clientService.SelectByField(c.Request.Context(), panelID, field, value)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, clients)
}
