package handler

import (
	panelapp "github.com/NoMulaax/MoonSoftwareMeta/internal/application/panel"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles panel settings API endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *panelapp.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *panelapp.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Get retrieves the panel's settings. Stored credentials are reported as
// presence flags, never echoed back.
func (h *SettingsHandler) Get(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	settings, err := h.settingsService.Get(c.Request.Context(), panelID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}

// Update saves the panel's profile fields
func (h *SettingsHandler) Update(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	var req panelapp.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), panelID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}

// UpdateProviderKeys stores panel-scoped payment credentials. Empty
// strings clear the stored value and fall back to process defaults.
func (h *SettingsHandler) UpdateProviderKeys(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	var req panelapp.UpdateProviderKeysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	settings, err := h.settingsService.UpdateProviderKeys(c.Request.Context(), panelID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}

// RotateAPIKey replaces the panel's API key with a fresh one. The old key
// stops working immediately.
func (h *SettingsHandler) RotateAPIKey(c *gin.Context) {
	panelID, err := getPanelID(c)
	if err != nil {
		h.Unauthorized(c, "Panel identity missing")
		return
	}

	settings, err := h.settingsService.RotateAPIKey(c.Request.Context(), panelID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}
